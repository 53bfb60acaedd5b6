package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealer-report-srv/config"
	configKafka "dealer-report-srv/config/kafka"
	configMinio "dealer-report-srv/config/minio"
	configPostgre "dealer-report-srv/config/postgre"
	configRedis "dealer-report-srv/config/redis"
	_ "dealer-report-srv/docs" // Import swagger docs
	"dealer-report-srv/internal/httpserver"
	"dealer-report-srv/pkg/discord"
	"dealer-report-srv/pkg/encrypter"
	pkgJWT "dealer-report-srv/pkg/jwt"
	pkgKafka "dealer-report-srv/pkg/kafka"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/minio"
	"dealer-report-srv/pkg/ses"
	"dealer-report-srv/pkg/sns"
)

// @title       Dealer Report Service API
// @description Dealer report, import, notification and VIN decode API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Cancel ctx on SIGINT/SIGTERM so Run can drain and the deferred disconnects run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient := initializeDiscord(ctx, logger, cfg)

	// 7. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize MinIO (optional, report storage)
	minioClient := initializeMinIO(ctx, logger, cfg)
	if minioClient != nil {
		defer configMinio.Disconnect()
	}

	// 9. Initialize Kafka producer (optional, report events)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
		}
	}

	// 10. Initialize AWS SES / SNS (optional)
	mailer, smsPublisher := initializeAWS(ctx, logger, cfg)

	// 11. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 12. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Storage & Messaging Configuration
		MinIO:         minioClient,
		KafkaProducer: kafkaProducer,
		Mailer:        mailer,
		SMS:           smsPublisher,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Encrypter:  encrypterInstance,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
	logger.Info(context.Background(), "Cleanup completed")
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (*pkgJWT.Manager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}

func initializeDiscord(ctx context.Context, logger log.Logger, cfg *config.Config) discord.IDiscord {
	if cfg.Discord.WebhookID == "" {
		return nil
	}
	client, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		return nil
	}
	logger.Infof(ctx, "Discord webhook initialized successfully")
	return client
}

func initializeMinIO(ctx context.Context, logger log.Logger, cfg *config.Config) minio.MinIO {
	if cfg.MinIO.Endpoint == "" {
		logger.Warnf(ctx, "MinIO not configured, reports will not be stored")
		return nil
	}
	client, err := configMinio.Connect(ctx, &cfg.MinIO, cfg.Report.Bucket)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available (optional): %v", err)
		return nil
	}
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	return client
}

// initializeAWS returns nil senders for the channels that are disabled.
func initializeAWS(ctx context.Context, logger log.Logger, cfg *config.Config) (ses.Sender, sns.Publisher) {
	var mailer ses.Sender
	var publisher sns.Publisher

	if cfg.AWS.SESEnabled {
		m, err := ses.New(ctx, ses.Config{Region: cfg.AWS.Region, From: cfg.AWS.SESFrom})
		if err != nil {
			logger.Warnf(ctx, "SES not available (optional): %v", err)
		} else {
			mailer = m
			logger.Infof(ctx, "SES initialized in region %s", cfg.AWS.Region)
		}
	}

	if cfg.AWS.SNSEnabled {
		p, err := sns.New(ctx, cfg.AWS.Region)
		if err != nil {
			logger.Warnf(ctx, "SNS not available (optional): %v", err)
		} else {
			publisher = p
			logger.Infof(ctx, "SNS initialized in region %s", cfg.AWS.Region)
		}
	}

	return mailer, publisher
}
