package httpserver

import (
	"database/sql"
	"errors"

	"dealer-report-srv/config"
	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/pkg/discord"
	"dealer-report-srv/pkg/encrypter"
	pkgKafka "dealer-report-srv/pkg/kafka"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/minio"
	pkgRedis "dealer-report-srv/pkg/redis"
	"dealer-report-srv/pkg/scope"
	"dealer-report-srv/pkg/ses"
	"dealer-report-srv/pkg/sns"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Storage & Messaging Configuration (optional)
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	mailer        ses.Sender
	sms           sns.Publisher

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Shared domain usecases, built in setupCoreDomains
	tenantUC tenant.UseCase
	auditUC  audit.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Storage & Messaging Configuration (optional)
	MinIO         minio.MinIO
	KafkaProducer pkgKafka.IProducer
	Mailer        ses.Sender
	SMS           sns.Publisher

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Storage & Messaging Configuration
		minioClient:   cfg.MinIO,
		kafkaProducer: cfg.KafkaProducer,
		mailer:        cfg.Mailer,
		sms:           cfg.SMS,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}

	// MinIO, Kafka, SES, SNS and Discord are optional: the features that need
	// them report a stage error or a channel error when they are missing.
	return nil
}
