package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig
	MinIO    MinIOConfig

	// Event streaming
	Kafka KafkaConfig

	// Outbound messaging
	AWS AWSConfig

	// Authentication
	JWT            JWTConfig
	Cookie         CookieConfig
	Encrypter      EncrypterConfig
	InternalConfig InternalConfig

	// Domain
	Report ReportConfig
	Import ImportConfig
	VIN    VINConfig

	// Monitoring
	Metrics MetricsConfig
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host        string
	Port        int
	Mode        string
	CORSOrigins []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MinIOConfig is the configuration for the report artifact store.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	GroupID string
	// Topic is the default producer topic (report.generated).
	Topic          string
	ScheduledTopic string
	ClientID       string
	// InitialOffset applies when the consumer group has no committed offset: oldest | newest.
	InitialOffset string
}

// AWSConfig configures SES and SNS.
type AWSConfig struct {
	Region     string
	SESFrom    string
	SNSEnabled bool
	SESEnabled bool
}

// CookieConfig configures the auth cookie the token can be read from.
type CookieConfig struct {
	Name string
}

// JWTConfig is used to verify tokens issued by the auth service.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// EncrypterConfig is the configuration for the encrypter
type EncrypterConfig struct {
	Key string
}

// InternalConfig maps service names to bcrypt hashes of their keys.
type InternalConfig struct {
	ServiceKeys map[string]string
}

// ReportConfig tunes the report pipeline.
type ReportConfig struct {
	Bucket             string
	PresignExpiry      time.Duration
	PreviewCap         int
	PermissionCacheTTL time.Duration
}

// ImportConfig bounds bulk imports.
type ImportConfig struct {
	MaxRows int
}

// VINConfig configures the NHTSA vPIC client.
type VINConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Retries  int
	CacheTTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration from an optional .env file, dealer-config.yaml and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("dealer-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/dealer/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional; env vars alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.CORSOrigins = viper.GetStringSlice("http_server.cors_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ScheduledTopic = viper.GetString("kafka.scheduled_topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")
	cfg.Kafka.InitialOffset = viper.GetString("kafka.initial_offset")

	// AWS
	cfg.AWS.Region = viper.GetString("aws.region")
	cfg.AWS.SESFrom = viper.GetString("aws.ses_from")
	cfg.AWS.SESEnabled = viper.GetBool("aws.ses_enabled")
	cfg.AWS.SNSEnabled = viper.GetBool("aws.sns_enabled")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Encrypter
	cfg.Encrypter.Key = viper.GetString("encrypter.key")

	// Internal service keys
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, hash := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = hash
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Report
	cfg.Report.Bucket = viper.GetString("report.bucket")
	cfg.Report.PresignExpiry = viper.GetDuration("report.presign_expiry")
	cfg.Report.PreviewCap = viper.GetInt("report.preview_cap")
	cfg.Report.PermissionCacheTTL = viper.GetDuration("report.permission_cache_ttl")

	// Import
	cfg.Import.MaxRows = viper.GetInt("import.max_rows")

	// VIN
	cfg.VIN.BaseURL = viper.GetString("vin.base_url")
	cfg.VIN.Timeout = viper.GetDuration("vin.timeout")
	cfg.VIN.Retries = viper.GetInt("vin.retries")
	cfg.VIN.CacheTTL = viper.GetDuration("vin.cache_ttl")

	// Monitoring
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "dealer")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "dealer-reports")

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.group_id", "dealer-report-consumer")
	viper.SetDefault("kafka.topic", "report.generated")
	viper.SetDefault("kafka.scheduled_topic", "report.scheduled")
	viper.SetDefault("kafka.client_id", "dealer-report-srv")
	viper.SetDefault("kafka.initial_offset", "oldest")

	// AWS
	viper.SetDefault("aws.region", "us-east-1")
	viper.SetDefault("aws.ses_enabled", false)
	viper.SetDefault("aws.sns_enabled", false)

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "dealer-auth-service")
	viper.SetDefault("jwt.audience", []string{"dealer-report-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours
	viper.SetDefault("cookie.name", "dealer_auth_token")

	// Report
	viper.SetDefault("report.bucket", "dealer-reports")
	viper.SetDefault("report.presign_expiry", 24*time.Hour)
	viper.SetDefault("report.preview_cap", 50)
	viper.SetDefault("report.permission_cache_ttl", 5*time.Minute)

	// Import
	viper.SetDefault("import.max_rows", 5000)

	// VIN
	viper.SetDefault("vin.base_url", "https://vpic.nhtsa.dot.gov/api/vehicles")
	viper.SetDefault("vin.timeout", 10*time.Second)
	viper.SetDefault("vin.retries", 2)
	viper.SetDefault("vin.cache_ttl", 24*time.Hour)

	viper.SetDefault("metrics.enabled", true)
}

func validate(cfg *Config) error {
	// JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}

	// Encrypter
	if cfg.Encrypter.Key == "" {
		return fmt.Errorf("encrypter.key is required")
	}
	if n := len(cfg.Encrypter.Key); n != 16 && n != 24 && n != 32 {
		return fmt.Errorf("encrypter.key must be 16, 24 or 32 bytes")
	}

	// PostgreSQL
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	// Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// MinIO
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	// Kafka
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one value")
	}
	if cfg.Kafka.Topic == "" || cfg.Kafka.ScheduledTopic == "" {
		return fmt.Errorf("kafka.topic and kafka.scheduled_topic are required")
	}
	if cfg.Kafka.InitialOffset != "oldest" && cfg.Kafka.InitialOffset != "newest" {
		return fmt.Errorf("kafka.initial_offset must be oldest or newest")
	}

	// AWS
	if cfg.AWS.SESEnabled && cfg.AWS.SESFrom == "" {
		return fmt.Errorf("aws.ses_from is required when aws.ses_enabled is set")
	}

	// Report
	if cfg.Report.PreviewCap <= 0 {
		return fmt.Errorf("report.preview_cap must be greater than 0")
	}
	if cfg.Report.PresignExpiry <= 0 || cfg.Report.PresignExpiry > 7*24*time.Hour {
		return fmt.Errorf("report.presign_expiry must be between 0 and 168h")
	}
	if cfg.Import.MaxRows <= 0 {
		return fmt.Errorf("import.max_rows must be greater than 0")
	}

	return nil
}
