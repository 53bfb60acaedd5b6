package consumer

import (
	"context"
	"database/sql"

	"dealer-report-srv/config"
	pkgKafka "dealer-report-srv/pkg/kafka"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/minio"
	"dealer-report-srv/pkg/redis"
	"dealer-report-srv/pkg/ses"
)

// ConsumerServer is the Kafka consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l           log.Logger
	kafkaConfig config.KafkaConfig
	reportCfg   config.ReportConfig

	// Infrastructure clients
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
	mailer        ses.Sender
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger       log.Logger
	KafkaConfig  config.KafkaConfig
	ReportConfig config.ReportConfig

	// Infrastructure clients
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	Mailer        ses.Sender
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
