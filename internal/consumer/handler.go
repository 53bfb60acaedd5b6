package consumer

import (
	"context"
	"fmt"

	auditPostgre "dealer-report-srv/internal/audit/repository/postgre"
	auditUsecase "dealer-report-srv/internal/audit/usecase"
	"dealer-report-srv/internal/report"
	reportConsumer "dealer-report-srv/internal/report/delivery/kafka/consumer"
	reportProducer "dealer-report-srv/internal/report/delivery/kafka/producer"
	reportPostgre "dealer-report-srv/internal/report/repository/postgre"
	reportUsecase "dealer-report-srv/internal/report/usecase"
	tenantPostgre "dealer-report-srv/internal/tenant/repository/postgre"
	tenantRedis "dealer-report-srv/internal/tenant/repository/redis"
	tenantUsecase "dealer-report-srv/internal/tenant/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer *reportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	tenantUC := tenantUsecase.New(
		tenantPostgre.New(srv.postgresDB, srv.l),
		tenantRedis.New(srv.redisClient, srv.l),
		srv.l,
		srv.reportCfg.PermissionCacheTTL,
	)
	auditUC := auditUsecase.New(auditPostgre.New(srv.postgresDB, srv.l), srv.l)

	var prod report.Producer
	if srv.kafkaProducer != nil {
		prod = reportProducer.New(srv.l, srv.kafkaProducer, reportProducer.Topics{
			Generated: srv.kafkaConfig.Topic,
			Scheduled: srv.kafkaConfig.ScheduledTopic,
		})
	}

	reportUC := reportUsecase.New(
		reportPostgre.New(srv.postgresDB, srv.l),
		tenantUC,
		auditUC,
		srv.minioClient,
		srv.mailer,
		prod,
		srv.l,
		reportUsecase.Config{
			Bucket:        srv.reportCfg.Bucket,
			PresignExpiry: srv.reportCfg.PresignExpiry,
			PreviewCap:    srv.reportCfg.PreviewCap,
		},
	)

	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     reportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		reportConsumer: reportCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeScheduledReports(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
