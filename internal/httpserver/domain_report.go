package httpserver

import (
	"context"

	"dealer-report-srv/internal/middleware"
	"dealer-report-srv/internal/report"
	reportHTTP "dealer-report-srv/internal/report/delivery/http"
	reportProducer "dealer-report-srv/internal/report/delivery/kafka/producer"
	reportPostgre "dealer-report-srv/internal/report/repository/postgre"
	reportUsecase "dealer-report-srv/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, api, internal *gin.RouterGroup, mw middleware.Middleware) {
	repo := reportPostgre.New(srv.postgresDB, srv.l)

	var prod report.Producer
	if srv.kafkaProducer != nil {
		prod = reportProducer.New(srv.l, srv.kafkaProducer, reportProducer.Topics{
			Generated: srv.config.Kafka.Topic,
			Scheduled: srv.config.Kafka.ScheduledTopic,
		})
	}

	var store reportUsecase.ArtifactStore
	if srv.minioClient != nil {
		store = srv.minioClient
	}

	uc := reportUsecase.New(repo, srv.tenantUC, srv.auditUC, store, srv.mailer, prod, srv.l, reportUsecase.Config{
		Bucket:        srv.config.Report.Bucket,
		PresignExpiry: srv.config.Report.PresignExpiry,
		PreviewCap:    srv.config.Report.PreviewCap,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)
	handler.RegisterInternalRoutes(internal, mw)

	srv.l.Infof(ctx, "Report domain registered")
}
