package httpserver

import (
	"context"

	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(
		srv.l,
		srv.jwtManager,
		srv.config.Cookie,
		srv.config.InternalConfig.ServiceKeys,
		srv.encrypter,
		srv.config.HTTPServer.CORSOrigins,
	)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.setupCoreDomains(ctx)

	api := srv.gin.Group("/api/v1")
	internal := srv.gin.Group("/internal/v1")

	srv.setupReportDomain(ctx, api, internal, mw)
	if err := srv.setupImportDomain(ctx, api, mw); err != nil {
		return err
	}
	srv.setupNotificationDomain(ctx, api, mw)
	srv.setupVehicleDomain(ctx, api, mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(mw.CORS())

	ctx := context.Background()
	if len(srv.config.HTTPServer.CORSOrigins) == 0 {
		srv.l.Infof(ctx, "CORS mode: %s (any origin)", srv.environment)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (%d allowed origins)", srv.environment, len(srv.config.HTTPServer.CORSOrigins))
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.config.Metrics.Enabled {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
