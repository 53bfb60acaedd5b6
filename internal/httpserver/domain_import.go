package httpserver

import (
	"context"
	"fmt"

	importerHTTP "dealer-report-srv/internal/importer/delivery/http"
	importerPostgre "dealer-report-srv/internal/importer/repository/postgre"
	importerUsecase "dealer-report-srv/internal/importer/usecase"
	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupImportDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := importerPostgre.New(srv.postgresDB, srv.l)
	uc := importerUsecase.New(repo, srv.tenantUC, srv.l, srv.config.Import.MaxRows)

	handler, err := importerHTTP.New(srv.l, uc, srv.discord)
	if err != nil {
		return fmt.Errorf("failed to create import handler: %w", err)
	}
	handler.RegisterRoutes(api, mw)

	srv.l.Infof(ctx, "Import domain registered")
	return nil
}
