package httpserver

import (
	"context"

	auditPostgre "dealer-report-srv/internal/audit/repository/postgre"
	auditUsecase "dealer-report-srv/internal/audit/usecase"
	tenantPostgre "dealer-report-srv/internal/tenant/repository/postgre"
	tenantRedis "dealer-report-srv/internal/tenant/repository/redis"
	tenantUsecase "dealer-report-srv/internal/tenant/usecase"
)

// setupCoreDomains builds the usecases every feature domain shares.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) {
	tenantRepo := tenantPostgre.New(srv.postgresDB, srv.l)
	tenantCache := tenantRedis.New(srv.redisClient, srv.l)
	srv.tenantUC = tenantUsecase.New(tenantRepo, tenantCache, srv.l, srv.config.Report.PermissionCacheTTL)

	auditRepo := auditPostgre.New(srv.postgresDB, srv.l)
	srv.auditUC = auditUsecase.New(auditRepo, srv.l)

	srv.l.Infof(ctx, "Core domains (Tenant, Audit) initialized")
}
