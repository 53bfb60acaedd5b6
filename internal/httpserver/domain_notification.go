package httpserver

import (
	"context"

	"dealer-report-srv/internal/middleware"
	notificationHTTP "dealer-report-srv/internal/notification/delivery/http"
	notificationPostgre "dealer-report-srv/internal/notification/repository/postgre"
	notificationUsecase "dealer-report-srv/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupNotificationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := notificationPostgre.New(srv.postgresDB, srv.l)
	uc := notificationUsecase.New(repo, srv.tenantUC, srv.mailer, srv.sms, srv.l)

	handler := notificationHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)

	srv.l.Infof(ctx, "Notification domain registered")
}
