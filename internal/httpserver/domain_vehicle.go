package httpserver

import (
	"context"

	"dealer-report-srv/internal/middleware"
	vehicleHTTP "dealer-report-srv/internal/vehicle/delivery/http"
	vehicleNHTSA "dealer-report-srv/internal/vehicle/repository/nhtsa"
	vehicleRedis "dealer-report-srv/internal/vehicle/repository/redis"
	vehicleUsecase "dealer-report-srv/internal/vehicle/usecase"
	pkgHttp "dealer-report-srv/pkg/http"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupVehicleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	clientCfg := pkgHttp.DefaultConfig()
	if srv.config.VIN.Timeout > 0 {
		clientCfg.Timeout = srv.config.VIN.Timeout
	}
	clientCfg.Retries = srv.config.VIN.Retries

	decoder := vehicleNHTSA.New(pkgHttp.NewClient(clientCfg), srv.config.VIN.BaseURL, srv.l)
	cache := vehicleRedis.New(srv.redisClient, srv.l)
	uc := vehicleUsecase.New(decoder, cache, srv.l, srv.config.VIN.CacheTTL)

	handler := vehicleHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(api, mw)

	srv.l.Infof(ctx, "Vehicle domain registered")
}
