package http

import (
	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(mw.Auth())
	{
		vehicles.POST("/decode-vin", h.DecodeVIN)
	}
}
