package http

import (
	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user-facing report routes under r (/api/v1).
func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.Use(mw.Auth())
	{
		reports.POST("/generate", h.GenerateReport)
		reports.GET("/history", h.ListHistory)
	}
}

// RegisterInternalRoutes mounts the service-to-service routes under r (/internal/v1).
func (h *handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports")
	reports.Use(mw.ServiceAuth())
	{
		reports.POST("/scheduled", h.ScheduleReport)
	}
}
