package http

import (
	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	notifications := r.Group("/notifications")
	notifications.Use(mw.Auth())
	{
		notifications.POST("/send", h.Send)
	}
}
