package http

import (
	"dealer-report-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	imports := r.Group("/imports")
	imports.Use(mw.Auth())
	{
		imports.POST("", h.Import)
	}
}
