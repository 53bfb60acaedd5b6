package http

import (
	"dealer-report-srv/internal/middleware"
	"dealer-report-srv/internal/notification"
	"dealer-report-srv/pkg/discord"
	"dealer-report-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      notification.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
