package http

import (
	"dealer-report-srv/internal/importer"
	"dealer-report-srv/internal/middleware"
	"dealer-report-srv/pkg/discord"
	"dealer-report-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      importer.UseCase
	discord discord.IDiscord
	schema  *gojsonschema.Schema
}

func New(l log.Logger, uc importer.UseCase, discord discord.IDiscord) (Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(importRequestSchema))
	if err != nil {
		return nil, err
	}
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
		schema:  schema,
	}, nil
}
