package nhtsa

import (
	"strings"

	"dealer-report-srv/internal/vehicle/repository"
	pkgHttp "dealer-report-srv/pkg/http"
	"dealer-report-srv/pkg/log"
)

const DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

type implDecoderRepository struct {
	client  pkgHttp.IClient
	baseURL string
	l       log.Logger
}

// New - Factory. baseURL defaults to the public vPIC API.
func New(client pkgHttp.IClient, baseURL string, l log.Logger) repository.DecoderRepository {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &implDecoderRepository{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		l:       l,
	}
}
