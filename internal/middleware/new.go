package middleware

import (
	"dealer-report-srv/config"
	"dealer-report-srv/pkg/encrypter"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	serviceKeys  map[string]string
	encrypter    encrypter.Encrypter
	corsOrigins  []string
}

// New builds the middleware set. serviceKeys maps a service name to the bcrypt hash of its key.
func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, serviceKeys map[string]string, enc encrypter.Encrypter, corsOrigins []string) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		serviceKeys:  serviceKeys,
		encrypter:    enc,
		corsOrigins:  corsOrigins,
	}
}
