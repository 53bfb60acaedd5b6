package httpserver

import (
	"net/http"

	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Dealer Report API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "dealer-report-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports readiness. Postgres and Redis are required; the artifact
// store and the event producer only degrade report delivery when they are down.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready (possibly degraded)"
// @Failure 503 {object} map[string]interface{} "A required dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.notReady(c, "Database connection failed", err)
		return
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		srv.notReady(c, "Redis connection failed", err)
		return
	}

	status := "ready"
	storage := dependencyState(srv.minioClient != nil, func() error { return srv.minioClient.HealthCheck(ctx) })
	events := dependencyState(srv.kafkaProducer != nil, func() error { return srv.kafkaProducer.HealthCheck() })
	if storage == stateDown || events == stateDown {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":   status,
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"database": stateConnected,
		"redis":    stateConnected,
		"storage":  storage,
		"events":   events,
	})
}

const (
	stateConnected = "connected"
	stateDisabled  = "disabled"
	stateDown      = "down"
)

func dependencyState(configured bool, check func() error) string {
	if !configured {
		return stateDisabled
	}
	if err := check(); err != nil {
		return stateDown
	}
	return stateConnected
}

func (srv *HTTPServer) notReady(c *gin.Context, message string, err error) {
	srv.l.Warnf(c.Request.Context(), "httpserver.readyCheck: %s: %v", message, err)
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": message,
		"error":   err.Error(),
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
