package middleware

import (
	"strings"

	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceNameKey = "service_name"

// ServiceAuth validates the X-Service-Key header for service-to-service calls.
// The header is an encrypted "serviceName:key"; the key is checked against the
// configured bcrypt hash for that service.
func (m Middleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		serviceKey := c.GetHeader("X-Service-Key")
		if serviceKey == "" || m.encrypter == nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		decryptedKey, err := m.encrypter.Decrypt(serviceKey)
		if err != nil {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Decrypt failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		serviceName, keyValue, ok := strings.Cut(decryptedKey, ":")
		if !ok || serviceName == "" || keyValue == "" {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Invalid key format (expected serviceName:key)")
			response.Unauthorized(c)
			c.Abort()
			return
		}

		hash, exists := m.serviceKeys[serviceName]
		if !exists {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Service not found: %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Do not log key values
		if !m.encrypter.CompareHash(keyValue, hash) {
			m.l.Errorf(ctx, "middleware.ServiceAuth: Key mismatch for service %s", serviceName)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(serviceNameKey, serviceName)
		c.Next()
	}
}

// ServiceName returns the caller set by ServiceAuth.
func ServiceName(c *gin.Context) string {
	return c.GetString(serviceNameKey)
}
