package middleware

import (
	"net/http"

	"dealer-report-srv/pkg/discord"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/response"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the 500 envelope and alerts Discord.
// Panics after the response has been written only get logged.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if err == http.ErrAbortHandler {
				panic(err)
			}

			ctx := c.Request.Context()
			logger.Errorf(ctx, "middleware.Recovery: panic recovered: %v | %s %s | user=%s",
				err, c.Request.Method, c.Request.URL.Path, caller(c))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, err, discordClient)
			c.Abort()
		}()
		c.Next()
	}
}

// caller names whoever made the request, for panic logs.
func caller(c *gin.Context) string {
	if name := ServiceName(c); name != "" {
		return "service:" + name
	}
	if sc := scope.GetScopeFromContext(c.Request.Context()); sc.UserID != "" {
		return sc.UserID
	}
	return "anonymous"
}
