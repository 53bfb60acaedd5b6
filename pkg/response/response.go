package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dealer-report-srv/pkg/discord"
	pkgErrors "dealer-report-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// OKWithMeta writes a 200 success envelope carrying meta.
func OKWithMeta(c *gin.Context, data, meta any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data, Meta: meta})
}

// MultiStatus writes a 207 envelope: the result is usable but some sub-steps failed.
func MultiStatus(c *gin.Context, data, meta, errs any) {
	c.JSON(http.StatusMultiStatus, Resp{Success: true, Data: data, Meta: meta, Errors: errs})
}

// JSON writes body as is with the given status, for endpoints with their own body shape.
func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// Unauthorized writes a 401 failure envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{Success: false, Error: msgUnauthorized})
}

// Error writes a failure envelope. HTTPErrors keep their status and message;
// anything else is a 500 and is reported to Discord when d is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{Success: false, Error: httpErr.Message})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: msgInternal})
}

// PanicError writes a 500 envelope for a recovered panic.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, rec))
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: msgInternal})
}

func reportBug(ctx context.Context, d discord.IDiscord, msg string) {
	if d == nil {
		return
	}
	_ = d.ReportBug(ctx, msg)
}
