package http

import (
	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSendRequest(c *gin.Context) (sendReq, model.Scope, error) {
	var req sendReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.processSendRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}
