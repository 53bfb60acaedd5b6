package http

import (
	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processDecodeVINRequest(c *gin.Context) (decodeVINReq, model.Scope, error) {
	var req decodeVINReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "vehicle.delivery.http.processDecodeVINRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	return req, scope.GetScopeFromContext(ctx), nil
}
