package http

import (
	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateReportRequest(c *gin.Context) (generateReportReq, model.Scope, error) {
	var req generateReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processGenerateReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListHistoryRequest(c *gin.Context) (listHistoryReq, model.Scope, error) {
	var req listHistoryReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.processListHistoryRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processScheduleReportRequest(c *gin.Context) (scheduleReportReq, error) {
	var req scheduleReportReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "report.delivery.http.processScheduleReportRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}
	return req, nil
}
