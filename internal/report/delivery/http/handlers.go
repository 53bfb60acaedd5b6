package http

import (
	"net/http"

	"dealer-report-srv/internal/middleware"
	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Generate a report
// @Description Project the dealership's data for one report type and render it as json, csv or a pdf display bundle.
// @Description Delivery and audit failures keep the report and answer 207 with the failed stages.
// @Tags Report
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body generateReportReq true "Report generation request"
// @Success 200 {object} response.Resp{meta=generateReportMeta}
// @Success 207 {object} response.Resp{meta=generateReportMeta}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/reports/generate [post]
func (h *handler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGenerateReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.GenerateReport: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	meta := h.newGenerateReportMeta(o)
	if o.Partial() {
		response.MultiStatus(c, o.Payload, meta, o.Errors)
		return
	}
	response.OKWithMeta(c, o.Payload, meta)
}

// @Summary List generated reports
// @Description Page through the dealership's report runs, newest first.
// @Tags Report
// @Produce json
// @Security Bearer
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} response.Resp{data=[]historyEntryResp,meta=paginator.PaginatorResponse}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/reports/history [get]
func (h *handler) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListHistoryRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "report.delivery.http.ListHistory: usecase History failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OKWithMeta(c, h.newHistoryResp(o), o.Paginator.ToResponse())
}

// @Summary Queue a scheduled report
// @Description Internal: publish a report.scheduled trigger for the consumer.
// @Tags Internal
// @Accept json
// @Produce json
// @Param X-Service-Key header string true "Encrypted service key"
// @Param body body scheduleReportReq true "Scheduled report"
// @Success 202 {object} response.Resp{data=scheduleReportResp}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /internal/v1/reports/scheduled [post]
func (h *handler) ScheduleReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReportRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Schedule(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "report.delivery.http.ScheduleReport: usecase Schedule failed for %s: %v", middleware.ServiceName(c), err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.JSON(c, http.StatusAccepted, response.Resp{
		Success: true,
		Data:    scheduleReportResp{ScheduleID: req.ScheduleID, Status: "queued"},
	})
}
