package http

import (
	"errors"
	"net/http"

	pkgErrors "dealer-report-srv/pkg/errors"
	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Send a notification
// @Description in_app writes one row per recipient; sms goes through SNS and email through SES, both logged as rows.
// @Description Answers 207 when any recipient or channel step failed.
// @Tags Notification
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body sendReq true "Notification"
// @Success 200 {object} sendResp
// @Success 207 {object} sendResp
// @Failure 400 {object} sendResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/notifications/send [post]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSendRequest(c)
	if err != nil {
		h.writeFailure(c, err)
		return
	}

	o, err := h.uc.Send(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "notification.delivery.http.Send: usecase Send failed: %v", err)
		h.writeFailure(c, h.mapError(err))
		return
	}

	status := http.StatusOK
	if !o.Success() {
		status = http.StatusMultiStatus
	}
	response.JSON(c, status, h.newSendResp(o))
}

func (h *handler) writeFailure(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		response.Error(c, err, h.discord)
		return
	}
	response.JSON(c, httpErr.Code, newSendFailure(httpErr.Message))
}
