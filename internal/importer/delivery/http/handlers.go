package http

import (
	"errors"
	"net/http"

	pkgErrors "dealer-report-srv/pkg/errors"
	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Bulk import vehicles, customers or parts
// @Description Accepts a JSON document {type, data, options} or a text/csv body with ?type=&skip_errors=&update_existing=.
// @Description Row failures are reported in errors with their 1-based row number; the status stays 200.
// @Tags Import
// @Accept json
// @Accept text/csv
// @Produce json
// @Security Bearer
// @Param body body importReq false "JSON import document"
// @Param type query string false "Import type for CSV bodies"
// @Success 200 {object} importResp
// @Failure 400 {object} importResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/imports [post]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processImportRequest(c)
	if err != nil {
		h.writeFailure(c, err)
		return
	}

	o, err := h.uc.Import(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "importer.delivery.http.Import: usecase Import failed: %v", err)
		h.writeFailure(c, h.mapError(err))
		return
	}

	response.JSON(c, http.StatusOK, h.newImportResp(o))
}

func (h *handler) writeFailure(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		response.Error(c, err, h.discord)
		return
	}
	response.JSON(c, httpErr.Code, newImportFailure(httpErr.Message))
}
