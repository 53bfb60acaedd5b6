package http

import (
	"dealer-report-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Decode a VIN
// @Description Looks the VIN up in NHTSA vPIC. Results are cached for a day.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body decodeVINReq true "VIN"
// @Success 200 {object} response.Resp{data=vehicle.DecodedVehicle}
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/vehicles/decode-vin [post]
func (h *handler) DecodeVIN(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDecodeVINRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	v, err := h.uc.DecodeVIN(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "vehicle.delivery.http.DecodeVIN: usecase DecodeVIN failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, v)
}
