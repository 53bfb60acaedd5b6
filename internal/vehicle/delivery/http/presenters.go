package http

import "dealer-report-srv/internal/vehicle"

type decodeVINReq struct {
	VIN string `json:"vin"`
}

func (r decodeVINReq) toInput() vehicle.DecodeInput {
	return vehicle.DecodeInput{VIN: r.VIN}
}
