package vehicle

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	DecodeVIN(ctx context.Context, sc model.Scope, input DecodeInput) (DecodedVehicle, error)
}
