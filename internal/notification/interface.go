package notification

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
}
