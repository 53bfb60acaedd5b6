package importer

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Import(ctx context.Context, sc model.Scope, input ImportInput) (ImportOutput, error)
}
