package repository

import (
	"context"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	// Project runs the kind's projection for one tenant. An empty result is a non-nil empty slice.
	Project(ctx context.Context, ts model.TenantScope, opts ProjectOptions) ([]report.Row, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ReportRepository
}
