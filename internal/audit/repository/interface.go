package repository

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Create(ctx context.Context, opt CreateOptions) (model.AuditLog, error)
	List(ctx context.Context, opt ListOptions) ([]model.AuditLog, error)
	Count(ctx context.Context, opt CountOptions) (int64, error)
}
