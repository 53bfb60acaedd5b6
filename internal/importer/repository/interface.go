package repository

import (
	"context"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// Upsert writes one record. With UpdateExisting it first updates the tenant's row
	// matching the record key and only inserts when nothing matched.
	Upsert(ctx context.Context, opt UpsertOptions) error
}
