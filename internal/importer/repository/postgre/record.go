package postgre

import (
	"context"

	"dealer-report-srv/internal/importer/repository"
)

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) error {
	if opt.Tenant.IsZero() {
		return repository.ErrMissingTenant
	}
	rec := opt.Record
	if rec.Table == "" || len(rec.Columns) == 0 {
		return repository.ErrEmptyRecord
	}

	if opt.UpdateExisting && rec.KeyColumn != "" && rec.KeyValue != nil {
		q, args := buildUpdateQuery(opt.Tenant, rec)
		res, err := r.db.ExecContext(ctx, q, args...)
		if err != nil {
			r.l.Errorf(ctx, "importer.repository.postgre.Upsert: Failed to update %s: %v", rec.Table, err)
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			return nil
		}
	}

	q, args := buildInsertQuery(opt.Tenant, rec)
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.l.Errorf(ctx, "importer.repository.postgre.Upsert: Failed to insert into %s: %v", rec.Table, err)
		return err
	}
	return nil
}
