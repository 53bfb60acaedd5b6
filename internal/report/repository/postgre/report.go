package postgre

import (
	"context"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
)

// Project executes the kind's projection once. Failures are not retried.
func (r *implRepository) Project(ctx context.Context, ts model.TenantScope, opts repository.ProjectOptions) ([]report.Row, error) {
	query, args, err := buildProjectionQuery(ts, opts)
	if err != nil {
		return nil, err
	}
	scan, ok := scanners[opts.Kind]
	if !ok {
		return nil, repository.ErrUnknownProjection
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Project: Failed to query %s: %v", opts.Kind, err)
		return nil, &report.DataAccessError{Kind: opts.Kind, Err: err}
	}
	defer rows.Close()

	result := make([]report.Row, 0)
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			r.l.Errorf(ctx, "report.repository.postgre.Project: Failed to scan %s row: %v", opts.Kind, err)
			return nil, &report.DataAccessError{Kind: opts.Kind, Err: err}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Project: Failed to iterate %s rows: %v", opts.Kind, err)
		return nil, &report.DataAccessError{Kind: opts.Kind, Err: err}
	}

	return result, nil
}
