package usecase

import (
	"context"
	"errors"

	"dealer-report-srv/internal/importer"
	"dealer-report-srv/internal/importer/repository"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/tenant"
	pkgErrors "dealer-report-srv/pkg/errors"
	"dealer-report-srv/pkg/metrics"
)

func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, ip importer.ImportInput) (importer.ImportOutput, error) {
	if !sc.IsAuthenticated() {
		return importer.ImportOutput{}, importer.ErrUnauthorized
	}
	if !ip.Type.Valid() {
		return importer.ImportOutput{}, &importer.UnknownTypeError{Type: ip.Type}
	}
	if len(ip.Rows) > uc.maxRows {
		return importer.ImportOutput{}, importer.ErrTooManyRows
	}

	ts, err := uc.resolveTenant(ctx, sc.UserID)
	if err != nil {
		return importer.ImportOutput{}, err
	}

	uc.l.Infof(ctx, "importer.usecase.Import: Starting import of %d %s rows", len(ip.Rows), ip.Type)

	out := importer.ImportOutput{Errors: []importer.RowError{}}
	for i, row := range ip.Rows {
		err := uc.importRow(ctx, ts, sc.UserID, ip, row)
		if err == nil {
			out.Imported++
			metrics.ImportRows.WithLabelValues(string(ip.Type), "imported").Inc()
			continue
		}

		uc.l.Warnf(ctx, "importer.usecase.Import: Row %d rejected: %v", i+1, err)
		metrics.ImportRows.WithLabelValues(string(ip.Type), "failed").Inc()
		out.Errors = append(out.Errors, importer.RowError{Row: i + 1, Error: rowMessage(err), Data: row})
		if !ip.Options.SkipErrors {
			break
		}
		out.Skipped++
	}
	out.Success = len(out.Errors) == 0

	uc.l.Infof(ctx, "importer.usecase.Import: Import completed: %d imported, %d errors, %d skipped",
		out.Imported, len(out.Errors), out.Skipped)
	return out, nil
}

func (uc *implUseCase) resolveTenant(ctx context.Context, userID string) (model.TenantScope, error) {
	profile, err := uc.tenantUC.Resolve(ctx, userID)
	if err != nil {
		if !errors.Is(err, tenant.ErrProfileNotFound) {
			uc.l.Errorf(ctx, "importer.usecase.resolveTenant: Failed to resolve profile: %v", err)
		}
		return model.TenantScope{}, importer.ErrProfileNotFound
	}
	ts, err := profile.Tenant()
	if err != nil {
		return model.TenantScope{}, importer.ErrProfileNotFound
	}
	return ts, nil
}

func (uc *implUseCase) importRow(ctx context.Context, ts model.TenantScope, userID string, ip importer.ImportInput, row map[string]any) error {
	rec, err := importer.BuildRecord(ip.Type, row, userID)
	if err != nil {
		return err
	}
	return uc.repo.Upsert(ctx, repository.UpsertOptions{
		Tenant:         ts,
		Record:         rec,
		UpdateExisting: ip.Options.UpdateExisting,
	})
}

// rowMessage keeps validation messages and hides driver details behind a stable classification.
func rowMessage(err error) string {
	var ve *importer.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return pkgErrors.DatabaseMessage(err)
}
