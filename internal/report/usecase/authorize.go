package usecase

import (
	"context"
	"errors"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/tenant"
)

// authorize resolves the actor's dealership and checks the reports permission.
func (uc *implUseCase) authorize(ctx context.Context, sc model.Scope) (model.TenantScope, error) {
	if !sc.IsAuthenticated() {
		return model.TenantScope{}, report.ErrUnauthorized
	}

	profile, err := uc.tenantUC.Resolve(ctx, sc.UserID)
	if err != nil {
		if !errors.Is(err, tenant.ErrProfileNotFound) {
			uc.l.Errorf(ctx, "report.usecase.authorize: Failed to resolve profile: %v", err)
		}
		return model.TenantScope{}, report.ErrProfileNotFound
	}

	if !profile.Can(model.PermissionReportsView, model.PermissionReportsCreate) {
		return model.TenantScope{}, report.ErrInsufficientPermissions
	}

	ts, err := profile.Tenant()
	if err != nil {
		return model.TenantScope{}, report.ErrProfileNotFound
	}
	return ts, nil
}
