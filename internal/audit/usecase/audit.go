package usecase

import (
	"context"
	"encoding/json"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/audit/repository"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/paginator"
)

func (uc *implUseCase) RecordReport(ctx context.Context, input audit.RecordReportInput) (model.AuditLog, error) {
	if input.Tenant.IsZero() {
		return model.AuditLog{}, audit.ErrMissingTenant
	}
	if input.UserID == "" {
		return model.AuditLog{}, audit.ErrMissingActor
	}

	values := input.Values
	if len(values.Parameters) == 0 {
		values.Parameters = json.RawMessage(`{}`)
	}
	b, err := json.Marshal(values)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.RecordReport: Failed to marshal values: %v", err)
		return model.AuditLog{}, audit.ErrWriteFailed
	}

	entry, err := uc.repo.Create(ctx, repository.CreateOptions{
		Tenant:    input.Tenant,
		UserID:    input.UserID,
		TableName: model.AuditTableReports,
		Action:    model.AuditActionGenerate,
		NewValues: b,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.RecordReport: Failed to create audit log: %v", err)
		return model.AuditLog{}, audit.ErrWriteFailed
	}
	return entry, nil
}

func (uc *implUseCase) ListReports(ctx context.Context, input audit.ListReportsInput) (audit.ListReportsOutput, error) {
	if input.Tenant.IsZero() {
		return audit.ListReportsOutput{}, audit.ErrMissingTenant
	}
	input.Paginate.Adjust()

	logs, err := uc.repo.List(ctx, repository.ListOptions{
		Tenant:    input.Tenant,
		TableName: model.AuditTableReports,
		Action:    model.AuditActionGenerate,
		Limit:     input.Paginate.Limit,
		Offset:    input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.ListReports: Failed to list audit logs: %v", err)
		return audit.ListReportsOutput{}, audit.ErrListFailed
	}

	total, err := uc.repo.Count(ctx, repository.CountOptions{
		Tenant:    input.Tenant,
		TableName: model.AuditTableReports,
		Action:    model.AuditActionGenerate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.ListReports: Failed to count audit logs: %v", err)
		return audit.ListReportsOutput{}, audit.ErrListFailed
	}

	return audit.ListReportsOutput{
		Logs:      logs,
		Paginator: paginator.New(input.Paginate, total, len(logs)),
	}, nil
}
