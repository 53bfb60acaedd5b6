package audit

import (
	"context"

	"dealer-report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RecordReport appends exactly one GENERATE entry for a report run.
	RecordReport(ctx context.Context, input RecordReportInput) (model.AuditLog, error)
	// ListReports pages through the tenant's GENERATE entries, newest first.
	ListReports(ctx context.Context, input ListReportsInput) (ListReportsOutput, error)
}
