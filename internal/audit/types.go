package audit

import (
	"encoding/json"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/paginator"
)

// ReportValues is the new_values document of a report generation entry.
type ReportValues struct {
	Type       string          `json:"type"`
	Format     string          `json:"format"`
	Parameters json.RawMessage `json:"parameters"`
}

type RecordReportInput struct {
	Tenant model.TenantScope
	UserID string
	Values ReportValues
}

type ListReportsInput struct {
	Tenant   model.TenantScope
	Paginate paginator.PaginateQuery
}

type ListReportsOutput struct {
	Logs      []model.AuditLog
	Paginator paginator.Paginator
}
