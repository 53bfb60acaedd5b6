package usecase

import (
	"context"
	"encoding/json"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
)

// History lists the tenant's past report runs from the audit trail.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, ip report.HistoryInput) (report.HistoryOutput, error) {
	ts, err := uc.authorize(ctx, sc)
	if err != nil {
		return report.HistoryOutput{}, err
	}

	o, err := uc.auditUC.ListReports(ctx, audit.ListReportsInput{
		Tenant:   ts,
		Paginate: ip.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.History: Failed to list audit logs: %v", err)
		return report.HistoryOutput{}, err
	}

	entries := make([]report.HistoryEntry, 0, len(o.Logs))
	for _, l := range o.Logs {
		entries = append(entries, toHistoryEntry(l))
	}
	return report.HistoryOutput{
		Entries:   entries,
		Paginator: o.Paginator,
	}, nil
}

func toHistoryEntry(l model.AuditLog) report.HistoryEntry {
	e := report.HistoryEntry{
		ID:        l.ID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
	}
	var v audit.ReportValues
	if err := json.Unmarshal(l.NewValues, &v); err == nil {
		e.Kind = report.Kind(v.Type)
		e.Format = report.Format(v.Format)
		e.Parameters = v.Parameters
	}
	return e
}
