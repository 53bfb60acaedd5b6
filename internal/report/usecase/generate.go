package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/render"
	"dealer-report-srv/pkg/metrics"
)

// Generate runs the pipeline: build, project, render, deliver, audit.
// Failures up to rendering abort the run; delivery and audit failures are
// attached to the output as stage errors.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, ip report.GenerateInput) (report.GenerateOutput, error) {
	started := time.Now()
	kind := string(ip.Kind)

	if !sc.IsAuthenticated() {
		return report.GenerateOutput{}, report.ErrUnauthorized
	}

	// Step 1: Building. Permissions are settled before the request is interpreted.
	uc.l.Debugf(ctx, "report.usecase.Generate: stage=%s kind=%s format=%s", report.StageBuilding, ip.Kind, ip.Format)
	ts, err := uc.authorize(ctx, sc)
	if err != nil {
		metrics.ObserveReportFailure(kind, string(report.StageBuilding), started)
		return report.GenerateOutput{}, err
	}
	opts, err := buildOptions(ip)
	if err != nil {
		metrics.ObserveReportFailure(kind, string(report.StageBuilding), started)
		return report.GenerateOutput{}, err
	}

	// Step 2: Projecting
	uc.l.Debugf(ctx, "report.usecase.Generate: stage=%s kind=%s", report.StageProjecting, ip.Kind)
	rows, err := uc.repo.Project(ctx, ts, opts)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Projection failed: %v", err)
		metrics.ObserveReportFailure(kind, string(report.StageProjecting), started)
		return report.GenerateOutput{}, err
	}

	// Step 3: Rendering
	uc.l.Debugf(ctx, "report.usecase.Generate: stage=%s rows=%d", report.StageRendering, len(rows))
	artifact := report.Artifact{
		Title:       ip.Kind.Title(),
		Rows:        rows,
		GeneratedAt: uc.now().UTC(),
	}
	res, err := render.Render(artifact, ip.Format, ip.Parameters.GroupBy, uc.config.PreviewCap)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Rendering failed: %v", err)
		metrics.ObserveReportFailure(kind, string(report.StageRendering), started)
		return report.GenerateOutput{}, err
	}

	out := report.GenerateOutput{
		Kind:     ip.Kind,
		Format:   ip.Format,
		Payload:  res.Payload,
		RowCount: len(rows),
		Errors:   []report.StageError{},
	}

	// Step 4: Delivering
	if ip.Delivery != nil {
		uc.l.Debugf(ctx, "report.usecase.Generate: stage=%s method=%s", report.StageDelivering, ip.Delivery.Method)
		url, errs := uc.deliver(ctx, ts, ip, artifact, res)
		out.DownloadURL = url
		out.Errors = append(out.Errors, errs...)
	}

	// Step 5: Auditing
	uc.l.Debugf(ctx, "report.usecase.Generate: stage=%s", report.StageAuditing)
	if err := uc.recordAudit(ctx, ts, sc, ip); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Generate: Audit write failed: %v", err)
		out.Errors = append(out.Errors, report.StageError{
			Stage: report.StageAuditing,
			Error: fmt.Sprintf("%v: %v", report.ErrAuditWrite, err),
		})
	}

	for _, e := range out.Errors {
		metrics.ReportStageErrors.WithLabelValues(string(e.Stage)).Inc()
	}
	metrics.ObserveReport(kind, string(ip.Format), out.RowCount, started)

	// Step 6: Notify listeners
	uc.publishGenerated(ctx, ts, sc, out, artifact.GeneratedAt)

	return out, nil
}

func (uc *implUseCase) recordAudit(ctx context.Context, ts model.TenantScope, sc model.Scope, ip report.GenerateInput) error {
	params, err := json.Marshal(ip.Parameters)
	if err != nil {
		return err
	}
	_, err = uc.auditUC.RecordReport(ctx, audit.RecordReportInput{
		Tenant: ts,
		UserID: sc.UserID,
		Values: audit.ReportValues{
			Type:       string(ip.Kind),
			Format:     string(ip.Format),
			Parameters: params,
		},
	})
	return err
}

func (uc *implUseCase) publishGenerated(ctx context.Context, ts model.TenantScope, sc model.Scope, out report.GenerateOutput, at time.Time) {
	if uc.prod == nil {
		return
	}
	err := uc.prod.PublishGenerated(ctx, report.GeneratedEvent{
		DealershipID: ts.DealershipID(),
		UserID:       sc.UserID,
		Kind:         out.Kind,
		Format:       out.Format,
		RowCount:     out.RowCount,
		DownloadURL:  out.DownloadURL,
		Partial:      out.Partial(),
		GeneratedAt:  at,
	})
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Generate: Failed to publish generated event: %v", err)
	}
}
