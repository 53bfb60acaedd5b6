package usecase

import (
	"context"
	"io"
	"time"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
	"dealer-report-srv/pkg/minio"
	"dealer-report-srv/pkg/ses"
)

type fakeRepo struct {
	calls   int
	opts    repository.ProjectOptions
	project func(ctx context.Context, ts model.TenantScope, opts repository.ProjectOptions) ([]report.Row, error)
}

func (f *fakeRepo) Project(ctx context.Context, ts model.TenantScope, opts repository.ProjectOptions) ([]report.Row, error) {
	f.calls++
	f.opts = opts
	return f.project(ctx, ts, opts)
}

type fakeTenant struct {
	calls   int
	resolve func(ctx context.Context, userID string) (model.Profile, error)
}

func (f *fakeTenant) Resolve(ctx context.Context, userID string) (model.Profile, error) {
	f.calls++
	return f.resolve(ctx, userID)
}

func (f *fakeTenant) Invalidate(context.Context, string) error { return nil }

type fakeAudit struct {
	records []audit.RecordReportInput
	record  func(ctx context.Context, input audit.RecordReportInput) (model.AuditLog, error)
	list    func(ctx context.Context, input audit.ListReportsInput) (audit.ListReportsOutput, error)
}

func (f *fakeAudit) RecordReport(ctx context.Context, input audit.RecordReportInput) (model.AuditLog, error) {
	f.records = append(f.records, input)
	if f.record == nil {
		return model.AuditLog{ID: int64(len(f.records))}, nil
	}
	return f.record(ctx, input)
}

func (f *fakeAudit) ListReports(ctx context.Context, input audit.ListReportsInput) (audit.ListReportsOutput, error) {
	return f.list(ctx, input)
}

type fakeStore struct {
	uploaded []*minio.UploadRequest
	bodies   [][]byte
	upload   func(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error)
}

func (f *fakeStore) UploadFile(ctx context.Context, req *minio.UploadRequest) (*minio.FileInfo, error) {
	f.uploaded = append(f.uploaded, req)
	b, _ := io.ReadAll(req.Reader)
	f.bodies = append(f.bodies, b)
	if f.upload != nil {
		return f.upload(ctx, req)
	}
	return &minio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: req.Size}, nil
}

func (f *fakeStore) GetPresignedDownloadURL(_ context.Context, req *minio.PresignedURLRequest) (*minio.PresignedURLResponse, error) {
	return &minio.PresignedURLResponse{
		URL:       "https://files.test/" + req.BucketName + "/" + req.ObjectName,
		ExpiresAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}, nil
}

type fakeMailer struct {
	sent []ses.Message
	send func(ctx context.Context, msg ses.Message) (string, error)
}

func (f *fakeMailer) Send(ctx context.Context, msg ses.Message) (string, error) {
	f.sent = append(f.sent, msg)
	if f.send != nil {
		return f.send(ctx, msg)
	}
	return "msg-id", nil
}

type fakeProducer struct {
	generated []report.GeneratedEvent
	scheduled []report.ScheduleInput
	err       error
}

func (f *fakeProducer) PublishGenerated(_ context.Context, evt report.GeneratedEvent) error {
	f.generated = append(f.generated, evt)
	return f.err
}

func (f *fakeProducer) PublishScheduled(_ context.Context, input report.ScheduleInput) error {
	f.scheduled = append(f.scheduled, input)
	return f.err
}
