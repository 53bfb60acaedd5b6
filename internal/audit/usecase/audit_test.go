package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/audit/repository"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	create func(ctx context.Context, opt repository.CreateOptions) (model.AuditLog, error)
	list   func(ctx context.Context, opt repository.ListOptions) ([]model.AuditLog, error)
	count  func(ctx context.Context, opt repository.CountOptions) (int64, error)
}

func (f fakeRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.AuditLog, error) {
	return f.create(ctx, opt)
}

func (f fakeRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.AuditLog, error) {
	return f.list(ctx, opt)
}

func (f fakeRepo) Count(ctx context.Context, opt repository.CountOptions) (int64, error) {
	return f.count(ctx, opt)
}

func tenant(t *testing.T) model.TenantScope {
	ts, err := model.NewTenantScope("d1")
	require.NoError(t, err)
	return ts
}

func TestRecordReport(t *testing.T) {
	var got repository.CreateOptions
	uc := New(fakeRepo{create: func(_ context.Context, opt repository.CreateOptions) (model.AuditLog, error) {
		got = opt
		return model.AuditLog{ID: 7}, nil
	}}, log.NewNop())

	entry, err := uc.RecordReport(context.Background(), audit.RecordReportInput{
		Tenant: tenant(t),
		UserID: "u1",
		Values: audit.ReportValues{Type: "sales", Format: "csv", Parameters: json.RawMessage(`{"groupBy":"month"}`)},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, entry.ID)
	assert.Equal(t, model.AuditActionGenerate, got.Action)
	assert.Equal(t, model.AuditTableReports, got.TableName)
	assert.JSONEq(t, `{"type":"sales","format":"csv","parameters":{"groupBy":"month"}}`, string(got.NewValues))
}

func TestRecordReport_DefaultsParameters(t *testing.T) {
	var got repository.CreateOptions
	uc := New(fakeRepo{create: func(_ context.Context, opt repository.CreateOptions) (model.AuditLog, error) {
		got = opt
		return model.AuditLog{}, nil
	}}, log.NewNop())

	_, err := uc.RecordReport(context.Background(), audit.RecordReportInput{Tenant: tenant(t), UserID: "u1", Values: audit.ReportValues{Type: "inventory", Format: "json"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"inventory","format":"json","parameters":{}}`, string(got.NewValues))
}

func TestRecordReport_Failures(t *testing.T) {
	uc := New(fakeRepo{create: func(context.Context, repository.CreateOptions) (model.AuditLog, error) {
		return model.AuditLog{}, errors.New("insert failed")
	}}, log.NewNop())

	_, err := uc.RecordReport(context.Background(), audit.RecordReportInput{UserID: "u1"})
	assert.ErrorIs(t, err, audit.ErrMissingTenant)

	_, err = uc.RecordReport(context.Background(), audit.RecordReportInput{Tenant: tenant(t)})
	assert.ErrorIs(t, err, audit.ErrMissingActor)

	_, err = uc.RecordReport(context.Background(), audit.RecordReportInput{Tenant: tenant(t), UserID: "u1"})
	assert.ErrorIs(t, err, audit.ErrWriteFailed)
}

func TestListReports(t *testing.T) {
	var listed repository.ListOptions
	uc := New(fakeRepo{
		list: func(_ context.Context, opt repository.ListOptions) ([]model.AuditLog, error) {
			listed = opt
			return []model.AuditLog{{ID: 3}, {ID: 2}}, nil
		},
		count: func(context.Context, repository.CountOptions) (int64, error) { return 42, nil },
	}, log.NewNop())

	out, err := uc.ListReports(context.Background(), audit.ListReportsInput{
		Tenant:   tenant(t),
		Paginate: paginator.PaginateQuery{Page: 3, Limit: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, paginator.MaxLimit, listed.Limit)
	assert.Equal(t, 2*paginator.MaxLimit, listed.Offset)
	assert.Len(t, out.Logs, 2)
	assert.EqualValues(t, 42, out.Paginator.Total)
	assert.Equal(t, 3, out.Paginator.CurrentPage)
}

func TestListReports_CountError(t *testing.T) {
	uc := New(fakeRepo{
		list:  func(context.Context, repository.ListOptions) ([]model.AuditLog, error) { return nil, nil },
		count: func(context.Context, repository.CountOptions) (int64, error) { return 0, errors.New("x") },
	}, log.NewNop())

	_, err := uc.ListReports(context.Background(), audit.ListReportsInput{Tenant: tenant(t)})
	assert.ErrorIs(t, err, audit.ErrListFailed)
}
