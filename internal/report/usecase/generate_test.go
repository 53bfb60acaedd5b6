package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"
	"dealer-report-srv/internal/tenant"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/minio"
	"dealer-report-srv/pkg/ses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deps struct {
	repo     *fakeRepo
	tenant   *fakeTenant
	audit    *fakeAudit
	store    *fakeStore
	mailer   *fakeMailer
	producer *fakeProducer
}

func newDeps() *deps {
	return &deps{
		repo: &fakeRepo{project: func(context.Context, model.TenantScope, repository.ProjectOptions) ([]report.Row, error) {
			return []report.Row{}, nil
		}},
		tenant: &fakeTenant{resolve: func(_ context.Context, userID string) (model.Profile, error) {
			return model.Profile{UserID: userID, DealershipID: "d1", Permissions: map[string]bool{model.PermissionReportsView: true}}, nil
		}},
		audit:    &fakeAudit{},
		store:    &fakeStore{},
		mailer:   &fakeMailer{},
		producer: &fakeProducer{},
	}
}

func (d *deps) useCase() report.UseCase {
	uc := New(d.repo, d.tenant, d.audit, d.store, d.mailer, d.producer, log.NewNop(), Config{Bucket: "reports-test"})
	uc.(*implUseCase).now = func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) }
	return uc
}

var actor = model.Scope{UserID: "u1"}

func strp(s string) *string { return &s }

func TestGenerate_EmptySalesCSV(t *testing.T) {
	d := newDeps()

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindSales, Format: report.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, "", out.Payload)
	assert.Equal(t, 0, out.RowCount)
	assert.False(t, out.Partial())
	assert.Empty(t, out.DownloadURL)

	require.Len(t, d.audit.records, 1)
	assert.Equal(t, "d1", d.audit.records[0].Tenant.DealershipID())
	assert.Equal(t, "sales", d.audit.records[0].Values.Type)
	assert.Equal(t, "csv", d.audit.records[0].Values.Format)
	require.Len(t, d.producer.generated, 1)
	assert.Equal(t, "d1", d.producer.generated[0].DealershipID)
}

func TestGenerate_RejectsBeforeAnyQuery(t *testing.T) {
	tcs := map[string]struct {
		scope model.Scope
		input report.GenerateInput
		want  error
	}{
		"unauthenticated": {
			input: report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON},
			want:  report.ErrUnauthorized,
		},
		"unknown kind": {
			scope: actor,
			input: report.GenerateInput{Kind: "payroll", Format: report.FormatJSON},
			want:  report.ErrUnsupportedReportKind,
		},
		"unknown format": {
			scope: actor,
			input: report.GenerateInput{Kind: report.KindSales, Format: "xlsx"},
			want:  report.ErrUnsupportedFormat,
		},
		"start after end": {
			scope: actor,
			input: report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON,
				Parameters: report.Parameters{StartDate: "2024-03-01", EndDate: "2024-02-01"}},
			want: report.ErrInvalidDateRange,
		},
		"bad date": {
			scope: actor,
			input: report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON,
				Parameters: report.Parameters{StartDate: "last tuesday"}},
			want: report.ErrInvalidDateRange,
		},
		"email without recipients": {
			scope: actor,
			input: report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON,
				Delivery: &report.Delivery{Method: report.DeliveryEmail}},
			want: report.ErrInvalidDelivery,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d := newDeps()
			_, err := d.useCase().Generate(context.Background(), tc.scope, tc.input)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, d.repo.calls)
			if tc.scope.UserID == "" {
				assert.Zero(t, d.tenant.calls)
			}
			assert.Empty(t, d.audit.records)
		})
	}
}

func TestGenerate_PermissionCheckedBeforeRequest(t *testing.T) {
	inputs := map[string]report.GenerateInput{
		"unknown kind":   {Kind: "warranty", Format: report.FormatJSON},
		"unknown format": {Kind: report.KindSales, Format: "xlsx"},
		"bad range": {Kind: report.KindSales, Format: report.FormatJSON,
			Parameters: report.Parameters{StartDate: "2024-03-01", EndDate: "2024-02-01"}},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			d := newDeps()
			d.tenant.resolve = func(context.Context, string) (model.Profile, error) {
				return model.Profile{UserID: "u1", DealershipID: "d1", Permissions: map[string]bool{}}, nil
			}
			_, err := d.useCase().Generate(context.Background(), actor, in)
			assert.ErrorIs(t, err, report.ErrInsufficientPermissions)
			assert.Zero(t, d.repo.calls)
		})
	}
}

func TestGenerate_PermissionChecks(t *testing.T) {
	tcs := map[string]struct {
		resolve func(context.Context, string) (model.Profile, error)
		want    error
	}{
		"no profile": {
			resolve: func(context.Context, string) (model.Profile, error) { return model.Profile{}, tenant.ErrProfileNotFound },
			want:    report.ErrProfileNotFound,
		},
		"lookup failure": {
			resolve: func(context.Context, string) (model.Profile, error) { return model.Profile{}, errors.New("db down") },
			want:    report.ErrProfileNotFound,
		},
		"no permission": {
			resolve: func(context.Context, string) (model.Profile, error) {
				return model.Profile{UserID: "u1", DealershipID: "d1", Permissions: map[string]bool{"inventory.view": true}}, nil
			},
			want: report.ErrInsufficientPermissions,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d := newDeps()
			d.tenant.resolve = tc.resolve
			_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON})
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, d.repo.calls)
		})
	}
}

func TestGenerate_CreatePermissionIsEnough(t *testing.T) {
	d := newDeps()
	d.tenant.resolve = func(context.Context, string) (model.Profile, error) {
		return model.Profile{UserID: "u1", DealershipID: "d1", Permissions: map[string]bool{model.PermissionReportsCreate: true}}, nil
	}
	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindService, Format: report.FormatJSON})
	assert.NoError(t, err)
}

func TestGenerate_DateOnlyEndCoversWholeDay(t *testing.T) {
	d := newDeps()
	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:   report.KindSales,
		Format: report.FormatJSON,
		Parameters: report.Parameters{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			Filters:   map[string]any{"status": "paid"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, d.repo.opts.Start)
	require.NotNil(t, d.repo.opts.End)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), d.repo.opts.Start.UTC())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), d.repo.opts.End.UTC())
	assert.True(t, d.repo.opts.EndExclusive)
	assert.Equal(t, "paid", d.repo.opts.Status)
}

func TestGenerate_SameDayRangeWithDateOnlyEnd(t *testing.T) {
	d := newDeps()
	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:   report.KindSales,
		Format: report.FormatJSON,
		Parameters: report.Parameters{
			StartDate: "2024-01-31T10:00:00Z",
			EndDate:   "2024-01-31",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), d.repo.opts.Start.UTC())
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), d.repo.opts.End.UTC())
	assert.True(t, d.repo.opts.EndExclusive)

	d = newDeps()
	_, err = d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:   report.KindSales,
		Format: report.FormatJSON,
		Parameters: report.Parameters{
			StartDate: "2024-02-01T00:00:00Z",
			EndDate:   "2024-01-31",
		},
	})
	assert.ErrorIs(t, err, report.ErrInvalidDateRange)
}

func TestGenerate_NumericStatusFilter(t *testing.T) {
	d := newDeps()
	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:       report.KindInventory,
		Format:     report.FormatJSON,
		Parameters: report.Parameters{Filters: map[string]any{"status": float64(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, "1", d.repo.opts.Status)
}

func TestGenerate_TimestampEndIsInclusive(t *testing.T) {
	d := newDeps()
	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:       report.KindFinancial,
		Format:     report.FormatJSON,
		Parameters: report.Parameters{EndDate: "2024-01-31T18:00:00Z"},
	})
	require.NoError(t, err)
	assert.False(t, d.repo.opts.EndExclusive)
	assert.Nil(t, d.repo.opts.Start)
}

func TestGenerate_DataAccessIsFatal(t *testing.T) {
	d := newDeps()
	d.repo.project = func(_ context.Context, _ model.TenantScope, opts repository.ProjectOptions) ([]report.Row, error) {
		return nil, &report.DataAccessError{Kind: opts.Kind, Err: errors.New("relation does not exist")}
	}

	_, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindInventory, Format: report.FormatJSON})
	assert.ErrorIs(t, err, report.ErrDataAccess)
	assert.EqualError(t, err, "Failed to generate inventory report: relation does not exist")
	assert.Empty(t, d.audit.records)
	assert.Empty(t, d.producer.generated)
}

func TestGenerate_DownloadDelivery(t *testing.T) {
	d := newDeps()
	d.repo.project = func(context.Context, model.TenantScope, repository.ProjectOptions) ([]report.Row, error) {
		return []report.Row{report.InventoryRow{ID: "v1", DealershipID: "d1", Status: strp("available")}}, nil
	}

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:     report.KindInventory,
		Format:   report.FormatCSV,
		Delivery: &report.Delivery{Method: report.DeliveryDownload},
	})
	require.NoError(t, err)
	assert.False(t, out.Partial())

	require.Len(t, d.store.uploaded, 1)
	up := d.store.uploaded[0]
	assert.Equal(t, "reports-test", up.BucketName)
	assert.True(t, strings.HasPrefix(up.ObjectName, "reports/d1/inventory/"), up.ObjectName)
	assert.True(t, strings.HasSuffix(up.ObjectName, ".csv"), up.ObjectName)
	assert.Equal(t, "text/csv; charset=utf-8", up.ContentType)
	assert.Equal(t, out.Payload, string(d.store.bodies[0]))
	assert.Equal(t, "https://files.test/reports-test/"+up.ObjectName, out.DownloadURL)
	assert.Empty(t, d.mailer.sent)
}

func TestGenerate_EmailFailuresArePartial(t *testing.T) {
	d := newDeps()
	d.mailer.send = func(_ context.Context, msg ses.Message) (string, error) {
		if msg.To == "bad" {
			return "", ses.ErrInvalidRecipient
		}
		return "id", nil
	}

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:     report.KindSales,
		Format:   report.FormatPDF,
		Delivery: &report.Delivery{Method: report.DeliveryEmail, Emails: []string{"gm@dealer.test", "bad"}},
	})
	require.NoError(t, err)
	assert.True(t, out.Partial())
	require.Len(t, out.Errors, 1)
	assert.Equal(t, report.StageDelivering, out.Errors[0].Stage)
	assert.Contains(t, out.Errors[0].Error, "bad")
	assert.NotEmpty(t, out.DownloadURL)
	assert.IsType(t, report.DisplayBundle{}, out.Payload)

	require.Len(t, d.mailer.sent, 2)
	assert.Equal(t, "Sales Report - 2024-01-01", d.mailer.sent[0].Subject)
	assert.Contains(t, d.mailer.sent[0].Text, out.DownloadURL)
	assert.Len(t, d.audit.records, 1)
	assert.True(t, d.producer.generated[0].Partial)
}

func TestGenerate_StorageFailureKeepsArtifact(t *testing.T) {
	d := newDeps()
	d.store.upload = func(context.Context, *minio.UploadRequest) (*minio.FileInfo, error) { return nil, errors.New("bucket missing") }

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{
		Kind:     report.KindSales,
		Format:   report.FormatJSON,
		Delivery: &report.Delivery{Method: report.DeliveryEmail, Emails: []string{"gm@dealer.test"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0].Error, "bucket missing")
	assert.Empty(t, out.DownloadURL)
	assert.Empty(t, d.mailer.sent)
	assert.NotNil(t, out.Payload)
}

func TestGenerate_AuditFailureIsPartial(t *testing.T) {
	d := newDeps()
	d.audit.record = func(context.Context, audit.RecordReportInput) (model.AuditLog, error) {
		return model.AuditLog{}, audit.ErrWriteFailed
	}

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON})
	require.NoError(t, err)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, report.StageAuditing, out.Errors[0].Stage)
	assert.NotNil(t, out.Payload)
}

func TestGenerate_EventFailureIsNotReported(t *testing.T) {
	d := newDeps()
	d.producer.err = errors.New("broker unavailable")

	out, err := d.useCase().Generate(context.Background(), actor, report.GenerateInput{Kind: report.KindSales, Format: report.FormatJSON})
	require.NoError(t, err)
	assert.False(t, out.Partial())
}

func TestGenerate_WithoutOptionalDeps(t *testing.T) {
	d := newDeps()
	uc := New(d.repo, d.tenant, d.audit, nil, nil, nil, log.NewNop(), Config{})

	out, err := uc.Generate(context.Background(), actor, report.GenerateInput{
		Kind:     report.KindSales,
		Format:   report.FormatJSON,
		Delivery: &report.Delivery{Method: report.DeliveryDownload},
	})
	require.NoError(t, err)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, report.StageDelivering, out.Errors[0].Stage)
}
