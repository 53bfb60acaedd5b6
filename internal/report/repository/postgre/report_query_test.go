package postgre

import (
	"strings"
	"testing"
	"time"

	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/internal/report/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTenant(t *testing.T, id string) model.TenantScope {
	t.Helper()
	ts, err := model.NewTenantScope(id)
	require.NoError(t, err)
	return ts
}

func TestBuildProjectionQuery_TenantBoundFirst(t *testing.T) {
	ts := mustTenant(t, "dealer-1")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, kind := range []report.Kind{report.KindSales, report.KindInventory, report.KindService, report.KindFinancial} {
		t.Run(string(kind), func(t *testing.T) {
			q, args, err := buildProjectionQuery(ts, repository.ProjectOptions{Kind: kind, Start: &start, Status: "available"})
			require.NoError(t, err)
			require.NotEmpty(t, args)
			assert.Equal(t, "dealer-1", args[0])
			assert.Contains(t, q, "dealership_id = $1")
			assert.NotContains(t, q, "dealer-1")
			assert.NotContains(t, q, "available")
		})
	}
}

func TestBuildProjectionQuery_Rejections(t *testing.T) {
	_, _, err := buildProjectionQuery(model.TenantScope{}, repository.ProjectOptions{Kind: report.KindSales})
	assert.ErrorIs(t, err, report.ErrMissingTenantScope)

	_, _, err = buildProjectionQuery(mustTenant(t, "d1"), repository.ProjectOptions{Kind: "payroll"})
	assert.ErrorIs(t, err, report.ErrUnsupportedReportKind)
	assert.EqualError(t, err, "Unknown report type: payroll")
}

func TestBuildProjectionQuery_PerKind(t *testing.T) {
	ts := mustTenant(t, "d1")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tcs := map[string]struct {
		opts     repository.ProjectOptions
		contains []string
		absent   []string
		args     []any
	}{
		"sales with range": {
			opts: repository.ProjectOptions{Kind: report.KindSales, Start: &start, End: &end},
			contains: []string{
				"FROM invoices i",
				"i.invoice_type = 'sale'",
				"i.issued_at >= $2",
				"i.issued_at <= $3",
				"ORDER BY i.issued_at DESC",
			},
			args: []any{"d1", start, end},
		},
		"sales date-only end is exclusive": {
			opts:     repository.ProjectOptions{Kind: report.KindSales, End: &end, EndExclusive: true},
			contains: []string{"i.issued_at < $2"},
			args:     []any{"d1", end},
		},
		"sales ignores status filter": {
			opts:   repository.ProjectOptions{Kind: report.KindSales, Status: "paid"},
			absent: []string{"status = $"},
			args:   []any{"d1"},
		},
		"inventory with status": {
			opts:     repository.ProjectOptions{Kind: report.KindInventory, Status: "available"},
			contains: []string{"FROM vehicles", "status = $2", "ORDER BY created_at DESC"},
			args:     []any{"d1", "available"},
		},
		"inventory ignores dates": {
			opts:   repository.ProjectOptions{Kind: report.KindInventory, Start: &start},
			absent: []string{">= $"},
			args:   []any{"d1"},
		},
		"service range on scheduled_at": {
			opts:     repository.ProjectOptions{Kind: report.KindService, Start: &start},
			contains: []string{"FROM service_jobs s", "s.scheduled_at >= $2", "ORDER BY s.scheduled_at DESC"},
			args:     []any{"d1", start},
		},
		"financial includes every invoice type": {
			opts:     repository.ProjectOptions{Kind: report.KindFinancial},
			contains: []string{"COALESCE(json_agg(", "'[]'", "ORDER BY i.issued_at DESC"},
			absent:   []string{"invoice_type = 'sale'"},
			args:     []any{"d1"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			q, args, err := buildProjectionQuery(ts, tc.opts)
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, q, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, q, s)
			}
			assert.Equal(t, tc.args, args)
			assert.Equal(t, len(args), strings.Count(q, "$"))
		})
	}
}
