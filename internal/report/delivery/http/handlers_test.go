package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dealer-report-srv/internal/audit"
	"dealer-report-srv/internal/model"
	"dealer-report-srv/internal/report"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/paginator"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	generate func(ctx context.Context, sc model.Scope, in report.GenerateInput) (report.GenerateOutput, error)
	history  func(ctx context.Context, sc model.Scope, in report.HistoryInput) (report.HistoryOutput, error)
	schedule func(ctx context.Context, in report.ScheduleInput) error
}

func (f *fakeUseCase) Generate(ctx context.Context, sc model.Scope, in report.GenerateInput) (report.GenerateOutput, error) {
	return f.generate(ctx, sc, in)
}

func (f *fakeUseCase) History(ctx context.Context, sc model.Scope, in report.HistoryInput) (report.HistoryOutput, error) {
	return f.history(ctx, sc, in)
}

func (f *fakeUseCase) Schedule(ctx context.Context, in report.ScheduleInput) error {
	return f.schedule(ctx, in)
}

var testScope = model.Scope{UserID: "u-1", Username: "ana", Role: "manager"}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &handler{l: log.NewNop(), uc: uc}

	r := gin.New()
	withScope := func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), testScope))
		c.Next()
	}
	r.POST("/api/v1/reports/generate", withScope, h.GenerateReport)
	r.GET("/api/v1/reports/history", withScope, h.ListHistory)
	r.POST("/internal/v1/reports/scheduled", h.ScheduleReport)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestGenerateReport_OK(t *testing.T) {
	var got report.GenerateInput
	uc := &fakeUseCase{generate: func(_ context.Context, sc model.Scope, in report.GenerateInput) (report.GenerateOutput, error) {
		assert.Equal(t, testScope, sc)
		got = in
		return report.GenerateOutput{
			Kind:     in.Kind,
			Format:   in.Format,
			Payload:  "",
			RowCount: 0,
			Errors:   []report.StageError{},
		}, nil
	}}

	body := `{"type":"sales","format":"csv","parameters":{"startDate":"2024-01-01","endDate":"2024-01-31","groupBy":"month","filters":{"status":"sold"}}}`
	w, out := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "", out["data"])
	assert.Equal(t, float64(0), out["meta"].(map[string]any)["row_count"])

	assert.Equal(t, report.KindSales, got.Kind)
	assert.Equal(t, report.FormatCSV, got.Format)
	assert.Equal(t, "2024-01-01", got.Parameters.StartDate)
	assert.Equal(t, "month", got.Parameters.GroupBy)
	assert.Equal(t, "sold", got.Parameters.Filters["status"])
	assert.Nil(t, got.Delivery)
}

func TestGenerateReport_PartialIsMultiStatus(t *testing.T) {
	uc := &fakeUseCase{generate: func(_ context.Context, _ model.Scope, in report.GenerateInput) (report.GenerateOutput, error) {
		require.NotNil(t, in.Delivery)
		assert.Equal(t, report.DeliveryEmail, in.Delivery.Method)
		assert.Equal(t, []string{"gm@dealer.test"}, in.Delivery.Emails)
		return report.GenerateOutput{
			Payload:     []report.Row{},
			DownloadURL: "https://minio.test/reports/x.json",
			Errors:      []report.StageError{{Stage: report.StageDelivering, Error: "smtp down"}},
		}, nil
	}}

	body := `{"type":"inventory","format":"json","delivery":{"method":"email","emails":["gm@dealer.test"]}}`
	w, out := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", body)

	require.Equal(t, http.StatusMultiStatus, w.Code)
	errs := out["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "delivering", errs[0].(map[string]any)["stage"])
	assert.Equal(t, "https://minio.test/reports/x.json", out["meta"].(map[string]any)["download_url"])
}

func TestGenerateReport_BadBody(t *testing.T) {
	uc := &fakeUseCase{generate: func(context.Context, model.Scope, report.GenerateInput) (report.GenerateOutput, error) {
		t.Fatal("usecase must not be called")
		return report.GenerateOutput{}, nil
	}}

	for name, body := range map[string]string{
		"malformed":      `{"type":`,
		"missing type":   `{"format":"json"}`,
		"missing format": `{"type":"sales"}`,
	} {
		t.Run(name, func(t *testing.T) {
			w, out := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid request body", out["error"])
		})
	}
}

func TestGenerateReport_MapsErrors(t *testing.T) {
	tcs := map[string]struct {
		err  error
		code int
		msg  string
	}{
		"unauthorized":  {err: report.ErrUnauthorized, code: http.StatusBadRequest, msg: "Unauthorized"},
		"no profile":    {err: report.ErrProfileNotFound, code: http.StatusBadRequest, msg: "User profile not found"},
		"no permission": {err: report.ErrInsufficientPermissions, code: http.StatusBadRequest, msg: "Insufficient permissions to generate reports"},
		"unknown kind":  {err: &report.UnsupportedKindError{Kind: "payroll"}, code: http.StatusBadRequest, msg: "Unknown report type: payroll"},
		"format":        {err: report.ErrUnsupportedFormat, code: http.StatusBadRequest, msg: "Unsupported report format"},
		"date range":    {err: report.ErrInvalidDateRange, code: http.StatusBadRequest, msg: "Invalid date range"},
		"data access": {
			err:  &report.DataAccessError{Kind: report.KindService, Err: errors.New("connection reset")},
			code: http.StatusBadRequest,
			msg:  "Failed to generate service report: connection reset",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{generate: func(context.Context, model.Scope, report.GenerateInput) (report.GenerateOutput, error) {
				return report.GenerateOutput{}, tc.err
			}}
			w, out := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", `{"type":"sales","format":"json"}`)
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, tc.msg, out["error"])
		})
	}
}

func TestListHistory(t *testing.T) {
	created := time.Date(2024, 3, 2, 10, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{history: func(_ context.Context, _ model.Scope, in report.HistoryInput) (report.HistoryOutput, error) {
		assert.Equal(t, 2, in.Paginate.Page)
		assert.Equal(t, paginator.MaxLimit, in.Paginate.Limit)
		return report.HistoryOutput{
			Entries: []report.HistoryEntry{{
				ID:         7,
				UserID:     "u-1",
				Kind:       report.KindFinancial,
				Format:     report.FormatPDF,
				Parameters: json.RawMessage(`{"groupBy":"month"}`),
				CreatedAt:  created,
			}},
			Paginator: paginator.New(in.Paginate, 101, 1),
		}, nil
	}}

	w, out := do(newTestRouter(uc), http.MethodGet, "/api/v1/reports/history?page=2&limit=500", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := out["data"].([]any)
	require.Len(t, data, 1)
	entry := data[0].(map[string]any)
	assert.Equal(t, "financial", entry["type"])
	assert.Equal(t, "pdf", entry["format"])
	assert.Equal(t, "month", entry["parameters"].(map[string]any)["groupBy"])
	assert.NotNil(t, out["meta"])
}

func TestListHistory_BadQuery(t *testing.T) {
	w, out := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/reports/history?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid query parameters", out["error"])
}

func TestListHistory_AuditFailureIs500(t *testing.T) {
	uc := &fakeUseCase{history: func(context.Context, model.Scope, report.HistoryInput) (report.HistoryOutput, error) {
		return report.HistoryOutput{}, fmt.Errorf("%w: connection reset", audit.ErrListFailed)
	}}

	w, out := do(newTestRouter(uc), http.MethodGet, "/api/v1/reports/history", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Failed to load report history", out["error"])
}

func TestScheduleReport(t *testing.T) {
	var got report.ScheduleInput
	uc := &fakeUseCase{schedule: func(_ context.Context, in report.ScheduleInput) error {
		got = in
		return nil
	}}

	body := `{"schedule_id":"s-9","name":"Weekly stock","user_id":"u-1","type":"inventory","format":"csv","delivery":{"method":"email","emails":["a@b.test"]}}`
	w, out := do(newTestRouter(uc), http.MethodPost, "/internal/v1/reports/scheduled", body)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "queued", out["data"].(map[string]any)["status"])
	assert.Equal(t, "s-9", got.ScheduleID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, report.KindInventory, got.Kind)
	require.NotNil(t, got.Delivery)
	assert.Equal(t, report.DeliveryEmail, got.Delivery.Method)
}

func TestScheduleReport_PublishFailure(t *testing.T) {
	uc := &fakeUseCase{schedule: func(context.Context, report.ScheduleInput) error {
		return report.ErrScheduleFailed
	}}

	body := `{"schedule_id":"s-9","user_id":"u-1","type":"inventory","format":"csv"}`
	w, _ := do(newTestRouter(uc), http.MethodPost, "/internal/v1/reports/scheduled", body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMapError_UnknownPanics(t *testing.T) {
	h := &handler{l: log.NewNop()}
	assert.Panics(t, func() { _ = h.mapError(errors.New("boom")) })
}

