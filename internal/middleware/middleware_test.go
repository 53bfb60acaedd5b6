package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealer-report-srv/config"
	"dealer-report-srv/pkg/encrypter"
	"dealer-report-srv/pkg/log"
	"dealer-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

type fakeManager struct {
	payloads map[string]scope.Payload
}

func (f fakeManager) Verify(token string) (scope.Payload, error) {
	p, ok := f.payloads[token]
	if !ok {
		return scope.Payload{}, errors.New("invalid token")
	}
	return p, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newMiddleware(t *testing.T, serviceKeys map[string]string) Middleware {
	t.Helper()
	return New(log.NewNop(), fakeManager{payloads: map[string]scope.Payload{
		"good":   {UserID: "u1", Role: "manager"},
		"nobody": {},
	}}, config.CookieConfig{Name: "dealer_token"}, serviceKeys, encrypter.New(testKey), nil)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	m := newMiddleware(t, nil)
	r := gin.New()
	r.GET("/me", m.Auth(), func(c *gin.Context) {
		c.String(http.StatusOK, scope.GetScopeFromContext(c.Request.Context()).UserID)
	})

	tcs := map[string]struct {
		setup func(*http.Request)
		code  int
		body  string
	}{
		"bearer":     {setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, code: 200, body: "u1"},
		"raw header": {setup: func(r *http.Request) { r.Header.Set("Authorization", "good") }, code: 200, body: "u1"},
		"cookie":     {setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "dealer_token", Value: "good"}) }, code: 200, body: "u1"},
		"missing":    {setup: func(*http.Request) {}, code: 401},
		"bad token":  {setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer forged") }, code: 401},
		"no subject": {setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nobody") }, code: 401},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tc.setup(req)
			w := serve(r, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestServiceAuth(t *testing.T) {
	enc := encrypter.New(testKey)
	hash, err := enc.Hash("s3cret")
	require.NoError(t, err)
	m := newMiddleware(t, map[string]string{"scheduler": hash})

	r := gin.New()
	r.POST("/internal", m.ServiceAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, ServiceName(c))
	})

	header := func(plain string) string {
		v, err := enc.Encrypt(plain)
		require.NoError(t, err)
		return v
	}

	tcs := map[string]struct {
		key  string
		code int
	}{
		"valid":          {key: header("scheduler:s3cret"), code: 200},
		"wrong key":      {key: header("scheduler:guess"), code: 401},
		"unknown svc":    {key: header("billing:s3cret"), code: 401},
		"no separator":   {key: header("scheduler"), code: 401},
		"not encrypted":  {key: "scheduler:s3cret", code: 401},
		"missing header": {key: "", code: 401},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal", nil)
			if tc.key != "" {
				req.Header.Set("X-Service-Key", tc.key)
			}
			w := serve(r, req)
			assert.Equal(t, tc.code, w.Code)
			if tc.code == 200 {
				assert.Equal(t, "scheduler", w.Body.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	r.GET("/late", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})
	w = serve(r, httptest.NewRequest(http.MethodGet, "/late", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, log.GetRequestIDFromContext(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := serve(r, req)
	assert.Equal(t, "req-1", w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	m := New(log.NewNop(), fakeManager{}, config.CookieConfig{}, nil, nil, []string{"https://app.dealer.test"})
	r := gin.New()
	r.Use(m.CORS())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.dealer.test")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.dealer.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
