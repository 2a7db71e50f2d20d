package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/app"
)

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/auth/me"},
	{http.MethodPost, "/api/auth/change-password"},
	{http.MethodDelete, "/api/auth/delete-account"},
	{http.MethodGet, "/api/vault"},
	{http.MethodPost, "/api/vault"},
	{http.MethodGet, "/api/vault/1"},
	{http.MethodPut, "/api/vault/1"},
	{http.MethodDelete, "/api/vault/1"},
	{http.MethodGet, "/api/categories"},
	{http.MethodPost, "/api/categories"},
	{http.MethodDelete, "/api/categories/1"},
	{http.MethodGet, "/api/activity"},
	{http.MethodGet, "/api/settings"},
	{http.MethodPut, "/api/settings"},
	{http.MethodPut, "/api/settings/avatar"},
	{http.MethodGet, "/api/security"},
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t, newFakeServices())

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, nil, false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, app.CodeUnauthorized, decodeError(t, rec).Error)
		})
	}
}

func TestInit_PublicRoutes(t *testing.T) {
	h := newTestHandler(t, newFakeServices())

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/version", "", http.StatusOK},
		{http.MethodPost, "/api/auth/register", `{"name":"Al","email":"a@b.co","password":"12345678"}`, http.StatusCreated},
		{http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"12345678"}`, http.StatusOK},
		{http.MethodPost, "/api/generator", "", http.StatusOK},
		{http.MethodPost, "/api/strength", `{"password":"abc"}`, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, strings.NewReader(tc.body), false)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestInit_UnknownRouteAndWrongMethodReturn404(t *testing.T) {
	h := newTestHandler(t, newFakeServices())

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/"},
		{http.MethodPatch, "/api/vault/1"},
		{http.MethodGet, "/api/auth/login"},
	} {
		rec := serve(t, h, tc.method, tc.path, nil, true)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, app.CodeNotFound, decodeError(t, rec).Error)
	}
}

func TestInit_Version(t *testing.T) {
	h := newTestHandler(t, newFakeServices())

	rec := serve(t, h, http.MethodGet, "/api/version", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"v1.2.3","date":"N/A","commit":"N/A"}`, rec.Body.String())
}

func TestInit_MetricsExposeRequestCounts(t *testing.T) {
	h := newTestHandler(t, newFakeServices())
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/version", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "vault_http_requests_total")
	assert.Contains(t, body, `route="/api/version"`)
	assert.Contains(t, body, "vault_http_request_duration_seconds")
}

func TestInit_MetricsCountRecoveredPanics(t *testing.T) {
	h := newTestHandler(t, newFakeServices())
	router := h.Init()
	router.Get("/panics", func(http.ResponseWriter, *http.Request) { panic("handler bug") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panics", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `vault_http_requests_total{method="GET",route="/panics",status="500"} 1`)
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, newFakeServices())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Len(t, rec.Header().Get(traceIDHeader), 36)

	const incoming = "6f2b8a52-52f4-4a5f-9a63-1b7ad1b2b8a0"
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, incoming)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, incoming, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "not a uuid")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid", rec.Header().Get(traceIDHeader))
}
