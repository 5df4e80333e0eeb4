package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/moore-mealy/internal/metrics"
)

// get performs a GET against handler and returns the recorded response.
func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

// TestHTTPHandler_Mealy renders conversions in the requested format.
func TestHTTPHandler_Mealy(t *testing.T) {
	t.Parallel()

	collectors := metrics.New()
	handler := newHTTPHandler(newService(nil, collectors), collectors)

	rec := get(t, handler, "/fixtures/two-state/mealy")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"mealy"`)

	rec = get(t, handler, "/fixtures/two-state/mealy?format=mermaid")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "stateDiagram-v2\n"))

	rec = get(t, handler, "/fixtures/two-state/mealy?format=png")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, handler, "/fixtures/missing/mealy")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `moore2mealy_conversions_total{fixture="two-state",result="ok"} 2`)
}

// TestHTTPHandler_Probes covers the health and listing endpoints.
func TestHTTPHandler_Probes(t *testing.T) {
	t.Parallel()

	handler := newHTTPHandler(newService(nil, nil), metrics.New())

	rec := get(t, handler, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok\n", rec.Body.String())

	rec = get(t, handler, "/fixtures")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "four-state\n")
}
