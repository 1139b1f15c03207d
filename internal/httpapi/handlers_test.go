package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/solverkit/allocsolver/alloc"
	"github.com/solverkit/allocsolver/internal/httpapi"
	"github.com/solverkit/allocsolver/internal/metrics"
	"github.com/solverkit/allocsolver/router"
)

func newTestServer() *httpapi.Server {
	return httpapi.NewServer(alloc.DefaultFloors(), router.DefaultOptions(), metrics.New(), zerolog.Nop())
}

func TestHandleHealthz_ReturnsOK(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleSolve_ReturnsSuccessForFeasibleInput(t *testing.T) {
	srv := newTestServer()
	body, err := json.Marshal(map[string]interface{}{
		"state": map[string]int{
			"kos": 800_000, "makan": 650_000, "transport": 10_000,
			"internet": 5_000, "jajan": 0, "hiburan": 0,
		},
		"income": 2_000_000,
		"target": 0,
		"step":   50_000,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "success", got["status"])
	require.NotEmpty(t, got["trace"])
}

func TestHandleSolve_RejectsMalformedJSON(t *testing.T) {
	srv := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/v1/solve", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSolve_RejectsMissingCategory(t *testing.T) {
	srv := newTestServer()
	body, _ := json.Marshal(map[string]interface{}{
		"state":  map[string]int{"kos": 500_000},
		"income": 1_000_000,
		"step":   50_000,
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
