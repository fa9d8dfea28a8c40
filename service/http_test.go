package service_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/diameter"
	"github.com/katalvlaran/wdiam/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T, cfg service.RouterConfig, opts ...service.Option) *gin.Engine {
	t.Helper()

	return service.NewRouter(mustPipeline(t, opts...), cfg)
}

func post(r http.Handler, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/diameter", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHTTP_Diameter(t *testing.T) {
	t.Parallel()
	r := setupTestRouter(t, service.RouterConfig{}, service.WithCacheSize(8))

	w := post(r, triangle)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp service.DiameterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Distance)
	assert.Equal(t, 1, resp.From)
	assert.Equal(t, 3, resp.To)
	assert.Equal(t, []int{1, 2, 3}, resp.Path)
	assert.Equal(t, 3, resp.Vertices)
	assert.False(t, resp.Cached)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, w.Header().Get(service.RequestIDHeader))

	w = post(r, triangle, service.RequestIDHeader, "fixed-id")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	assert.Equal(t, "fixed-id", resp.RequestID)
	assert.Equal(t, "fixed-id", w.Header().Get(service.RequestIDHeader))
}

func TestHTTP_SentinelPolicyReportsUnreachable(t *testing.T) {
	t.Parallel()
	r := setupTestRouter(t, service.RouterConfig{}, service.WithPolicy(diameter.PolicySentinel))

	w := post(r, "2 0\n")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp service.DiameterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Unreachable)
	assert.Equal(t, diameter.LegacySentinel, resp.Distance)
	assert.Equal(t, []int{}, resp.Path)
}

func TestHTTP_ErrorStatuses(t *testing.T) {
	t.Parallel()

	var long strings.Builder
	fmt.Fprintf(&long, "200 199\n")
	for u := 1; u < 200; u++ {
		fmt.Fprintf(&long, "%d %d 1\n", u, u+1)
	}

	tests := []struct {
		name string
		cfg  service.RouterConfig
		body string
		want int
	}{
		{"malformed", service.RouterConfig{}, "3 3\n1 2\n", http.StatusBadRequest},
		{"too many vertices", service.RouterConfig{}, "200000 0\n", http.StatusBadRequest},
		{"no reachable pair", service.RouterConfig{}, "2 0\n", http.StatusUnprocessableEntity},
		{"body too large", service.RouterConfig{MaxBodyBytes: 8}, triangle, http.StatusRequestEntityTooLarge},
		{"deadline", service.RouterConfig{RequestTimeout: time.Nanosecond}, long.String(), http.StatusGatewayTimeout},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w := post(setupTestRouter(t, tc.cfg), tc.body)
			assert.Equal(t, tc.want, w.Code, w.Body.String())

			var resp service.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	t.Parallel()
	r := setupTestRouter(t, service.RouterConfig{})
	post(r, triangle)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wdiam_runs_total")
	assert.Contains(t, w.Body.String(), "wdiam_solve_duration_seconds")
}
