package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func setupRouter() *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Get("/", Root(log))
	r.Get("/health", Check(log))
	r.Get("/healthz", Liveness(log))
	return r
}

func get(t *testing.T, path string) map[string]any {
	t.Helper()
	r := setupRouter()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func TestRoot(t *testing.T) {
	out := get(t, "/")
	require.Equal(t, "healthy", out["status"])
	require.NotEmpty(t, out["message"])
}

func TestCheck(t *testing.T) {
	out := get(t, "/health")
	require.Equal(t, "healthy", out["status"])
	require.Equal(t, "support-squad-backend", out["service"])

	_, err := time.Parse(time.RFC3339, out["timestamp"].(string))
	require.NoError(t, err)
}

func TestLiveness(t *testing.T) {
	out := get(t, "/healthz")
	require.Equal(t, "ok", out["status"])
	require.NotContains(t, out, "timestamp")
}
