package httpserver

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
)

func newTestRouter(t *testing.T, token string, metrics *telemetry.Metrics, logs io.Writer) (http.Handler, *bool) {
	t.Helper()
	reached := new(bool)
	mcp := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		zerolog.Ctx(r.Context()).Info().Msg("inside mcp")
		w.WriteHeader(http.StatusAccepted)
	})
	if logs == nil {
		logs = io.Discard
	}
	return NewRouter(Options{
		MCP:         mcp,
		AuthToken:   token,
		Metrics:     metrics,
		MetricsPath: "/metrics",
		Logger:      zerolog.New(logs).Level(zerolog.DebugLevel),
	}), reached
}

func do(h http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := newTestRouter(t, "secret", nil, nil)

	rr := do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRouter_MCPRequiresToken(t *testing.T) {
	h, reached := newTestRouter(t, "secret", nil, nil)

	rr := do(h, http.MethodPost, "/mcp", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, *reached)

	rr = do(h, http.MethodPost, "/mcp", "Bearer secret")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.True(t, *reached)
}

func TestRouter_MCPOpenWithoutToken(t *testing.T) {
	h, reached := newTestRouter(t, "", nil, nil)

	rr := do(h, http.MethodGet, "/mcp", "")
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.True(t, *reached)
}

func TestRouter_Metrics(t *testing.T) {
	metrics := telemetry.NewMetrics()
	metrics.ObserveTool("list_projects", nil)
	h, _ := newTestRouter(t, "secret", metrics, nil)

	rr := do(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `zeabur_mcp_tool_calls_total{result="ok",tool="list_projects"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	h, _ := newTestRouter(t, "secret", nil, nil)

	rr := do(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, rr.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t, "", nil, nil)

	rr := do(h, http.MethodPost, "/healthz", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_RequestScopedLogger(t *testing.T) {
	var logs bytes.Buffer
	h, _ := newTestRouter(t, "", nil, &logs)

	do(h, http.MethodPost, "/mcp", "")

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"inside mcp"`)
	assert.Contains(t, lines[0], `"request_id"`)
	assert.Contains(t, lines[1], `"status":202`)
	assert.Contains(t, lines[1], `"path":"/mcp"`)
}
