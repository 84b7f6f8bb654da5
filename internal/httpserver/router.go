// Package httpserver assembles the HTTP surface of the server: the MCP
// endpoint behind bearer authentication plus health and metrics endpoints.
package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jamesprial/zeabur-mcp/internal/auth"
	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
)

// MCPPath is where the streamable HTTP MCP endpoint is mounted.
const MCPPath = "/mcp"

// Options configures NewRouter.
type Options struct {
	// MCP serves the MCP protocol. Required.
	MCP http.Handler
	// AuthToken guards MCPPath. Empty disables authentication.
	AuthToken string
	// Metrics is exposed on MetricsPath when both are set.
	Metrics     *telemetry.Metrics
	MetricsPath string
	Logger      zerolog.Logger
}

// NewRouter returns the root handler.
func NewRouter(opts Options) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.CleanPath)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.Logger))
	router.Use(middleware.Recoverer)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "endpoint not found"})
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if opts.Metrics != nil && opts.MetricsPath != "" {
		router.Method(http.MethodGet, opts.MetricsPath, opts.Metrics.Handler())
	}

	router.Group(func(route chi.Router) {
		route.Use(auth.NewAuthMiddleware(opts.AuthToken))
		route.Handle(MCPPath, opts.MCP)
	})

	return router
}

// requestLogger attaches a request-scoped logger to the context and logs
// each completed request at debug level.
func requestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger := base.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))

			logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
