// Package telemetry wires structured logging, Prometheus metrics and
// OpenTelemetry tracing for the zeabur-mcp server.
package telemetry

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jamesprial/zeabur-mcp/internal/config"
)

// NewLogger builds a zerolog.Logger from cfg. Output goes to w, or to stderr
// when w is nil (stdout is reserved for the MCP stdio transport).
func NewLogger(cfg config.LoggingConfig, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "zeabur-mcp").
		Logger()
}

// ParseLevel maps a textual level to a zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
