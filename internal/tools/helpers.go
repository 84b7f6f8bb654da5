// Package tools provides shared helper utilities for MCP tool handlers.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jamesprial/zeabur-mcp/internal/safety"
)

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error condition.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// Result renders an operation's return value. Strings are passed through,
// prepared results are returned as is and everything else is JSON encoded.
func Result(v any) *mcp.CallToolResult {
	switch r := v.(type) {
	case *mcp.CallToolResult:
		return r
	case string:
		return mcp.NewToolResultText(r)
	default:
		return JSONResult(v)
	}
}

// LogAudit records a tool call on audit, tagged with the MCP session behind
// ctx when there is one. A nil audit logger is ignored.
func LogAudit(ctx context.Context, audit *safety.AuditLogger, toolName string, params map[string]any, result string, start time.Time) {
	if audit == nil {
		return
	}
	entry := safety.AuditEntry{
		RequestID:  uuid.NewString(),
		Timestamp:  start,
		Tool:       toolName,
		Params:     params,
		Result:     result,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if cs := server.ClientSessionFromContext(ctx); cs != nil {
		entry.Session = cs.SessionID()
	}
	if err := audit.Log(entry); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("tool", toolName).Msg("audit log write failed")
	}
}

// ConfirmPrompt issues a confirmation request and returns the prompt result.
func ConfirmPrompt(confirm *safety.ConfirmationTracker, toolName, resource, description string) *mcp.CallToolResult {
	token := confirm.RequestConfirmation(toolName, resource)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Confirmation required for %s on %q.\n\n%s\n\nTo proceed, call %s again with %s=%q.",
		toolName, resource, description, toolName, ConfirmationTokenParam, token,
	))
}
