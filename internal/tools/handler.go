package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
)

// ConfirmationTokenParam is the argument carrying a confirmation token.
const ConfirmationTokenParam = "confirmation_token"

const redacted = "[redacted]"

// sensitiveParams are argument names whose values never reach the audit log.
var sensitiveParams = map[string]struct{}{
	"value":                {},
	ConfirmationTokenParam: {},
}

// Deps are the collaborators every tool handler reports to. Any of them may
// be nil.
type Deps struct {
	Audit   *safety.AuditLogger
	Confirm *safety.ConfirmationTracker
	Metrics *telemetry.Metrics
}

// Operation is the typed body of a tool. Its result is rendered with Result.
type Operation[In any] func(ctx context.Context, in *In) (any, error)

// Target names the resource a destructive call acts on and describes what
// the call will do to it.
type Target[In any] func(in *In) (resource, description string)

// Handler returns a handler that binds the request arguments into a fresh
// In, runs op and renders the outcome. Validation failures never reach op.
func Handler[In any](name string, deps Deps, op Operation[In]) server.ToolHandlerFunc {
	return handler(name, deps, nil, op)
}

// ConfirmedHandler is Handler for destructive tools: when the tool is listed
// in deps.Confirm, op only runs once the caller echoes a token issued for the
// same tool and resource.
func ConfirmedHandler[In any](name string, deps Deps, target Target[In], op Operation[In]) server.ToolHandlerFunc {
	return handler(name, deps, target, op)
}

// WithConfirmationToken declares the confirmation token argument.
func WithConfirmationToken() mcp.ToolOption {
	return mcp.WithString(ConfirmationTokenParam,
		mcp.Description("Token returned by a previous call of this tool to confirm the operation."),
	)
}

func handler[In any](name string, deps Deps, target Target[In], op Operation[In]) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		args := req.GetArguments()
		params := auditParams(args)
		logger := zerolog.Ctx(ctx).With().Str("tool", name).Logger()

		fail := func(err error) (*mcp.CallToolResult, error) {
			LogAudit(ctx, deps.Audit, name, params, "error: "+err.Error(), start)
			deps.Metrics.ObserveTool(name, err)
			logger.Warn().Err(err).Dur("duration", time.Since(start)).Msg("tool call failed")
			return ErrorResult(err.Error()), nil
		}

		in := new(In)
		if err := schema.Bind(args, in); err != nil {
			return fail(err)
		}

		if target != nil && deps.Confirm.NeedsConfirmation(name) {
			resource, description := target(in)
			token, _ := args[ConfirmationTokenParam].(string)
			if !deps.Confirm.Confirm(token, name, resource) {
				LogAudit(ctx, deps.Audit, name, params, "confirmation_requested", start)
				return ConfirmPrompt(deps.Confirm, name, resource, description), nil
			}
		}

		out, err := op(ctx, in)
		if err != nil {
			return fail(err)
		}

		LogAudit(ctx, deps.Audit, name, params, "ok", start)
		deps.Metrics.ObserveTool(name, nil)
		logger.Debug().Dur("duration", time.Since(start)).Msg("tool call")
		return Result(out), nil
	}
}

func auditParams(args map[string]any) map[string]any {
	params := make(map[string]any, len(args))
	for k, v := range args {
		if _, ok := sensitiveParams[k]; ok {
			params[k] = redacted
			continue
		}
		params[k] = v
	}
	return params
}
