package aihub

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameTenant       = "get_aihub_tenant"
	toolNameMonthlyUsage = "get_aihub_monthly_usage"
	toolNameCreateKey    = "create_aihub_key"
	toolNameDeleteKey    = "delete_aihub_key"
)

// DestructiveTools lists the tools in this package that should require
// confirmation.
var DestructiveTools = []string{toolNameDeleteKey}

type noInput struct{}

// Tools returns the AI Hub tool registrations.
func Tools(mgr Manager, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolTenant(mgr, deps),
		toolMonthlyUsage(mgr, deps),
		toolCreateKey(mgr, deps),
		toolDeleteKey(mgr, deps),
	}
}

func toolTenant(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameTenant,
		mcp.WithDescription("Get the AI Hub balance and the API keys with their accumulated cost."),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	handler := tools.Handler(toolNameTenant, deps, func(ctx context.Context, _ *noInput) (any, error) {
		return mgr.Tenant(ctx)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolMonthlyUsage(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameMonthlyUsage,
		mcp.WithDescription("Get AI Hub spend for a month, broken down by day and model."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("month",
			mcp.Description("Month in YYYY-MM format. Defaults to the current month."),
		),
	)

	handler := tools.Handler(toolNameMonthlyUsage, deps, func(ctx context.Context, in *UsageInput) (any, error) {
		return mgr.MonthlyUsage(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolCreateKey(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameCreateKey,
		mcp.WithDescription("Create an AI Hub API key."),
		mcp.WithString("alias",
			mcp.Description("Optional alias for the key."),
		),
	)

	handler := tools.Handler(toolNameCreateKey, deps, func(ctx context.Context, in *CreateKeyInput) (any, error) {
		return mgr.CreateKey(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolDeleteKey(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameDeleteKey,
		mcp.WithDescription("Delete an AI Hub API key. Requires confirmation."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("keyID",
			mcp.Required(),
			mcp.Description("Key ID from get_aihub_tenant."),
		),
		tools.WithConfirmationToken(),
	)

	target := func(in *DeleteKeyInput) (string, string) {
		return in.KeyID, "Applications using this key will stop working immediately."
	}
	handler := tools.ConfirmedHandler(toolNameDeleteKey, deps, target, func(ctx context.Context, in *DeleteKeyInput) (any, error) {
		return mgr.DeleteKey(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
