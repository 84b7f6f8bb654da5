package variables

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameCreateVariable = "create_environment_variable"
	toolNameUpdateVariable = "update_environment_variable"
	toolNameDeleteVariable = "delete_environment_variable"
	toolNameListVariables  = "get_service_variables"
)

// DestructiveTools lists the tools in this package that should require
// confirmation.
var DestructiveTools = []string{toolNameDeleteVariable}

// Tools returns the environment variable tool registrations.
func Tools(mgr Manager, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolCreateVariable(mgr, deps),
		toolUpdateVariable(mgr, deps),
		toolDeleteVariable(mgr, deps),
		toolListVariables(mgr, deps),
	}
}

func scopeParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("serviceId",
			mcp.Required(),
			mcp.Description("Service ID from list_services."),
		),
		mcp.WithString("environmentId",
			mcp.Required(),
			mcp.Description("Environment ID from the project's environments."),
		),
	}
}

func toolCreateVariable(mgr Manager, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Create an environment variable on a service."),
	}, scopeParams()...)
	opts = append(opts,
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Variable name, e.g. DATABASE_URL."),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Variable value."),
		),
	)
	tool := mcp.NewTool(toolNameCreateVariable, opts...)

	handler := tools.Handler(toolNameCreateVariable, deps, func(ctx context.Context, in *CreateInput) (any, error) {
		return mgr.Create(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolUpdateVariable(mgr Manager, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Rename an environment variable and set its value."),
	}, scopeParams()...)
	opts = append(opts,
		mcp.WithString("oldKey",
			mcp.Required(),
			mcp.Description("Current variable name."),
		),
		mcp.WithString("newKey",
			mcp.Required(),
			mcp.Description("New variable name; repeat oldKey to only change the value."),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("New variable value."),
		),
	)
	tool := mcp.NewTool(toolNameUpdateVariable, opts...)

	handler := tools.Handler(toolNameUpdateVariable, deps, func(ctx context.Context, in *UpdateInput) (any, error) {
		return mgr.Update(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolDeleteVariable(mgr Manager, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Delete an environment variable from a service. Requires confirmation."),
		mcp.WithDestructiveHintAnnotation(true),
	}, scopeParams()...)
	opts = append(opts,
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Variable name to delete."),
		),
		tools.WithConfirmationToken(),
	)
	tool := mcp.NewTool(toolNameDeleteVariable, opts...)

	target := func(in *DeleteInput) (string, string) {
		resource := in.ServiceID + "/" + in.EnvironmentID + "/" + in.Key
		return resource, fmt.Sprintf("This removes %s from service %s in environment %s.", in.Key, in.ServiceID, in.EnvironmentID)
	}
	handler := tools.ConfirmedHandler(toolNameDeleteVariable, deps, target, func(ctx context.Context, in *DeleteInput) (any, error) {
		return mgr.Delete(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolListVariables(mgr Manager, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("List the environment variables of a service in one environment."),
		mcp.WithReadOnlyHintAnnotation(true),
	}, scopeParams()...)
	tool := mcp.NewTool(toolNameListVariables, opts...)

	handler := tools.Handler(toolNameListVariables, deps, func(ctx context.Context, in *ListInput) (any, error) {
		return mgr.List(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
