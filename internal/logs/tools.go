package logs

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameGetBuildLogs   = "get_build_logs"
	toolNameGetRuntimeLogs = "get_runtime_logs"
	toolNameGetDeployments = "get_deployments"
)

// Tools returns the log tool registrations.
func Tools(reader Reader, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolGetBuildLogs(reader, deps),
		toolGetRuntimeLogs(reader, deps),
		toolGetDeployments(reader, deps),
	}
}

func toolGetBuildLogs(reader Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetBuildLogs,
		mcp.WithDescription("Get the build logs of a deployment."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("deploymentId", mcp.Required(), mcp.Description("Deployment ID.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of log lines."), mcp.DefaultNumber(DefaultLogLimit)),
	)

	handler := tools.Handler(toolNameGetBuildLogs, deps, func(ctx context.Context, in *BuildLogsInput) (any, error) {
		return reader.BuildLogs(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolGetRuntimeLogs(reader Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetRuntimeLogs,
		mcp.WithDescription("Get the runtime logs of a service in an environment."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithString("environmentId", mcp.Required(), mcp.Description("Environment ID.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of log lines."), mcp.DefaultNumber(DefaultLogLimit)),
	)

	handler := tools.Handler(toolNameGetRuntimeLogs, deps, func(ctx context.Context, in *RuntimeLogsInput) (any, error) {
		return reader.RuntimeLogs(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolGetDeployments(reader Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetDeployments,
		mcp.WithDescription("List the most recent deployments of a service."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of deployments."), mcp.DefaultNumber(DefaultDeploymentLimit)),
	)

	handler := tools.Handler(toolNameGetDeployments, deps, func(ctx context.Context, in *DeploymentsInput) (any, error) {
		return reader.Deployments(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
