package metrics

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameGetServerMetrics  = "get_server_metrics"
	toolNameGetServiceMetrics = "get_service_metrics"
)

// Tools returns the metrics tool registrations.
func Tools(reader Reader, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolGetServerMetrics(reader, deps),
		toolGetServiceMetrics(reader, deps),
	}
}

func timeRangeParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("startTime",
			mcp.Description("Start of the range (RFC 3339). Defaults to one hour ago."),
		),
		mcp.WithString("endTime",
			mcp.Description("End of the range (RFC 3339). Defaults to now."),
		),
	}
}

func toolGetServerMetrics(reader Reader, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get a resource usage time series of a dedicated server."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("serverID", mcp.Required(), mcp.Description("Server ID.")),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Metric type."),
			mcp.Enum("CPU", "MEMORY", "NETWORK", "DISK", "LATENCY"),
		),
	}, timeRangeParams()...)
	tool := mcp.NewTool(toolNameGetServerMetrics, opts...)

	handler := tools.Handler(toolNameGetServerMetrics, deps, func(ctx context.Context, in *ServerMetricsInput) (any, error) {
		return reader.ServerMetrics(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolGetServiceMetrics(reader Reader, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Get a resource usage time series of a service in one environment."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("projectID", mcp.Required(), mcp.Description("Project ID.")),
		mcp.WithString("serviceID", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithString("environmentID", mcp.Required(), mcp.Description("Environment ID.")),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Metric type."),
			mcp.Enum("CPU", "MEMORY", "NETWORK"),
		),
	}, timeRangeParams()...)
	tool := mcp.NewTool(toolNameGetServiceMetrics, opts...)

	handler := tools.Handler(toolNameGetServiceMetrics, deps, func(ctx context.Context, in *ServiceMetricsInput) (any, error) {
		return reader.ServiceMetrics(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
