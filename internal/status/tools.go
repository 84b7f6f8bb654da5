package status

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const toolNameWaitForServicesRunning = "wait_for_services_running"

// Tools returns the status-polling tool registrations.
func Tools(waiter Waiter, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolWaitForServicesRunning(waiter, deps),
	}
}

func toolWaitForServicesRunning(waiter Waiter, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameWaitForServicesRunning,
		mcp.WithDescription("Wait until all given services reach RUNNING. Returns early with success=false when any service CRASHED or PULL_FAILED, or when the timeout elapses."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithArray("serviceIds",
			mcp.Required(),
			mcp.Description("IDs of the services to wait for."),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.MinItems(1),
		),
		mcp.WithNumber("timeout",
			mcp.Description("Maximum wait time in milliseconds. Must be at least pollInterval."),
			mcp.DefaultNumber(DefaultTimeoutMS),
			mcp.Min(1),
		),
		mcp.WithNumber("pollInterval",
			mcp.Description("Delay between status polls in milliseconds."),
			mcp.DefaultNumber(DefaultPollIntervalMS),
			mcp.Min(1),
		),
	)

	handler := tools.Handler(toolNameWaitForServicesRunning, deps, func(ctx context.Context, in *WaitInput) (any, error) {
		return waiter.Wait(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
