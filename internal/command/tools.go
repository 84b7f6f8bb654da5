package command

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameExecuteCommand = "execute_command"
	toolNameFileDirRead    = "file_dir_read"
)

// Tools returns the command tool registrations.
func Tools(runner Runner, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolExecuteCommand(runner, deps),
		toolFileDirRead(runner, deps),
	}
}

func commandParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithString("environmentId", mcp.Required(), mcp.Description("Environment ID.")),
		mcp.WithArray("command",
			mcp.Required(),
			mcp.Description("Command and arguments, e.g. [\"ls\", \"-la\"]."),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.MinItems(1),
		),
	}
}

func toolExecuteCommand(runner Runner, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Execute a command in a service container. Output is cut to 2048 characters."),
		mcp.WithDestructiveHintAnnotation(true),
	}, commandParams()...)
	tool := mcp.NewTool(toolNameExecuteCommand, opts...)

	handler := tools.Handler(toolNameExecuteCommand, deps, func(ctx context.Context, in *Input) (any, error) {
		return runner.Execute(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolFileDirRead(runner Runner, deps tools.Deps) tools.Registration {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Inspect files and directories in a service container with a read-only command: ls, cat, head, tail, find, grep, tree, pwd, whoami, which or file."),
		mcp.WithReadOnlyHintAnnotation(true),
	}, commandParams()...)
	tool := mcp.NewTool(toolNameFileDirRead, opts...)

	handler := tools.Handler(toolNameFileDirRead, deps, func(ctx context.Context, in *Input) (any, error) {
		return runner.ReadOnly(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
