package tools_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

func registration(name string) tools.Registration {
	return tools.Registration{
		Tool: mcp.NewTool(name),
		Handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(name), nil
		},
	}
}

func Test_RegisterAll(t *testing.T) {
	s := server.NewMCPServer("test", "0", server.WithToolCapabilities(false))
	regs := []tools.Registration{registration("get_me"), registration("list_projects")}

	if err := tools.RegisterAll(s, regs); err != nil {
		t.Fatalf("RegisterAll() error = %v", err)
	}
}

func Test_RegisterAll_RejectsDuplicates(t *testing.T) {
	s := server.NewMCPServer("test", "0", server.WithToolCapabilities(false))
	regs := []tools.Registration{registration("get_me"), registration("list_projects"), registration("get_me")}

	err := tools.RegisterAll(s, regs)
	if err == nil || err.Error() != `tool "get_me" registered twice` {
		t.Fatalf("RegisterAll() error = %v", err)
	}
}

func Test_Names_FromRegistrations(t *testing.T) {
	names := tools.Names([]tools.Registration{registration("a"), registration("b")})
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v", names)
	}
}
