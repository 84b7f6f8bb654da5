package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registration pairs an MCP tool definition with its handler.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// RegisterAll adds registrations to s. Nothing is added when two
// registrations share a name.
func RegisterAll(s *server.MCPServer, registrations []Registration) error {
	seen := make(map[string]struct{}, len(registrations))
	for _, r := range registrations {
		if _, dup := seen[r.Tool.Name]; dup {
			return fmt.Errorf("tool %q registered twice", r.Tool.Name)
		}
		seen[r.Tool.Name] = struct{}{}
	}
	for _, r := range registrations {
		s.AddTool(r.Tool, r.Handler)
	}
	return nil
}

// Names lists the tool names of registrations in order.
func Names(registrations []Registration) []string {
	names := make([]string, 0, len(registrations))
	for _, r := range registrations {
		names = append(names, r.Tool.Name)
	}
	return names
}
