package projects_test

import (
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/projects"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
	"github.com/jamesprial/zeabur-mcp/internal/tools/toolstest"
)

func Test_Tools(t *testing.T) {
	client := graphqltest.Respond(`{"projects":{"edges":[{"node":{"_id":"p1","name":"demo"}}]}}`)
	regs := projects.Tools(projects.NewManager(client), tools.Deps{})

	if got := strings.Join(tools.Names(regs), ","); got != "list_projects,create_project,list_regions" {
		t.Errorf("tools = %s", got)
	}
	if text := toolstest.Call(t, regs, "list_projects", nil); !strings.Contains(text, `"name": "demo"`) {
		t.Errorf("list_projects = %q", text)
	}
	if text := toolstest.Call(t, regs, "create_project", map[string]any{"name": "demo"}); text != "error: invalid input: region: is required" {
		t.Errorf("create_project = %q", text)
	}
	if text := toolstest.Call(t, regs, "list_regions", map[string]any{"includeServers": "yes"}); text != "error: invalid input: includeServers: expected bool, got string" {
		t.Errorf("list_regions = %q", text)
	}
}
