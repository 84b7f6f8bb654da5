package projects

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameListProjects  = "list_projects"
	toolNameCreateProject = "create_project"
	toolNameListRegions   = "list_regions"
)

type noInput struct{}

// Tools returns the project tool registrations.
func Tools(mgr Manager, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolListProjects(mgr, deps),
		toolCreateProject(mgr, deps),
		toolListRegions(mgr, deps),
	}
}

func toolListProjects(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameListProjects,
		mcp.WithDescription("List all projects with their region and environments."),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	handler := tools.Handler(toolNameListProjects, deps, func(ctx context.Context, _ *noInput) (any, error) {
		return mgr.List(ctx)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolCreateProject(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameCreateProject,
		mcp.WithDescription("Create a project in a region."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Project name: 4 to 16 letters, digits or hyphens, starting with a letter."),
		),
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region code from list_regions, or server-<SERVER_ID> for a dedicated server."),
		),
	)

	handler := tools.Handler(toolNameCreateProject, deps, func(ctx context.Context, in *CreateInput) (any, error) {
		return mgr.Create(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolListRegions(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameListRegions,
		mcp.WithDescription("List the regions projects can be created in, optionally with your dedicated servers."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithBoolean("includeServers",
			mcp.Description("Also list dedicated servers."),
			mcp.DefaultBool(false),
		),
	)

	handler := tools.Handler(toolNameListRegions, deps, func(ctx context.Context, in *RegionsInput) (any, error) {
		return mgr.Regions(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
