package render

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameRegionSelector  = "render_region_selector"
	toolNameProjectSelector = "render_project_selector"
	toolNameServiceCard     = "render_service_card"
	toolNameDockerfile      = "render_dockerfile"
	toolNameRecommendation  = "render_recommendation"
	toolNameFloatingButton  = "render_floating_button"
)

// Tools returns the render tool registrations.
func Tools(deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolRegionSelector(deps),
		toolProjectSelector(deps),
		toolServiceCard(deps),
		toolDockerfile(deps),
		toolRecommendation(deps),
		toolFloatingButton(deps),
	}
}

func toolRegionSelector(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameRegionSelector,
		mcp.WithDescription("Show a region picker to the user."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithBoolean("showServers",
			mcp.Required(),
			mcp.Description("Also offer the user's dedicated servers."),
		),
	)

	handler := tools.Handler(toolNameRegionSelector, deps, func(_ context.Context, in *RegionSelectorInput) (any, error) {
		return NewRegionSelector(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolProjectSelector(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameProjectSelector,
		mcp.WithDescription("Show a project picker to the user."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithBoolean("showCreateNew",
			mcp.Required(),
			mcp.Description("Offer to create a new project."),
		),
	)

	handler := tools.Handler(toolNameProjectSelector, deps, func(_ context.Context, in *ProjectSelectorInput) (any, error) {
		return NewProjectSelector(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolServiceCard(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameServiceCard,
		mcp.WithDescription("Show a card summarising a service."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("projectID", mcp.Required(), mcp.Description("Project ID.")),
		mcp.WithString("serviceID", mcp.Required(), mcp.Description("Service ID.")),
	)

	handler := tools.Handler(toolNameServiceCard, deps, func(_ context.Context, in *ServiceCardInput) (any, error) {
		return NewServiceCard(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolDockerfile(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameDockerfile,
		mcp.WithDescription("Show a Dockerfile with syntax highlighting."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("dockerfile", mcp.Required(), mcp.Description("Dockerfile content.")),
		mcp.WithString("language",
			mcp.Description("Highlighting language."),
			mcp.DefaultString(defaultLanguage),
		),
	)

	handler := tools.Handler(toolNameDockerfile, deps, func(_ context.Context, in *DockerfileInput) (any, error) {
		return NewDockerfile(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolRecommendation(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameRecommendation,
		mcp.WithDescription("Offer the user a list of suggested next steps."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithArray("options",
			mcp.Required(),
			mcp.Description("Suggestions, each with a label."),
			mcp.Items(map[string]any{
				"type":       "object",
				"properties": map[string]any{"label": map[string]any{"type": "string"}},
				"required":   []string{"label"},
			}),
		),
	)

	handler := tools.Handler(toolNameRecommendation, deps, func(_ context.Context, in *RecommendationInput) (any, error) {
		return NewRecommendation(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolFloatingButton(deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameFloatingButton,
		mcp.WithDescription("Show a floating button linking to a URL, e.g. a freshly deployed site."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("url", mcp.Required(), mcp.Description("Link target.")),
		mcp.WithString("title",
			mcp.Description("Button title."),
			mcp.DefaultString(defaultButtonTitle),
		),
		mcp.WithString("description", mcp.Description("Optional text under the title.")),
		mcp.WithBoolean("isExternal",
			mcp.Description("Open the link in a new tab."),
			mcp.DefaultBool(true),
		),
	)

	handler := tools.Handler(toolNameFloatingButton, deps, func(_ context.Context, in *FloatingButtonInput) (any, error) {
		return NewFloatingButton(*in), nil
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
