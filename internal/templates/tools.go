package templates

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameSearchTemplate = "search_template"
	toolNameDeployTemplate = "deploy_template"
)

// Tools returns the template tool registrations.
func Tools(catalog Catalog, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolSearchTemplate(catalog, deps),
		toolDeployTemplate(catalog, deps),
	}
}

func toolSearchTemplate(catalog Catalog, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameSearchTemplate,
		mcp.WithDescription("Search templates whose name or description contains the query, ignoring case."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text to look for.")),
	)

	handler := tools.Handler(toolNameSearchTemplate, deps, func(ctx context.Context, in *SearchInput) (any, error) {
		return catalog.Search(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolDeployTemplate(catalog Catalog, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameDeployTemplate,
		mcp.WithDescription("Deploy a template into a project. Template variables are listed by search_template."),
		mcp.WithString("code", mcp.Required(), mcp.Description("Template code.")),
		mcp.WithString("projectId", mcp.Required(), mcp.Description("Target project ID.")),
		mcp.WithArray("variables",
			mcp.Description("Values for the template variables."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":   map[string]any{"type": "string"},
					"value": map[string]any{"type": "string"},
				},
				"required": []string{"key", "value"},
			}),
		),
	)

	handler := tools.Handler(toolNameDeployTemplate, deps, func(ctx context.Context, in *DeployInput) (any, error) {
		return catalog.Deploy(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
