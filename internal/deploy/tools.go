package deploy

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/session"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const toolNameDeployFromSpecification = "deploy_from_specification"

// Tools returns the deployment tool registrations.
func Tools(sessions *session.Registry, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolDeployFromSpecification(sessions, deps),
	}
}

func toolDeployFromSpecification(sessions *session.Registry, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameDeployFromSpecification,
		mcp.WithDescription("Deploy a service from a build source with a Dockerfile, or from a prebuilt Docker image. Dockerfile paths are read from the filesystem chosen with decide_filesystem."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("service_id",
			mcp.Required(),
			mcp.Description("ID of the service to deploy."),
		),
		mcp.WithObject("source",
			mcp.Required(),
			mcp.Description("Image source."),
			mcp.Properties(map[string]any{
				"type": map[string]any{
					"type": "string",
					"enum": []string{string(BuildFromSource), string(DockerImage)},
				},
				"build_from_source": map[string]any{
					"type":        "object",
					"description": "Required when type is BUILD_FROM_SOURCE.",
					"properties": map[string]any{
						"source": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type": map[string]any{"type": "string", "enum": []string{"GITHUB", "UPLOAD_ID"}},
								"github": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"repo_id": map[string]any{"type": "number"},
										"ref":     map[string]any{"type": "string"},
									},
								},
								"upload_id": map[string]any{"type": "string"},
							},
						},
						"dockerfile": map[string]any{
							"type":        "object",
							"description": "Exactly one of content or path.",
							"properties": map[string]any{
								"content": map[string]any{"type": "string"},
								"path":    map[string]any{"type": "string"},
							},
						},
					},
				},
				"docker_image": map[string]any{
					"type":        "string",
					"description": "Required when type is DOCKER_IMAGE.",
				},
			}),
		),
		mcp.WithArray("env",
			mcp.Description("Environment variables of the deployment."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"key":    map[string]any{"type": "string"},
					"value":  map[string]any{"type": "string"},
					"expose": map[string]any{"type": "boolean", "default": false},
				},
				"required": []string{"key", "value"},
			}),
		),
	)

	handler := tools.Handler(toolNameDeployFromSpecification, deps, func(ctx context.Context, in *Input) (any, error) {
		return Deploy(ctx, sessions.FromContext(ctx), *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
