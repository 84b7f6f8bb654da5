package services

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameListServices       = "list_services"
	toolNameGetService         = "get_service"
	toolNameCreateService      = "create_service"
	toolNameUpdateServicePorts = "update_service_ports"
	toolNameAddDomain          = "add_domain"
)

// Tools returns the service tool registrations.
func Tools(mgr Manager, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolListServices(mgr, deps),
		toolGetService(mgr, deps),
		toolCreateService(mgr, deps),
		toolUpdateServicePorts(mgr, deps),
		toolAddDomain(mgr, deps),
	}
}

func toolListServices(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameListServices,
		mcp.WithDescription("List the services of a project."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("projectId", mcp.Required(), mcp.Description("Project ID.")),
	)

	handler := tools.Handler(toolNameListServices, deps, func(ctx context.Context, in *ListInput) (any, error) {
		return mgr.List(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolGetService(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetService,
		mcp.WithDescription("Get a service with its domains, Dockerfile and deployments."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
	)

	handler := tools.Handler(toolNameGetService, deps, func(ctx context.Context, in *GetInput) (any, error) {
		return mgr.Get(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolCreateService(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameCreateService,
		mcp.WithDescription("Create an empty service in a project, ready for deploy_from_specification."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Service name.")),
		mcp.WithString("projectId", mcp.Required(), mcp.Description("Project ID.")),
	)

	handler := tools.Handler(toolNameCreateService, deps, func(ctx context.Context, in *CreateInput) (any, error) {
		return mgr.Create(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolUpdateServicePorts(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameUpdateServicePorts,
		mcp.WithDescription("Replace all exposed ports of a service in an environment."),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithString("environmentId", mcp.Required(), mcp.Description("Environment ID.")),
		mcp.WithArray("ports",
			mcp.Required(),
			mcp.Description("The complete port list. Ports not listed are removed."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "description": "Port name, e.g. web."},
					"port": map[string]any{"type": "number", "minimum": 1, "maximum": 65535},
					"type": map[string]any{"type": "string", "enum": []string{"HTTP", "TCP", "UDP"}},
				},
				"required": []string{"id", "port", "type"},
			}),
		),
	)

	handler := tools.Handler(toolNameUpdateServicePorts, deps, func(ctx context.Context, in *UpdatePortsInput) (any, error) {
		return mgr.UpdatePorts(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolAddDomain(mgr Manager, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameAddDomain,
		mcp.WithDescription("Bind a domain to a service port."),
		mcp.WithString("serviceId", mcp.Required(), mcp.Description("Service ID.")),
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Domain name, or only the subdomain prefix when isGenerated is true."),
		),
		mcp.WithBoolean("isGenerated",
			mcp.Required(),
			mcp.Description("Whether this is a generated *.zeabur.app domain."),
		),
		mcp.WithString("portName",
			mcp.Required(),
			mcp.Description("ID of the exposed port, e.g. web."),
		),
	)

	handler := tools.Handler(toolNameAddDomain, deps, func(ctx context.Context, in *AddDomainInput) (any, error) {
		return mgr.AddDomain(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
