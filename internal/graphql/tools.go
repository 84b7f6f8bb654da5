package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const toolNameExecuteGraphQL = "execute_graphql"

// ExecuteInput is the argument shape of execute_graphql.
type ExecuteInput struct {
	Query string `json:"query" validate:"required"`
	// Variables is a JSON object, either inline or encoded as a string.
	Variables json.RawMessage `json:"variables,omitempty"`
}

// Vars decodes Variables into a map. Empty input yields nil.
func (in *ExecuteInput) Vars() (map[string]any, error) {
	raw := in.Variables
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if encoded == "" {
			return nil, nil
		}
		raw = json.RawMessage(encoded)
	}

	var vars map[string]any
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, schema.Invalid("variables", fmt.Sprintf("must be a JSON object: %v", err))
	}
	return vars, nil
}

// Tools returns the escape-hatch registrations for arbitrary GraphQL.
func Tools(client Client, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolExecuteGraphQL(client, deps),
	}
}

func toolExecuteGraphQL(client Client, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameExecuteGraphQL,
		mcp.WithDescription("Execute an arbitrary GraphQL query or mutation against the Zeabur API. Use when no dedicated tool covers the operation."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The GraphQL document to execute."),
		),
		mcp.WithString("variables",
			mcp.Description("Optional JSON object string of variables to pass with the document."),
		),
	)

	handler := tools.Handler(toolNameExecuteGraphQL, deps, func(ctx context.Context, in *ExecuteInput) (any, error) {
		vars, err := in.Vars()
		if err != nil {
			return nil, err
		}
		return Run(ctx, client, in.Query, vars)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
