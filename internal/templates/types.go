// Package templates searches the Zeabur template marketplace and deploys
// templates into projects.
package templates

import (
	"context"
	"encoding/json"
)

// SearchInput filters templates by a case-insensitive substring of their
// name or description. An empty query matches every template.
type SearchInput struct {
	Query string `json:"query"`
}

// Variable is one template variable assignment.
type Variable struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// DeployInput deploys the template with the given code.
type DeployInput struct {
	Code      string     `json:"code" validate:"required"`
	ProjectID string     `json:"projectId" validate:"required"`
	Variables []Variable `json:"variables" validate:"dive"`
}

// Catalog is the template contract consumed by the MCP tools.
type Catalog interface {
	// Search returns the matching template edges, each as returned by the
	// API, in API order.
	Search(ctx context.Context, in SearchInput) ([]json.RawMessage, error)
	Deploy(ctx context.Context, in DeployInput) (json.RawMessage, error)
}
