// Package projects lists and creates projects and the regions they can be
// placed in.
package projects

import (
	"context"
	"encoding/json"
)

// CreateInput creates a project. Region is a region code from list_regions,
// or server-<id> for a dedicated server.
type CreateInput struct {
	Name   string `json:"name" validate:"required"`
	Region string `json:"region" validate:"required"`
}

// RegionsInput controls whether dedicated servers are listed too.
type RegionsInput struct {
	IncludeServers bool `json:"includeServers"`
}

// Regions is the result of list_regions. Servers is omitted unless
// requested.
type Regions struct {
	Regions json.RawMessage `json:"regions"`
	Servers json.RawMessage `json:"servers,omitempty"`
}

// Manager is the project contract consumed by the MCP tools.
type Manager interface {
	List(ctx context.Context) (json.RawMessage, error)
	Create(ctx context.Context, in CreateInput) (json.RawMessage, error)
	Regions(ctx context.Context, in RegionsInput) (*Regions, error)
}
