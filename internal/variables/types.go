// Package variables manages the environment variables of a service in one
// environment.
package variables

import (
	"context"
	"encoding/json"
)

// CreateInput adds a variable. Value may be the empty string but must be
// present.
type CreateInput struct {
	ServiceID     string  `json:"serviceId" validate:"required"`
	EnvironmentID string  `json:"environmentId" validate:"required"`
	Key           string  `json:"key" validate:"required"`
	Value         *string `json:"value" validate:"required"`
}

// UpdateInput renames a variable and sets its value. NewKey may equal OldKey.
type UpdateInput struct {
	ServiceID     string  `json:"serviceId" validate:"required"`
	EnvironmentID string  `json:"environmentId" validate:"required"`
	OldKey        string  `json:"oldKey" validate:"required"`
	NewKey        string  `json:"newKey" validate:"required"`
	Value         *string `json:"value" validate:"required"`
}

// DeleteInput removes the variable Key.
type DeleteInput struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	EnvironmentID string `json:"environmentId" validate:"required"`
	Key           string `json:"key" validate:"required"`
}

// ListInput selects the variables of one service environment.
type ListInput struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	EnvironmentID string `json:"environmentId" validate:"required"`
}

// Manager is the variables contract consumed by the MCP tools.
type Manager interface {
	Create(ctx context.Context, in CreateInput) (json.RawMessage, error)
	Update(ctx context.Context, in UpdateInput) (json.RawMessage, error)
	Delete(ctx context.Context, in DeleteInput) (json.RawMessage, error)
	List(ctx context.Context, in ListInput) (json.RawMessage, error)
}
