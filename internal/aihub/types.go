// Package aihub reads the AI Hub balance and usage of the account and manages
// its API keys.
package aihub

import (
	"context"
	"encoding/json"
)

// UsageInput selects a month in YYYY-MM form. The current month is used
// when Month is unset.
type UsageInput struct {
	Month *string `json:"month" validate:"omitempty,datetime=2006-01"`
}

// CreateKeyInput creates an API key with an optional alias.
type CreateKeyInput struct {
	Alias *string `json:"alias"`
}

// DeleteKeyInput deletes the key KeyID.
type DeleteKeyInput struct {
	KeyID string `json:"keyID" validate:"required"`
}

// Manager is the AI Hub contract consumed by the MCP tools.
type Manager interface {
	Tenant(ctx context.Context) (json.RawMessage, error)
	MonthlyUsage(ctx context.Context, in UsageInput) (json.RawMessage, error)
	CreateKey(ctx context.Context, in CreateKeyInput) (json.RawMessage, error)
	DeleteKey(ctx context.Context, in DeleteKeyInput) (json.RawMessage, error)
}
