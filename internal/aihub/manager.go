package aihub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	tenantQuery = `query GetAIHubTenant {
  aihubTenant {
    balance
    keys {
      keyID
      alias
      cost
    }
  }
}`
	monthlyUsageQuery = `query GetAIHubMonthlyUsage($month: String) {
  aihubMonthlyUsage(month: $month) {
    totalSpend
    dailyUsage {
      date
      spend
      models {
        model
        cost
      }
    }
    modelsCost {
      model
      cost
    }
  }
}`
	createKeyMutation = `mutation CreateAIHubKey($alias: String) {
  createAIHubKey(alias: $alias) {
    key {
      keyID
      alias
      cost
    }
  }
}`
	deleteKeyMutation = `mutation DeleteAIHubKey($keyID: String!) {
  deleteAIHubKey(keyID: $keyID)
}`
)

// GraphQLManager implements Manager over a graphql.Client.
type GraphQLManager struct {
	client graphql.Client
}

// NewManager returns a GraphQLManager. It panics if client is nil.
func NewManager(client graphql.Client) *GraphQLManager {
	if client == nil {
		panic("aihub: NewManager called with nil client")
	}
	return &GraphQLManager{client: client}
}

var _ Manager = (*GraphQLManager)(nil)

func (m *GraphQLManager) Tenant(ctx context.Context) (json.RawMessage, error) {
	return m.run(ctx, "tenant", tenantQuery, nil)
}

func (m *GraphQLManager) MonthlyUsage(ctx context.Context, in UsageInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "monthly usage", monthlyUsageQuery, map[string]any{"month": optional(in.Month)})
}

func (m *GraphQLManager) CreateKey(ctx context.Context, in CreateKeyInput) (json.RawMessage, error) {
	return m.run(ctx, "create key", createKeyMutation, map[string]any{"alias": optional(in.Alias)})
}

func (m *GraphQLManager) DeleteKey(ctx context.Context, in DeleteKeyInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "delete key "+in.KeyID, deleteKeyMutation, map[string]any{"keyID": in.KeyID})
}

func (m *GraphQLManager) run(ctx context.Context, op, document string, vars map[string]any) (json.RawMessage, error) {
	data, err := graphql.Run(ctx, m.client, document, vars)
	if err != nil {
		return nil, fmt.Errorf("aihub %s: %w", op, err)
	}
	return data, nil
}

// optional maps an unset pointer to a GraphQL null.
func optional(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
