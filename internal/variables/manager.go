package variables

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	createVariableMutation = `mutation CreateEnvironmentVariable($serviceID: ObjectID!, $environmentID: ObjectID!, $key: String!, $value: String!) {
  createEnvironmentVariable(serviceID: $serviceID, environmentID: $environmentID, key: $key, value: $value) {
    key
    value
    exposed
    readonly
  }
}`
	updateVariableMutation = `mutation UpdateSingleEnvironmentVariable($serviceID: ObjectID!, $environmentID: ObjectID!, $oldKey: String!, $newKey: String!, $value: String!) {
  updateSingleEnvironmentVariable(serviceID: $serviceID, environmentID: $environmentID, oldKey: $oldKey, newKey: $newKey, value: $value) {
    key
    value
    exposed
    readonly
  }
}`
	deleteVariableMutation = `mutation DeleteSingleEnvironmentVariable($serviceID: ObjectID!, $environmentID: ObjectID!, $key: String!) {
  deleteSingleEnvironmentVariable(serviceID: $serviceID, environmentID: $environmentID, key: $key) {
    key
    value
    exposed
    readonly
  }
}`
	serviceVariablesQuery = `query ServiceVariables($serviceID: ObjectID!, $environmentID: ObjectID!) {
  service(_id: $serviceID) {
    _id
    variables(environmentID: $environmentID) {
      key
      value
    }
  }
}`
)

// GraphQLManager implements Manager over a graphql.Client.
type GraphQLManager struct {
	client graphql.Client
}

// NewManager returns a GraphQLManager. It panics if client is nil.
func NewManager(client graphql.Client) *GraphQLManager {
	if client == nil {
		panic("variables: NewManager called with nil client")
	}
	return &GraphQLManager{client: client}
}

var _ Manager = (*GraphQLManager)(nil)

func (m *GraphQLManager) Create(ctx context.Context, in CreateInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	vars := scope(in.ServiceID, in.EnvironmentID)
	vars["key"] = in.Key
	vars["value"] = *in.Value
	return m.run(ctx, "create "+in.Key, createVariableMutation, vars)
}

func (m *GraphQLManager) Update(ctx context.Context, in UpdateInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	vars := scope(in.ServiceID, in.EnvironmentID)
	vars["oldKey"] = in.OldKey
	vars["newKey"] = in.NewKey
	vars["value"] = *in.Value
	return m.run(ctx, "update "+in.OldKey, updateVariableMutation, vars)
}

func (m *GraphQLManager) Delete(ctx context.Context, in DeleteInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	vars := scope(in.ServiceID, in.EnvironmentID)
	vars["key"] = in.Key
	return m.run(ctx, "delete "+in.Key, deleteVariableMutation, vars)
}

func (m *GraphQLManager) List(ctx context.Context, in ListInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "list "+in.ServiceID, serviceVariablesQuery, scope(in.ServiceID, in.EnvironmentID))
}

func (m *GraphQLManager) run(ctx context.Context, op, document string, vars map[string]any) (json.RawMessage, error) {
	data, err := graphql.Run(ctx, m.client, document, vars)
	if err != nil {
		return nil, fmt.Errorf("variables %s: %w", op, err)
	}
	return data, nil
}

func scope(serviceID, environmentID string) map[string]any {
	return map[string]any{
		"serviceID":     serviceID,
		"environmentID": environmentID,
	}
}
