package logs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	buildLogsQuery = `query GetBuildLogs($deploymentId: ObjectID!, $limit: Int) {
  buildLogs(deploymentID: $deploymentId, limit: $limit) {
    timestamp
    message
    level
  }
}`
	runtimeLogsQuery = `query GetRuntimeLogs($serviceId: ObjectID!, $environmentId: ObjectID!, $limit: Int) {
  runtimeLogs(serviceID: $serviceId, environmentID: $environmentId, limit: $limit) {
    timestamp
    message
    level
  }
}`
	deploymentsQuery = `query GetDeployments($serviceId: ObjectID!, $limit: Int) {
  service(id: $serviceId) {
    deployments(limit: $limit) {
      _id
      status
      createdAt
      updatedAt
    }
  }
}`
)

// GraphQLReader implements Reader over a graphql.Client.
type GraphQLReader struct {
	client graphql.Client
}

// NewReader returns a GraphQLReader. It panics if client is nil.
func NewReader(client graphql.Client) *GraphQLReader {
	if client == nil {
		panic("logs: NewReader called with nil client")
	}
	return &GraphQLReader{client: client}
}

var _ Reader = (*GraphQLReader)(nil)

func (r *GraphQLReader) BuildLogs(ctx context.Context, in BuildLogsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, r.client, buildLogsQuery, map[string]any{
		"deploymentId": in.DeploymentID,
		"limit":        in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("logs build %s: %w", in.DeploymentID, err)
	}
	return data, nil
}

func (r *GraphQLReader) RuntimeLogs(ctx context.Context, in RuntimeLogsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, r.client, runtimeLogsQuery, map[string]any{
		"serviceId":     in.ServiceID,
		"environmentId": in.EnvironmentID,
		"limit":         in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("logs runtime %s: %w", in.ServiceID, err)
	}
	return data, nil
}

func (r *GraphQLReader) Deployments(ctx context.Context, in DeploymentsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, r.client, deploymentsQuery, map[string]any{
		"serviceId": in.ServiceID,
		"limit":     in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("logs deployments %s: %w", in.ServiceID, err)
	}
	return data, nil
}
