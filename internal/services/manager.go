package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	listServicesQuery = `query ListServices($projectID: ObjectID!) {
  services(projectID: $projectID) {
    edges {
      node {
        _id
        name
        template
        createdAt
        status
      }
    }
  }
}`
	getServiceQuery = `query GetService($id: ObjectID!) {
  service(_id: $id) {
    _id
    name
    template
    createdAt
    status
    domains {
      _id
      domain
      status
      isGenerated
      portName
    }
    spec {
      source {
        dockerfile
      }
    }
    deployments {
      _id
      status
      createdAt
      startedAt
      finishedAt
    }
  }
}`
	createServiceMutation = `mutation CreateService($name: String!, $projectID: ObjectID!) {
  createService(name: $name, template: PREBUILT_V2, projectID: $projectID) {
    _id
  }
}`
	updateServicePortsMutation = `mutation UpdateServicePorts($serviceID: ObjectID!, $environmentID: ObjectID!, $ports: [ServiceSpecPortInput!]!) {
  updateServicePorts(serviceID: $serviceID, environmentID: $environmentID, ports: $ports)
}`
	addDomainMutation = `mutation AddDomain($serviceID: ObjectID!, $domain: String!, $isGenerated: Boolean!, $portName: String!) {
  addDomain(serviceID: $serviceID, domain: $domain, isGenerated: $isGenerated, portName: $portName) {
    _id
    domain
    status
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
		panic("services: NewManager called with nil client")
	}
	return &GraphQLManager{client: client}
}

var _ Manager = (*GraphQLManager)(nil)

func (m *GraphQLManager) List(ctx context.Context, in ListInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "list "+in.ProjectID, listServicesQuery, map[string]any{
		"projectID": in.ProjectID,
	})
}

func (m *GraphQLManager) Get(ctx context.Context, in GetInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "get "+in.ServiceID, getServiceQuery, map[string]any{
		"id": in.ServiceID,
	})
}

func (m *GraphQLManager) Create(ctx context.Context, in CreateInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "create "+in.Name, createServiceMutation, map[string]any{
		"name":      in.Name,
		"projectID": in.ProjectID,
	})
}

// UpdatePorts replaces the port list; ports not in in.Ports are removed.
func (m *GraphQLManager) UpdatePorts(ctx context.Context, in UpdatePortsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "update ports "+in.ServiceID, updateServicePortsMutation, map[string]any{
		"serviceID":     in.ServiceID,
		"environmentID": in.EnvironmentID,
		"ports":         in.Ports,
	})
}

func (m *GraphQLManager) AddDomain(ctx context.Context, in AddDomainInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	return m.run(ctx, "add domain "+in.Domain, addDomainMutation, map[string]any{
		"serviceID":   in.ServiceID,
		"domain":      in.Domain,
		"isGenerated": *in.IsGenerated,
		"portName":    in.PortName,
	})
}

func (m *GraphQLManager) run(ctx context.Context, op, document string, vars map[string]any) (json.RawMessage, error) {
	data, err := graphql.Run(ctx, m.client, document, vars)
	if err != nil {
		return nil, fmt.Errorf("services %s: %w", op, err)
	}
	return data, nil
}
