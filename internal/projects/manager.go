package projects

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	listProjectsQuery = `query ListProjects {
  projects {
    edges {
      node {
        _id
        name
        region {
          code
          name
        }
        environments {
          _id
          name
        }
      }
    }
  }
}`
	createProjectMutation = `mutation CreateProject($name: String!, $region: String!) {
  createProject(name: $name, region: $region) {
    _id
  }
}`
	listRegionsQuery = `query ListRegions {
  regions {
    id
    code
    name
    description
    available
    continent
    country
    city
    providerInfo {
      name
      code
    }
  }
}`
	listServersQuery = `query ListServers {
  servers {
    _id
    name
    ip
    status {
      isOnline
      totalCPU
      usedCPU
      totalMemory
      usedMemory
      vmStatus
    }
    providerInfo {
      name
      code
    }
    country
    city
    continent
    createdAt
    isManaged
    expiresAt
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
		panic("projects: NewManager called with nil client")
	}
	return &GraphQLManager{client: client}
}

var _ Manager = (*GraphQLManager)(nil)

func (m *GraphQLManager) List(ctx context.Context) (json.RawMessage, error) {
	data, err := graphql.Run(ctx, m.client, listProjectsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("projects list: %w", err)
	}
	return data, nil
}

func (m *GraphQLManager) Create(ctx context.Context, in CreateInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, m.client, createProjectMutation, map[string]any{
		"name":   in.Name,
		"region": in.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("projects create %s: %w", in.Name, err)
	}
	return data, nil
}

// Regions lists the regions and, when requested, the dedicated servers in
// a second request.
func (m *GraphQLManager) Regions(ctx context.Context, in RegionsInput) (*Regions, error) {
	var regions struct {
		Regions json.RawMessage `json:"regions"`
	}
	if err := graphql.Decode(ctx, m.client, listRegionsQuery, nil, &regions); err != nil {
		return nil, fmt.Errorf("projects regions: %w", err)
	}
	out := &Regions{Regions: orNull(regions.Regions)}
	if !in.IncludeServers {
		return out, nil
	}

	var servers struct {
		Servers json.RawMessage `json:"servers"`
	}
	if err := graphql.Decode(ctx, m.client, listServersQuery, nil, &servers); err != nil {
		return nil, fmt.Errorf("projects servers: %w", err)
	}
	out.Servers = orNull(servers.Servers)
	return out, nil
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
