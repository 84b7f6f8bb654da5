package templates

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	allTemplatesQuery = `query QueryAllTemplates {
  templates {
    edges {
      node {
        name
        description
        author {
          avatarURL
          username
        }
        variables {
          key
          desc
          type
          question
        }
        code
        createdAt
        deploymentCnt
        iconURL
      }
    }
  }
}`
	deployTemplateMutation = `mutation DeployTemplate($code: String!, $projectID: ObjectID!, $variables: Map) {
  deployTemplate(code: $code, projectID: $projectID, variables: $variables) {
    _id
    name
  }
}`
)

// GraphQLCatalog implements Catalog over a graphql.Client.
type GraphQLCatalog struct {
	client graphql.Client
}

// NewCatalog returns a GraphQLCatalog. It panics if client is nil.
func NewCatalog(client graphql.Client) *GraphQLCatalog {
	if client == nil {
		panic("templates: NewCatalog called with nil client")
	}
	return &GraphQLCatalog{client: client}
}

var _ Catalog = (*GraphQLCatalog)(nil)

// Search fetches the whole catalogue and filters it locally; the API offers
// no search argument.
func (c *GraphQLCatalog) Search(ctx context.Context, in SearchInput) ([]json.RawMessage, error) {
	var resp struct {
		Templates *struct {
			Edges []json.RawMessage `json:"edges"`
		} `json:"templates"`
	}
	if err := graphql.Decode(ctx, c.client, allTemplatesQuery, nil, &resp); err != nil {
		return nil, fmt.Errorf("templates search: %w", err)
	}

	matches := []json.RawMessage{}
	if resp.Templates == nil {
		return matches, nil
	}
	needle := strings.ToLower(in.Query)
	for _, edge := range resp.Templates.Edges {
		var e struct {
			Node *struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"node"`
		}
		if err := json.Unmarshal(edge, &e); err != nil {
			return nil, fmt.Errorf("templates search: parse edge: %w", err)
		}
		if e.Node == nil {
			continue
		}
		if strings.Contains(strings.ToLower(e.Node.Name), needle) ||
			strings.Contains(strings.ToLower(e.Node.Description), needle) {
			matches = append(matches, edge)
		}
	}
	return matches, nil
}

func (c *GraphQLCatalog) Deploy(ctx context.Context, in DeployInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	vars := make(map[string]string, len(in.Variables))
	for _, v := range in.Variables {
		vars[v.Key] = v.Value
	}
	data, err := graphql.Run(ctx, c.client, deployTemplateMutation, map[string]any{
		"code":      in.Code,
		"projectID": in.ProjectID,
		"variables": vars,
	})
	if err != nil {
		return nil, fmt.Errorf("templates deploy %s: %w", in.Code, err)
	}
	return data, nil
}
