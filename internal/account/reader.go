package account

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	meQuery = `query GetMe {
  me {
    _id
    name
    email
    language
    githubID
    discordID
    avatarURL
    createdAt
    referralCode
    username
    credit
    subscription {
      plan
    }
  }
}`
	repoIDQuery = `query GetRepoId($url: String!) {
  getRepoId(url: $url) {
    id
    full_name
  }
}`
	searchReposQuery = `query SearchGitRepositories($provider: GitProvider!, $limit: Int!, $gitNamespaceId: Int, $keyword: String) {
  searchGitRepositories(provider: $provider, Limit: $limit, gitNamespaceID: $gitNamespaceId, keyword: $keyword) {
    id
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
		panic("account: NewReader called with nil client")
	}
	return &GraphQLReader{client: client}
}

var _ Reader = (*GraphQLReader)(nil)

func (r *GraphQLReader) Me(ctx context.Context) (json.RawMessage, error) {
	data, err := graphql.Run(ctx, r.client, meQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("account me: %w", err)
	}
	return data, nil
}

func (r *GraphQLReader) RepoID(ctx context.Context, in RepoIDInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	data, err := graphql.Run(ctx, r.client, repoIDQuery, map[string]any{"url": in.URL})
	if err != nil {
		return nil, fmt.Errorf("account repo id %s: %w", in.URL, err)
	}
	return data, nil
}

// SearchRepos sends unset optional filters as null.
func (r *GraphQLReader) SearchRepos(ctx context.Context, in SearchInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	vars := map[string]any{
		"provider":       in.Provider,
		"limit":          limit,
		"keyword":        nil,
		"gitNamespaceId": nil,
	}
	if in.Keyword != nil {
		vars["keyword"] = *in.Keyword
	}
	if in.GitNamespaceID != nil {
		vars["gitNamespaceId"] = *in.GitNamespaceID
	}
	data, err := graphql.Run(ctx, r.client, searchReposQuery, vars)
	if err != nil {
		return nil, fmt.Errorf("account search repos %s: %w", in.Provider, err)
	}
	return data, nil
}
