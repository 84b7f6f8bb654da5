// Package account reads the authenticated user and the git repositories the
// account can deploy from.
package account

import (
	"context"
	"encoding/json"
)

// DefaultSearchLimit is used when search_git_repos is called without a
// positive limit.
const DefaultSearchLimit = 10

// RepoIDInput resolves a repository URL to its numeric ID.
type RepoIDInput struct {
	URL string `json:"url" validate:"required,url"`
}

// SearchInput searches the repositories visible through a git provider.
type SearchInput struct {
	Provider       string  `json:"provider" validate:"required,oneof=GITHUB GITLAB"`
	Keyword        *string `json:"keyword"`
	Limit          int     `json:"limit" validate:"gte=0"`
	GitNamespaceID *int    `json:"gitNamespaceId"`
}

func (in *SearchInput) Defaults() {
	in.Limit = DefaultSearchLimit
}

// Reader is the account contract consumed by the MCP tools.
type Reader interface {
	Me(ctx context.Context) (json.RawMessage, error)
	RepoID(ctx context.Context, in RepoIDInput) (json.RawMessage, error)
	SearchRepos(ctx context.Context, in SearchInput) (json.RawMessage, error)
}
