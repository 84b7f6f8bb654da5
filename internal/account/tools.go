package account

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

const (
	toolNameGetMe          = "get_me"
	toolNameGetRepoID      = "get_repo_id"
	toolNameSearchGitRepos = "search_git_repos"
)

type noInput struct{}

// Tools returns the account tool registrations.
func Tools(r Reader, deps tools.Deps) []tools.Registration {
	return []tools.Registration{
		toolGetMe(r, deps),
		toolGetRepoID(r, deps),
		toolSearchGitRepos(r, deps),
	}
}

func toolGetMe(r Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetMe,
		mcp.WithDescription("Get the profile, credit and subscription plan of the authenticated account."),
		mcp.WithReadOnlyHintAnnotation(true),
	)

	handler := tools.Handler(toolNameGetMe, deps, func(ctx context.Context, _ *noInput) (any, error) {
		return r.Me(ctx)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolGetRepoID(r Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameGetRepoID,
		mcp.WithDescription("Resolve a GitHub repository URL to the numeric repo ID used by deploy_from_specification."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Full repository URL, e.g. https://github.com/owner/repo."),
		),
	)

	handler := tools.Handler(toolNameGetRepoID, deps, func(ctx context.Context, in *RepoIDInput) (any, error) {
		return r.RepoID(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}

func toolSearchGitRepos(r Reader, deps tools.Deps) tools.Registration {
	tool := mcp.NewTool(toolNameSearchGitRepos,
		mcp.WithDescription("Search the repositories the account can reach through a git provider."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("provider",
			mcp.Required(),
			mcp.Enum("GITHUB", "GITLAB"),
			mcp.Description("Git provider."),
		),
		mcp.WithString("keyword",
			mcp.Description("Search keyword, usually the repository name."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results."),
			mcp.DefaultNumber(DefaultSearchLimit),
			mcp.Min(0),
		),
		mcp.WithNumber("gitNamespaceId",
			mcp.Description("Restrict the search to one git namespace."),
		),
	)

	handler := tools.Handler(toolNameSearchGitRepos, deps, func(ctx context.Context, in *SearchInput) (any, error) {
		return r.SearchRepos(ctx, *in)
	})

	return tools.Registration{Tool: tool, Handler: handler}
}
