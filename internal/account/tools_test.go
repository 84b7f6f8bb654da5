package account_test

import (
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/account"
	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
	"github.com/jamesprial/zeabur-mcp/internal/tools/toolstest"
)

func Test_Tools_Registration(t *testing.T) {
	regs := account.Tools(account.NewReader(graphqltest.Respond(`{}`)), tools.Deps{})
	if got := strings.Join(tools.Names(regs), ","); got != "get_me,get_repo_id,search_git_repos" {
		t.Errorf("tools = %s", got)
	}
	for _, r := range regs {
		if r.Tool.Annotations.ReadOnlyHint == nil || !*r.Tool.Annotations.ReadOnlyHint {
			t.Errorf("%s should be read-only", r.Tool.Name)
		}
	}
}

func Test_SearchGitRepos_DefaultLimit(t *testing.T) {
	client := graphqltest.Respond(`{"searchGitRepositories":[{"id":1}]}`)
	regs := account.Tools(account.NewReader(client), tools.Deps{})

	toolstest.Call(t, regs, "search_git_repos", map[string]any{"provider": "GITHUB", "keyword": "web"})

	vars := client.LastCall().Variables
	if vars["limit"] != 10 || vars["keyword"] != "web" {
		t.Errorf("variables = %v", vars)
	}
}

func Test_SearchGitRepos_UnknownProvider(t *testing.T) {
	client := graphqltest.Respond(`{}`)
	regs := account.Tools(account.NewReader(client), tools.Deps{})

	text := toolstest.Call(t, regs, "search_git_repos", map[string]any{"provider": "BITBUCKET"})
	if text != "error: invalid input: provider: must be one of [GITHUB, GITLAB]" {
		t.Errorf("text = %q", text)
	}
	if client.CallCount() != 0 {
		t.Errorf("transport calls = %d, want 0", client.CallCount())
	}
}
