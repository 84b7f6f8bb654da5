package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesprial/zeabur-mcp/internal/config"
	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/session"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

func TestBuildRegistrations_UniqueNames(t *testing.T) {
	client := graphqltest.Respond(`{}`)
	regs := buildRegistrations(client, session.NewRegistry(client), nil, tools.Deps{})

	seen := make(map[string]bool)
	for _, name := range tools.Names(regs) {
		assert.False(t, seen[name], "duplicate tool %s", name)
		seen[name] = true
	}

	for _, name := range []string{
		"execute_graphql", "list_projects", "create_service", "deploy_from_specification",
		"wait_for_services_running", "decide_filesystem", "execute_command",
		"delete_environment_variable", "delete_aihub_key", "render_floating_button",
	} {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestDestructiveToolsAreRegistered(t *testing.T) {
	client := graphqltest.Respond(`{}`)
	names := tools.Names(buildRegistrations(client, session.NewRegistry(client), nil, tools.Deps{}))
	for _, d := range destructiveTools() {
		assert.Contains(t, names, d)
	}
}

func TestToolsCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"tools"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "! delete_aihub_key")
	assert.Contains(t, out.String(), "  get_me")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  transport: stdio\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, config.DefaultGraphQLURL, cfg.Zeabur.URL)

	cfg, err = loadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load "))
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestServeRejectsUnknownTransport(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"serve", "--config", filepath.Join(t.TempDir(), "none.yaml"), "--transport", "grpc"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server.transport")
}
