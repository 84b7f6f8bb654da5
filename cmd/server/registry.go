package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jamesprial/zeabur-mcp/internal/account"
	"github.com/jamesprial/zeabur-mcp/internal/aihub"
	"github.com/jamesprial/zeabur-mcp/internal/command"
	"github.com/jamesprial/zeabur-mcp/internal/config"
	"github.com/jamesprial/zeabur-mcp/internal/deploy"
	"github.com/jamesprial/zeabur-mcp/internal/files"
	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/logs"
	"github.com/jamesprial/zeabur-mcp/internal/metrics"
	"github.com/jamesprial/zeabur-mcp/internal/projects"
	"github.com/jamesprial/zeabur-mcp/internal/render"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/services"
	"github.com/jamesprial/zeabur-mcp/internal/session"
	"github.com/jamesprial/zeabur-mcp/internal/status"
	"github.com/jamesprial/zeabur-mcp/internal/templates"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
	"github.com/jamesprial/zeabur-mcp/internal/variables"
)

// destructiveTools are the tools that only run after a confirmation round
// trip.
func destructiveTools() []string {
	return slices.Concat(variables.DestructiveTools, aihub.DestructiveTools)
}

// buildRegistrations wires every tool package to client.
func buildRegistrations(client graphql.Client, sessions *session.Registry, commandFilter *safety.Filter, deps tools.Deps) []tools.Registration {
	return slices.Concat(
		graphql.Tools(client, deps),
		projects.Tools(projects.NewManager(client), deps),
		services.Tools(services.NewManager(client), deps),
		variables.Tools(variables.NewManager(client), deps),
		files.Tools(sessions, deps),
		deploy.Tools(sessions, deps),
		status.Tools(status.NewEngine(client, status.WithMetrics(deps.Metrics)), deps),
		logs.Tools(logs.NewReader(client), deps),
		metrics.Tools(metrics.NewReader(client), deps),
		command.Tools(command.NewGraphQLRunner(client, commandFilter), deps),
		templates.Tools(templates.NewCatalog(client), deps),
		account.Tools(account.NewReader(client), deps),
		aihub.Tools(aihub.NewManager(client), deps),
		render.Tools(deps),
	)
}

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := graphql.NewHTTPClient(config.DefaultConfig().Zeabur)
			if err != nil {
				return err
			}
			regs := buildRegistrations(client, session.NewRegistry(client), nil, tools.Deps{})
			confirm := safety.NewConfirmationTracker(destructiveTools())
			out := cmd.OutOrStdout()
			for _, r := range regs {
				marker := " "
				if confirm.NeedsConfirmation(r.Tool.Name) {
					marker = "!"
				}
				fmt.Fprintf(out, "%s %-30s %s\n", marker, r.Tool.Name, r.Tool.Description)
			}
			return nil
		},
	}
}
