package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const executeCommandMutation = `mutation ExecuteCommand($serviceId: ObjectID!, $environmentId: ObjectID!, $command: [String!]!) {
  executeCommand(serviceID: $serviceId, environmentID: $environmentId, command: $command) {
    exitCode
    output
  }
}`

// GraphQLRunner implements Runner over a graphql.Client.
type GraphQLRunner struct {
	client   graphql.Client
	filter   *safety.Filter
	readOnly *safety.Filter
}

// NewGraphQLRunner returns a runner whose execute_command calls are checked
// against filter. A nil filter allows every command. It panics if client is
// nil.
func NewGraphQLRunner(client graphql.Client, filter *safety.Filter) *GraphQLRunner {
	if client == nil {
		panic("command: NewGraphQLRunner called with nil client")
	}
	if filter == nil {
		filter = safety.NewFilter(nil, nil)
	}
	return &GraphQLRunner{
		client:   client,
		filter:   filter,
		readOnly: safety.NewFilter(ReadOnlyCommands, nil),
	}
}

var _ Runner = (*GraphQLRunner)(nil)

func (r *GraphQLRunner) Execute(ctx context.Context, in Input) (string, error) {
	if err := schema.Validate(&in); err != nil {
		return "", err
	}
	if base := in.Command[0]; !r.filter.IsAllowed(base) {
		return "", schema.Invalid("command", fmt.Sprintf("command '%s' is not allowed by the server configuration", base))
	}
	return r.run(ctx, in)
}

func (r *GraphQLRunner) ReadOnly(ctx context.Context, in Input) (string, error) {
	if err := schema.Validate(&in); err != nil {
		return "", err
	}
	if base := in.Command[0]; !r.readOnly.IsAllowed(base) {
		return "", schema.Invalid("command", fmt.Sprintf(
			"command '%s' is not allowed. Only read operations are permitted: %s",
			base, strings.Join(ReadOnlyCommands, ", ")))
	}
	return r.run(ctx, in)
}

func (r *GraphQLRunner) run(ctx context.Context, in Input) (string, error) {
	var resp struct {
		ExecuteCommand *Result `json:"executeCommand"`
	}
	err := graphql.Decode(ctx, r.client, executeCommandMutation, map[string]any{
		"serviceId":     in.ServiceID,
		"environmentId": in.EnvironmentID,
		"command":       in.Command,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("command execute: %w", err)
	}
	if resp.ExecuteCommand == nil {
		return "", errors.New("command execute: no result returned")
	}
	return Format(*resp.ExecuteCommand), nil
}

// Format renders a result: the output cut to MaxOutputLength characters,
// prefixed with the exit code when it is non-zero.
func Format(res Result) string {
	out := res.Output
	if runes := []rune(out); len(runes) > MaxOutputLength {
		out = string(runes[:MaxOutputLength]) + truncatedSuffix
	}
	if res.ExitCode != 0 {
		out = fmt.Sprintf("(exit code %d) %s", res.ExitCode, out)
	}
	return out
}
