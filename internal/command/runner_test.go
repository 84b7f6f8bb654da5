package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

func commandResponse(exitCode int, output string) string {
	out, _ := json.Marshal(output)
	return fmt.Sprintf(`{"executeCommand":{"exitCode":%d,"output":%s}}`, exitCode, out)
}

func validInput(argv ...string) Input {
	return Input{ServiceID: "svc-1", EnvironmentID: "env-1", Command: argv}
}

func Test_NewGraphQLRunner_NilClientPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGraphQLRunner(nil) should panic")
		}
	}()
	NewGraphQLRunner(nil, nil)
}

func Test_Format(t *testing.T) {
	long := strings.Repeat("a", MaxOutputLength+10)
	exact := strings.Repeat("b", MaxOutputLength)
	wide := strings.Repeat("é", MaxOutputLength+1)

	tests := []struct {
		name string
		res  Result
		want string
	}{
		{name: "short success", res: Result{ExitCode: 0, Output: "ok\n"}, want: "ok\n"},
		{name: "empty output", res: Result{}, want: ""},
		{name: "exactly at limit", res: Result{Output: exact}, want: exact},
		{name: "over limit", res: Result{Output: long}, want: long[:MaxOutputLength] + "... (truncated)"},
		{name: "multibyte counted as characters", res: Result{Output: wide}, want: strings.Repeat("é", MaxOutputLength) + "... (truncated)"},
		{name: "non-zero exit", res: Result{ExitCode: 2, Output: "no such file"}, want: "(exit code 2) no such file"},
		{name: "negative exit", res: Result{ExitCode: -1, Output: ""}, want: "(exit code -1) "},
		{name: "non-zero exit and truncated", res: Result{ExitCode: 1, Output: long}, want: "(exit code 1) " + long[:MaxOutputLength] + "... (truncated)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.res); got != tt.want {
				t.Errorf("Format() = %q (len %d), want len %d", got, len(got), len(tt.want))
			}
		})
	}
}

func Test_GraphQLRunner_Execute_Request(t *testing.T) {
	client := graphqltest.Respond(commandResponse(0, "total 0\n"))
	runner := NewGraphQLRunner(client, nil)

	out, err := runner.Execute(context.Background(), validInput("ls", "-la"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "total 0\n" {
		t.Errorf("Execute() = %q", out)
	}

	call := client.LastCall()
	if !strings.Contains(call.Query, "executeCommand(serviceID: $serviceId, environmentID: $environmentId, command: $command)") {
		t.Errorf("query = %q", call.Query)
	}
	want := map[string]any{"serviceId": "svc-1", "environmentId": "env-1", "command": []string{"ls", "-la"}}
	if !reflect.DeepEqual(call.Variables, want) {
		t.Errorf("variables = %#v, want %#v", call.Variables, want)
	}
}

func Test_GraphQLRunner_Validation(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		readOnly  bool
		filter    *safety.Filter
		wantField string
		wantMsg   string
	}{
		{name: "empty command", in: validInput(), wantField: "command"},
		{name: "missing service", in: Input{EnvironmentID: "e", Command: []string{"ls"}}, wantField: "serviceId"},
		{name: "missing environment", in: Input{ServiceID: "s", Command: []string{"ls"}}, wantField: "environmentId"},
		{
			name:      "write command on read-only tool",
			in:        validInput("rm", "-rf", "/"),
			readOnly:  true,
			wantField: "command",
			wantMsg:   "command 'rm' is not allowed. Only read operations are permitted: ls, cat, head, tail, find, grep, tree, pwd, whoami, which, file",
		},
		{
			name:      "denied by configured filter",
			in:        validInput("rm", "x"),
			filter:    safety.NewFilter(nil, []string{"rm"}),
			wantField: "command",
			wantMsg:   "command 'rm' is not allowed by the server configuration",
		},
		{
			name:      "outside configured allowlist",
			in:        validInput("curl", "example.com"),
			filter:    safety.NewFilter([]string{"ls", "cat"}, nil),
			wantField: "command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.Respond(commandResponse(0, ""))
			runner := NewGraphQLRunner(client, tt.filter)

			var err error
			if tt.readOnly {
				_, err = runner.ReadOnly(context.Background(), tt.in)
			} else {
				_, err = runner.Execute(context.Background(), tt.in)
			}

			var ve *schema.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *schema.ValidationError", err)
			}
			if ve.Fields[0].Field != tt.wantField {
				t.Errorf("field = %q, want %q", ve.Fields[0].Field, tt.wantField)
			}
			if tt.wantMsg != "" && ve.Fields[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", ve.Fields[0].Message, tt.wantMsg)
			}
			if client.CallCount() != 0 {
				t.Errorf("transport calls = %d, want 0", client.CallCount())
			}
		})
	}
}

func Test_GraphQLRunner_ReadOnly_AllowList(t *testing.T) {
	for _, base := range ReadOnlyCommands {
		t.Run(base, func(t *testing.T) {
			client := graphqltest.Respond(commandResponse(0, "out"))
			out, err := NewGraphQLRunner(client, nil).ReadOnly(context.Background(), validInput(base))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != "out" || client.CallCount() != 1 {
				t.Errorf("out = %q, calls = %d", out, client.CallCount())
			}
		})
	}
}

func Test_GraphQLRunner_ReadOnly_IgnoresConfiguredFilter(t *testing.T) {
	client := graphqltest.Respond(commandResponse(1, "cat: x: No such file or directory"))
	runner := NewGraphQLRunner(client, safety.NewFilter(nil, []string{"*"}))

	out, err := runner.ReadOnly(context.Background(), validInput("cat", "x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "(exit code 1) cat: x: No such file or directory" {
		t.Errorf("ReadOnly() = %q", out)
	}
}

func Test_GraphQLRunner_Errors(t *testing.T) {
	remote := &graphql.RemoteError{Errors: []graphql.GraphQLError{{Message: "service not found"}}}

	tests := []struct {
		name    string
		client  *graphqltest.Client
		wantMsg string
	}{
		{name: "remote error", client: graphqltest.Fail(remote), wantMsg: `command execute: graphql: [{"message":"service not found"}]`},
		{name: "null result", client: graphqltest.Respond(`{"executeCommand":null}`), wantMsg: "command execute: no result returned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGraphQLRunner(tt.client, nil).Execute(context.Background(), validInput("ls"))
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}
