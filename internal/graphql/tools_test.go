package graphql_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/graphql/graphqltest"
	"github.com/jamesprial/zeabur-mcp/internal/safety"
	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func newCallToolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = "execute_graphql"
	req.Params.Arguments = args
	return req
}

func extractResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty CallToolResult")
	}
	tc, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("Content[0] is %T, want text", result.Content[0])
	}
	return tc.Text
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func Test_Tools_Registration(t *testing.T) {
	regs := graphql.Tools(graphqltest.Respond(`{}`), tools.Deps{})
	if len(regs) != 1 {
		t.Fatalf("Tools() returned %d registrations, want 1", len(regs))
	}
	tool := regs[0].Tool
	if tool.Name != "execute_graphql" {
		t.Errorf("tool name = %q, want execute_graphql", tool.Name)
	}
	if _, ok := tool.InputSchema.Properties["query"]; !ok {
		t.Error("schema missing query property")
	}
	if _, ok := tool.InputSchema.Properties["variables"]; !ok {
		t.Error("schema missing variables property")
	}
	if len(tool.InputSchema.Required) != 1 || tool.InputSchema.Required[0] != "query" {
		t.Errorf("required = %v, want [query]", tool.InputSchema.Required)
	}
	if regs[0].Handler == nil {
		t.Error("handler is nil")
	}
}

// ---------------------------------------------------------------------------
// Handler
// ---------------------------------------------------------------------------

func Test_ExecuteGraphQL_Cases(t *testing.T) {
	tests := []struct {
		name      string
		args      map[string]any
		client    *graphqltest.Client
		wantText  string
		wantCalls int
		wantVars  map[string]any
	}{
		{
			name:      "query without variables",
			args:      map[string]any{"query": "{ me { _id } }"},
			client:    graphqltest.Respond(`{"me":{"_id":"u1"}}`),
			wantText:  "{\n  \"me\": {\n    \"_id\": \"u1\"\n  }\n}",
			wantCalls: 1,
		},
		{
			name:      "variables as JSON string",
			args:      map[string]any{"query": "query Q($id: ObjectID!) { service(_id: $id) { _id } }", "variables": `{"id":"s1"}`},
			client:    graphqltest.Respond(`{"service":null}`),
			wantText:  "{\n  \"service\": null\n}",
			wantCalls: 1,
			wantVars:  map[string]any{"id": "s1"},
		},
		{
			name:      "variables as inline object",
			args:      map[string]any{"query": "query Q($id: ObjectID!) { x }", "variables": map[string]any{"id": "s2"}},
			client:    graphqltest.Respond(`{}`),
			wantText:  "{}",
			wantCalls: 1,
			wantVars:  map[string]any{"id": "s2"},
		},
		{
			name:      "empty variables string",
			args:      map[string]any{"query": "{ x }", "variables": ""},
			client:    graphqltest.Respond(`{"x":1}`),
			wantText:  "{\n  \"x\": 1\n}",
			wantCalls: 1,
		},
		{
			name:     "invalid variables never reach the transport",
			args:     map[string]any{"query": "{ x }", "variables": "{not json"},
			client:   graphqltest.Respond(`{}`),
			wantText: "error: invalid input: variables: must be a JSON object",
		},
		{
			name:     "missing query",
			args:     map[string]any{},
			client:   graphqltest.Respond(`{}`),
			wantText: "error: invalid input: query: is required",
		},
		{
			name:      "remote error",
			args:      map[string]any{"query": "{ x }"},
			client:    graphqltest.Fail(&graphql.RemoteError{Errors: []graphql.GraphQLError{{Message: "nope"}}}),
			wantText:  `error: graphql: [{"message":"nope"}]`,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regs := graphql.Tools(tt.client, tools.Deps{})
			result, err := regs[0].Handler(context.Background(), newCallToolRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned Go error: %v", err)
			}

			text := extractResultText(t, result)
			if !strings.HasPrefix(text, tt.wantText) {
				t.Errorf("text = %q, want prefix %q", text, tt.wantText)
			}
			if got := tt.client.CallCount(); got != tt.wantCalls {
				t.Errorf("transport calls = %d, want %d", got, tt.wantCalls)
			}
			if tt.wantVars != nil {
				got := tt.client.LastCall().Variables
				for k, v := range tt.wantVars {
					if got[k] != v {
						t.Errorf("variables[%q] = %v, want %v", k, got[k], v)
					}
				}
			}
		})
	}
}

func Test_ExecuteGraphQL_Audited(t *testing.T) {
	var buf bytes.Buffer
	regs := graphql.Tools(graphqltest.Respond(`{}`), tools.Deps{Audit: safety.NewAuditLogger(&buf)})

	_, _ = regs[0].Handler(context.Background(), newCallToolRequest(map[string]any{"query": "{ x }"}))
	if !strings.Contains(buf.String(), `"tool":"execute_graphql"`) || !strings.Contains(buf.String(), `"result":"ok"`) {
		t.Errorf("audit log = %s", buf.String())
	}
}

// ---------------------------------------------------------------------------
// Run / Decode
// ---------------------------------------------------------------------------

func Test_Run_Cases(t *testing.T) {
	tests := []struct {
		name    string
		client  *graphqltest.Client
		want    string
		wantErr bool
	}{
		{name: "compacts payload", client: graphqltest.Respond("{\n  \"a\": [1, 2]\n}"), want: `{"a":[1,2]}`},
		{name: "empty payload is null", client: graphqltest.Respond(""), want: "null"},
		{name: "invalid payload", client: graphqltest.Respond("{"), wantErr: true},
		{name: "transport error passes through", client: graphqltest.Fail(errors.New("down")), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := graphql.Run(context.Background(), tt.client, "{ a }", nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Run() = %s, want %s", got, tt.want)
			}
			if tt.client.CallCount() != 1 {
				t.Errorf("calls = %d, want exactly 1", tt.client.CallCount())
			}
		})
	}
}

func Test_Run_RemoteErrorIsUnchanged(t *testing.T) {
	remote := &graphql.RemoteError{Errors: []graphql.GraphQLError{{Message: "x"}}}
	_, err := graphql.Run(context.Background(), graphqltest.Fail(remote), "{ a }", nil)
	if err != remote {
		t.Errorf("error = %v, want the same *RemoteError", err)
	}
}

func Test_Decode(t *testing.T) {
	var out struct {
		Me struct {
			ID string `json:"_id"`
		} `json:"me"`
	}
	if err := graphql.Decode(context.Background(), graphqltest.Respond(`{"me":{"_id":"u1"}}`), "{ me { _id } }", nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Me.ID != "u1" {
		t.Errorf("ID = %q", out.Me.ID)
	}

	err := graphql.Decode(context.Background(), graphqltest.Respond(`[`), "{ x }", nil, &out)
	if err == nil || !strings.Contains(err.Error(), "parse response") {
		t.Errorf("error = %v, want parse error", err)
	}
}

func Test_StatusError_Messages(t *testing.T) {
	if got := (&graphql.StatusError{StatusCode: 401}).Error(); got != "graphql: authentication failed (HTTP 401)" {
		t.Errorf("401 message = %q", got)
	}
	if got := (&graphql.StatusError{StatusCode: 502}).Error(); got != "graphql: unexpected HTTP status 502" {
		t.Errorf("502 message = %q", got)
	}
	if got := (&graphql.RemoteError{}).Error(); got != "graphql: []" {
		t.Errorf("empty remote message = %q", got)
	}
}
