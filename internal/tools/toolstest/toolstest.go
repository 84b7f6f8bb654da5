// Package toolstest drives tool registrations in tests.
package toolstest

import (
	"context"
	"regexp"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jamesprial/zeabur-mcp/internal/tools"
)

// Request builds a CallToolRequest for name with args.
func Request(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// Text returns the text of the first content item of result.
func Text(t testing.TB, result *mcp.CallToolResult) string {
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

// Find returns the registration named name, failing the test if absent.
func Find(t testing.TB, regs []tools.Registration, name string) tools.Registration {
	t.Helper()
	for _, r := range regs {
		if r.Tool.Name == name {
			return r
		}
	}
	t.Fatalf("tool %q not registered (have %v)", name, tools.Names(regs))
	return tools.Registration{}
}

// Call invokes the registration named name and returns the result text.
// Handlers report failures in-band, so a non-nil Go error fails the test.
func Call(t testing.TB, regs []tools.Registration, name string, args map[string]any) string {
	t.Helper()
	reg := Find(t, regs, name)
	result, err := reg.Handler(context.Background(), Request(name, args))
	if err != nil {
		t.Fatalf("%s returned Go error: %v", name, err)
	}
	return Text(t, result)
}

var tokenPattern = regexp.MustCompile(`confirmation_token="([a-f0-9]+)"`)

// Token extracts the confirmation token from a confirmation prompt.
func Token(t testing.TB, text string) string {
	t.Helper()
	m := tokenPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		t.Fatalf("no confirmation_token in %q", text)
	}
	return m[1]
}
