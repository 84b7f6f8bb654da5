// Package graphqltest provides an in-memory graphql.Client for tests.
package graphqltest

import (
	"context"
	"maps"
	"sync"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
)

// Call records one Execute invocation.
type Call struct {
	Query     string
	Variables map[string]any
}

// Client is a graphql.Client whose behaviour is set per test through
// ExecuteFunc. It records every call and is safe for concurrent use.
type Client struct {
	ExecuteFunc  func(ctx context.Context, query string, variables map[string]any) ([]byte, error)
	UserInfoFunc func(ctx context.Context) (*graphql.UserInfo, error)

	mu    sync.Mutex
	calls []Call
}

var _ graphql.Client = (*Client)(nil)

// Respond returns a Client that answers every request with data.
func Respond(data string) *Client {
	return &Client{
		ExecuteFunc: func(context.Context, string, map[string]any) ([]byte, error) {
			return []byte(data), nil
		},
	}
}

// Fail returns a Client that fails every request with err.
func Fail(err error) *Client {
	return &Client{
		ExecuteFunc: func(context.Context, string, map[string]any) ([]byte, error) {
			return nil, err
		},
	}
}

// Execute records the call and delegates to ExecuteFunc. Without one it
// returns an empty object.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	c.mu.Lock()
	c.calls = append(c.calls, Call{Query: query, Variables: maps.Clone(variables)})
	c.mu.Unlock()

	if c.ExecuteFunc == nil {
		return []byte(`{}`), nil
	}
	return c.ExecuteFunc(ctx, query, variables)
}

// UserInfo delegates to UserInfoFunc or returns a fixed identity.
func (c *Client) UserInfo(ctx context.Context) (*graphql.UserInfo, error) {
	if c.UserInfoFunc == nil {
		return &graphql.UserInfo{ID: "user-1", Email: "dev@example.com"}, nil
	}
	return c.UserInfoFunc(ctx)
}

// Calls returns a copy of the recorded calls.
func (c *Client) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Call, len(c.calls))
	copy(out, c.calls)
	return out
}

// CallCount returns the number of Execute calls so far.
func (c *Client) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// LastCall returns the most recent call. It panics when there is none.
func (c *Client) LastCall() Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[len(c.calls)-1]
}
