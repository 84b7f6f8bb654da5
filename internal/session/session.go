// Package session holds the per-client context shared by tool handlers: the
// GraphQL transport and the filesystem picked by decide_filesystem.
package session

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
)

// Filesystem is a read-only view over a build source.
type Filesystem interface {
	// List returns the entry names under path, skipping offset entries and
	// returning at most limit names.
	List(ctx context.Context, path string, limit, offset int) ([]string, error)
	// Read returns the full text content of the file at path.
	Read(ctx context.Context, path string) (string, error)
}

// Session is the state one MCP client accumulates across calls.
type Session struct {
	client graphql.Client

	mu sync.RWMutex
	fs Filesystem
}

// New returns a Session without a selected filesystem.
func New(client graphql.Client) *Session {
	return &Session{client: client}
}

// Client returns the transport bound to the session.
func (s *Session) Client() graphql.Client {
	return s.client
}

// Filesystem returns the selected filesystem, or nil when none was picked.
func (s *Session) Filesystem() Filesystem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fs
}

// SetFilesystem replaces the selected filesystem.
func (s *Session) SetFilesystem(fs Filesystem) {
	s.mu.Lock()
	s.fs = fs
	s.mu.Unlock()
}

// Registry maps MCP client session ids to Sessions. Calls that arrive
// without an MCP session, such as over stdio, share a default Session.
type Registry struct {
	client   graphql.Client
	fallback *Session

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns an empty Registry whose sessions all use client.
func NewRegistry(client graphql.Client) *Registry {
	return &Registry{
		client:   client,
		fallback: New(client),
		sessions: make(map[string]*Session),
	}
}

// Get returns the Session for id, creating it on first use. An empty id
// selects the default Session.
func (r *Registry) Get(id string) *Session {
	if id == "" {
		return r.fallback
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = New(r.client)
		r.sessions[id] = s
	}
	return s
}

// Remove forgets the Session for id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of tracked non-default sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// FromContext resolves the Session of the MCP client behind ctx.
func (r *Registry) FromContext(ctx context.Context) *Session {
	if cs := server.ClientSessionFromContext(ctx); cs != nil {
		return r.Get(cs.SessionID())
	}
	return r.fallback
}

// Hooks returns server hooks that drop a Session when its MCP client
// disconnects.
func (r *Registry) Hooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddOnUnregisterSession(func(_ context.Context, cs server.ClientSession) {
		r.Remove(cs.SessionID())
	})
	return hooks
}
