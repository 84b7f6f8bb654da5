package safety

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const tokenTTL = 5 * time.Minute

// target is what a confirmation token authorises.
type target struct {
	tool     string
	resource string
}

type grant struct {
	target
	issued time.Time
}

func (g grant) expired(now time.Time) bool {
	return now.Sub(g.issued) > tokenTTL
}

// ConfirmationTracker hands out single-use tokens that gate destructive tool
// calls. A token is honoured once, within tokenTTL, and only for the tool and
// resource it was issued for.
type ConfirmationTracker struct {
	destructive map[string]bool
	now         func() time.Time

	mu     sync.Mutex
	tokens map[string]grant
}

// NewConfirmationTracker returns a tracker that requires confirmation for the
// named tools. With no tools nothing needs confirming.
func NewConfirmationTracker(destructiveTools []string) *ConfirmationTracker {
	ct := &ConfirmationTracker{
		destructive: make(map[string]bool, len(destructiveTools)),
		now:         time.Now,
		tokens:      make(map[string]grant),
	}
	for _, tool := range destructiveTools {
		ct.destructive[tool] = true
	}
	return ct
}

// NeedsConfirmation reports whether calls to tool must carry a token.
func (ct *ConfirmationTracker) NeedsConfirmation(tool string) bool {
	return ct != nil && ct.destructive[tool]
}

// RequestConfirmation issues a token for running tool against resource.
// Expired tokens are dropped on the way.
func (ct *ConfirmationTracker) RequestConfirmation(tool, resource string) string {
	token := newToken()

	ct.mu.Lock()
	defer ct.mu.Unlock()
	now := ct.now()
	for t, g := range ct.tokens {
		if g.expired(now) {
			delete(ct.tokens, t)
		}
	}
	ct.tokens[token] = grant{target: target{tool: tool, resource: resource}, issued: now}
	return token
}

// Confirm redeems token for tool and resource. The token is spent by the
// first call whether or not it matches.
func (ct *ConfirmationTracker) Confirm(token, tool, resource string) bool {
	if token == "" {
		return false
	}

	ct.mu.Lock()
	defer ct.mu.Unlock()
	g, ok := ct.tokens[token]
	if !ok {
		return false
	}
	delete(ct.tokens, token)
	return !g.expired(ct.now()) && g.target == target{tool: tool, resource: resource}
}

func newToken() string {
	var b [16]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
