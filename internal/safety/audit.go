package safety

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// AuditEntry is one line of the audit log: a single tool call.
type AuditEntry struct {
	RequestID  string         `json:"request_id"`
	Session    string         `json:"session,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Tool       string         `json:"tool"`
	Params     map[string]any `json:"params,omitempty"`
	Result     string         `json:"result"`
	DurationMS int64          `json:"duration_ms"`
}

// AuditLogger appends AuditEntry records to a writer as JSON lines. It is
// safe for concurrent use. A nil *AuditLogger discards every entry.
type AuditLogger struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewAuditLogger returns an AuditLogger writing to w, or nil when w is nil.
func NewAuditLogger(w io.Writer) *AuditLogger {
	if w == nil {
		return nil
	}
	return &AuditLogger{enc: json.NewEncoder(w)}
}

// OpenAuditLog opens path for appending, creating it with mode 0600, and
// returns a logger writing to it together with the file's close function.
func OpenAuditLog(path string) (*AuditLogger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open audit log: %w", err)
	}
	return NewAuditLogger(f), f.Close, nil
}

// Log writes entry as a single line.
func (l *AuditLogger) Log(entry AuditEntry) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.enc.Encode(entry); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}
