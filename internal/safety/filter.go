// Package safety provides command filtering, confirmation tokens and audit
// logging for operations with remote side effects.
package safety

import (
	"path/filepath"
	"slices"
)

// Filter decides which names, such as the base command of a remote exec,
// are permitted. Both lists hold filepath.Match globs.
//
// The denylist always wins. An empty allowlist permits everything not
// denied; otherwise a name must match an allowlist pattern. A nil *Filter
// permits everything.
type Filter struct {
	allowlist []string
	denylist  []string
}

// NewFilter returns a Filter over copies of allowlist and denylist.
func NewFilter(allowlist, denylist []string) *Filter {
	return &Filter{
		allowlist: slices.Clone(allowlist),
		denylist:  slices.Clone(denylist),
	}
}

// IsAllowed reports whether name is permitted.
func (f *Filter) IsAllowed(name string) bool {
	if f == nil {
		return true
	}
	if matchAny(f.denylist, name) {
		return false
	}
	return len(f.allowlist) == 0 || matchAny(f.allowlist, name)
}

// InvalidPatterns returns the patterns filepath.Match rejects. They never
// match anything.
func (f *Filter) InvalidPatterns() []string {
	if f == nil {
		return nil
	}
	var bad []string
	for _, p := range slices.Concat(f.allowlist, f.denylist) {
		if _, err := filepath.Match(p, ""); err != nil {
			bad = append(bad, p)
		}
	}
	return bad
}

func matchAny(patterns []string, name string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool {
		ok, err := filepath.Match(p, name)
		return err == nil && ok
	})
}
