package fs

import (
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path       string     `json:"path"`
	Extension  string     `json:"extension"`
	Pattern    string     `json:"pattern"`
	Documents  int        `json:"documents"`
	LastListed *time.Time `json:"last_listed,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Path:       r.Path,
		Extension:  r.config.Extension,
		Pattern:    r.config.Pattern,
		Documents:  r.listed,
		LastListed: r.lastListed,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs-repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

func (r *Repository) recordList(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastListed = &now
	r.listed = n
}
