package resolve

import (
	"path/filepath"
	"sync"

	"github.com/josephlewis42/minish/core/vos"
)

// SearchPath tracks the directory list derived from PATH.
type SearchPath struct {
	env vos.Getenver

	mu         sync.Mutex
	raw        string
	dirs       []string
	generation uint64
}

// NewSearchPath creates a SearchPath reading PATH from env.
func NewSearchPath(env vos.Getenver) *SearchPath {
	return &SearchPath{env: env}
}

// Refresh reads PATH and rebuilds the directory list if the value differs
// from the last one seen. It returns a copy of the list and its generation.
func (sp *SearchPath) Refresh() ([]string, uint64) {
	raw := sp.env.Getenv(vos.EnvPath)

	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.generation == 0 || raw != sp.raw {
		sp.rebuild(raw)
	}

	return append([]string(nil), sp.dirs...), sp.generation
}

// Invalidate forces the next Refresh to observe a new generation even if
// PATH is unchanged.
func (sp *SearchPath) Invalidate() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.rebuild(sp.raw)
}

func (sp *SearchPath) rebuild(raw string) {
	sp.raw = raw
	sp.dirs = SplitList(raw)
	sp.generation++
}

// SplitList splits a PATH value on the platform list separator. Empty
// elements are kept in place; they name no directory and are skipped when
// scanning.
func SplitList(raw string) []string {
	return filepath.SplitList(raw)
}
