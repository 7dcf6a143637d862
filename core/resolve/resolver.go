package resolve

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/josephlewis42/minish/core/vos"
)

// lookup is a memoized resolution, found is false for the "not found" marker.
type lookup struct {
	path  string
	found bool
}

// Resolver finds executables on the search path and memoizes the results
// until the search path changes.
type Resolver struct {
	searchPath *SearchPath
	scanner    *Scanner

	mu         sync.Mutex
	generation uint64
	cache      map[string]lookup
}

// NewResolver creates a resolver over the given search path and filesystem.
func NewResolver(searchPath *SearchPath, vfs vos.VFS) *Resolver {
	return &Resolver{
		searchPath: searchPath,
		scanner:    NewScanner(vfs),
	}
}

// SearchPath returns the search path the resolver reads.
func (r *Resolver) SearchPath() *SearchPath {
	return r.searchPath
}

// Scanner returns the scanner used for lookups.
func (r *Resolver) Scanner() *Scanner {
	return r.scanner
}

// Resolve returns the path of the first executable named name on the search
// path. The boolean is false if nothing matched. Results, including misses,
// are served from the cache until the search path changes.
func (r *Resolver) Resolve(name string) (string, bool) {
	dirs, generation := r.searchPath.Refresh()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cache == nil || generation != r.generation {
		r.cache = make(map[string]lookup)
		r.generation = generation
	}

	if cached, ok := r.cache[name]; ok {
		return cached.path, cached.found
	}

	result := r.search(dirs, name)
	r.cache[name] = result
	return result.path, result.found
}

// search scans dirs for name. An executable match wins immediately; if only
// non-executable entries match the first of them is used.
func (r *Resolver) search(dirs []string, name string) lookup {
	var result, fallback lookup

	r.scanner.Scan(dirs, func(dir string, entry os.FileInfo) bool {
		if entry.Name() != name || entry.IsDir() {
			return true
		}

		candidate := lookup{path: filepath.Join(dir, entry.Name()), found: true}
		if vos.IsExecutable(entry.Mode()) {
			result = candidate
			return false
		}
		if !fallback.found {
			fallback = candidate
		}
		return true
	})

	if result.found {
		return result
	}
	return fallback
}

// ResolveAll returns every entry named name on the search path in priority
// order, shadowed ones included. It bypasses the cache.
func (r *Resolver) ResolveAll(name string) []string {
	dirs, _ := r.searchPath.Refresh()

	var out []string
	r.scanner.Scan(dirs, func(dir string, entry os.FileInfo) bool {
		if entry.Name() == name && !entry.IsDir() {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
		return true
	})
	return out
}

// Invalidate rebuilds the search path, dropping all memoized lookups.
func (r *Resolver) Invalidate() {
	r.searchPath.Invalidate()
}

// WorkingDirChanged drops memoized lookups if the search path has relative
// entries, they now name different directories.
func (r *Resolver) WorkingDirChanged() {
	dirs, _ := r.searchPath.Refresh()
	if hasRelative(dirs) {
		r.Invalidate()
	}
}

// Scans returns the number of directory enumerations performed so far.
func (r *Resolver) Scans() int {
	return r.scanner.Scans()
}
