// Package complete provides command name completion over builtins and the
// programs on the search path.
package complete

import (
	"os"

	"github.com/josephlewis42/minish/core/resolve"
	"github.com/josephlewis42/minish/core/vos"
)

// Index holds every completable command name. It's rebuilt from scratch for
// each completion request.
type Index struct {
	builtins   []string
	searchPath *resolve.SearchPath
	scanner    *resolve.Scanner
	trie       *Trie
}

// NewIndex creates an index seeded with the builtin names that reads
// directories from searchPath.
func NewIndex(builtins []string, searchPath *resolve.SearchPath, vfs vos.VFS) *Index {
	return &Index{
		builtins:   append([]string(nil), builtins...),
		searchPath: searchPath,
		scanner:    resolve.NewScanner(vfs),
		trie:       NewTrie(),
	}
}

// Scanner returns the scanner used to populate the index.
func (ix *Index) Scanner() *resolve.Scanner {
	return ix.scanner
}

// Build clears the index and repopulates it with the builtins followed by
// every entry of every readable search path directory.
func (ix *Index) Build() {
	ix.trie.Reset()

	for _, name := range ix.builtins {
		ix.trie.Insert(name)
	}

	dirs, _ := ix.searchPath.Refresh()
	ix.scanner.Scan(dirs, func(_ string, entry os.FileInfo) bool {
		ix.trie.Insert(entry.Name())
		return true
	})
}

// Len returns the number of distinct names from the last Build.
func (ix *Index) Len() int {
	return ix.trie.Len()
}

// Complete rebuilds the index and returns every name starting with prefix.
func (ix *Index) Complete(prefix string) []string {
	ix.Build()
	return ix.trie.WithPrefix(prefix)
}

// NewSession starts a completion request for prefix.
func (ix *Index) NewSession(prefix string) *Session {
	return &Session{
		Prefix:  prefix,
		matches: ix.Complete(prefix),
	}
}
