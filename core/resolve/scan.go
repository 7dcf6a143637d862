package resolve

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/josephlewis42/minish/core/vos"
)

// Scanner enumerates the entries of search path directories. Directories
// that can't be read are skipped.
type Scanner struct {
	FS vos.VFS

	// Getwd, if set, anchors relative search path entries. Without it they
	// are relative to the process working directory.
	Getwd func() string

	// OnScan, if set, is called before each directory is enumerated.
	OnScan func(dir string)

	scans int64
}

// NewScanner creates a scanner over the given filesystem.
func NewScanner(vfs vos.VFS) *Scanner {
	return &Scanner{FS: vfs}
}

// Abs anchors dir to the working directory if it's relative.
func (s *Scanner) Abs(dir string) string {
	if filepath.IsAbs(dir) || s.Getwd == nil {
		return dir
	}
	return filepath.Join(s.Getwd(), dir)
}

// Scan calls visit for each entry of each directory in order until visit
// returns false. Symbolic links are reported with the mode of their target,
// dangling links are skipped.
func (s *Scanner) Scan(dirs []string, visit func(dir string, entry os.FileInfo) bool) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		dir = s.Abs(dir)

		atomic.AddInt64(&s.scans, 1)
		if s.OnScan != nil {
			s.OnScan(dir)
		}

		entries, err := vos.ReadDir(s.FS, dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.Mode()&os.ModeSymlink != 0 {
				target, err := s.FS.Stat(filepath.Join(dir, entry.Name()))
				if err != nil {
					continue
				}
				entry = target
			}

			if !visit(dir, entry) {
				return
			}
		}
	}
}

// Scans returns the number of directory enumerations attempted.
func (s *Scanner) Scans() int {
	return int(atomic.LoadInt64(&s.scans))
}

// hasRelative reports whether any non-empty entry of dirs is relative.
func hasRelative(dirs []string) bool {
	for _, dir := range dirs {
		if dir != "" && !filepath.IsAbs(dir) {
			return true
		}
	}
	return false
}
