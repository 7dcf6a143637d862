package vos

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// VFS is the filesystem the shell scans and writes through.
type VFS = afero.Fs

// NewOsFs returns a VFS backed by the host filesystem.
func NewOsFs() VFS {
	return afero.NewOsFs()
}

// IsExecutable reports whether the mode describes a non-directory with any
// execute bit set.
func IsExecutable(mode fs.FileMode) bool {
	return !mode.IsDir() && mode&0111 != 0
}

// ReadDir lists the entries of dirname sorted by name.
func ReadDir(vfs VFS, dirname string) ([]os.FileInfo, error) {
	return afero.ReadDir(vfs, dirname)
}

// DirExists reports whether name exists and is a directory.
func DirExists(vfs VFS, name string) bool {
	ok, err := afero.DirExists(vfs, name)
	return ok && err == nil
}
