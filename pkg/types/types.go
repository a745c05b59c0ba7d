package types

import "io/fs"

// FS abstracts the filesystem operations bumv needs so that tests can
// run against an in-memory implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Mutation
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
