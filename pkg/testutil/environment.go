// pkg/testutil/environment.go
// DEPENDENCIES: afero memory filesystem
// PURPOSE: Orchestrate in-memory test environments for rename tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/bumv/pkg/filesystem"
	"github.com/arthur-debert/bumv/pkg/types"
)

// TestEnvironment provides an in-memory filesystem rooted at Root so
// the whole rename pipeline can run without touching the disk.
type TestEnvironment struct {
	Root string
	FS   types.FS

	t *testing.T
}

// NewTestEnvironment creates a memory-backed environment.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	root := "/work"
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	return &TestEnvironment{Root: root, FS: fsys, t: t}
}

// WriteFile creates a file below the root, parents included.
func (e *TestEnvironment) WriteFile(rel, content string) {
	e.t.Helper()
	path := filepath.Join(e.Root, rel)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", rel, err)
	}
	if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// Remove deletes a file below the root.
func (e *TestEnvironment) Remove(rel string) {
	e.t.Helper()
	if err := e.FS.Remove(filepath.Join(e.Root, rel)); err != nil {
		e.t.Fatalf("failed to remove %s: %v", rel, err)
	}
}

// Exists reports whether a path below the root exists.
func (e *TestEnvironment) Exists(rel string) bool {
	_, err := e.FS.Stat(filepath.Join(e.Root, rel))
	return err == nil
}

// Content returns a file's content.
func (e *TestEnvironment) Content(rel string) string {
	e.t.Helper()
	data, err := e.FS.ReadFile(filepath.Join(e.Root, rel))
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}
