package snapshot

import (
	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/logging"
	"github.com/arthur-debert/bumv/pkg/types"
)

// Options selects what a capture includes. They never change how the
// validator, planner, or executor behave beyond snapshot contents.
type Options struct {
	// Recursive includes files in subdirectories of the root.
	Recursive bool

	// RespectIgnores applies .gitignore/.ignore patterns and skips
	// hidden files and directories.
	RespectIgnores bool
}

// Snapshot is an ordered list of relative file paths captured from the
// filesystem at one instant. It is immutable after capture; a new
// capture with the same options is used to detect staleness.
type Snapshot struct {
	Root    string
	Options Options
	Paths   []string
}

// Capture walks root through fsys and returns the ordered snapshot.
// Paths are relative to root, cleaned, and sorted lexically so that two
// captures of an unchanged tree are identical line for line.
func Capture(fsys types.FS, root string, opts Options) (*Snapshot, error) {
	logger := logging.GetLogger("snapshot")

	paths, err := walk(fsys, root, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTraversal, "failed to walk %s", root)
	}

	logger.Debug().
		Str("root", root).
		Bool("recursive", opts.Recursive).
		Bool("respectIgnores", opts.RespectIgnores).
		Int("files", len(paths)).
		Msg("Captured snapshot")

	return &Snapshot{Root: root, Options: opts, Paths: paths}, nil
}

// Equal reports whether two snapshots list exactly the same paths in
// the same order. This is the whole-snapshot staleness comparison.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil || len(s.Paths) != len(other.Paths) {
		return false
	}
	for i, p := range s.Paths {
		if other.Paths[i] != p {
			return false
		}
	}
	return true
}

// PathSet returns the snapshot paths as a set for membership checks.
func (s *Snapshot) PathSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Paths))
	for _, p := range s.Paths {
		set[p] = struct{}{}
	}
	return set
}
