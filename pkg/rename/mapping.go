package rename

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/snapshot"
)

// Pair is one requested rename, both paths relative to the root.
type Pair struct {
	Old string
	New string
}

// Mapping is the partial injective old-to-new function derived from the
// lines the user actually changed. Sources are unique because snapshot
// paths are unique; target uniqueness is enforced by BuildMapping.
type Mapping struct {
	Pairs []Pair
}

// IsEmpty reports whether the user changed nothing.
func (m Mapping) IsEmpty() bool {
	return len(m.Pairs) == 0
}

// Sources returns the set of paths being renamed away.
func (m Mapping) Sources() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Pairs))
	for _, p := range m.Pairs {
		set[p.Old] = struct{}{}
	}
	return set
}

// Targets returns the set of new paths.
func (m Mapping) Targets() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Pairs))
	for _, p := range m.Pairs {
		set[p.New] = struct{}{}
	}
	return set
}

// BuildMapping validates the edited list against the snapshot and
// returns the mapping of changed lines. It performs no filesystem I/O.
//
// The checks run in order, each a hard rejection: line count, target
// uniqueness across the whole edited list, collision with files not
// being renamed away, and path well-formedness. A target equal to a
// snapshot path that is itself a pending source is allowed: the planner
// sequences it as a chain or cycle member.
func BuildMapping(snap *snapshot.Snapshot, edited []string) (Mapping, error) {
	if len(edited) != len(snap.Paths) {
		return Mapping{}, errors.Newf(errors.ErrLineCount,
			"the edited list has %d lines, the original has %d; add or remove no lines",
			len(edited), len(snap.Paths)).
			WithDetail("edited", len(edited)).
			WithDetail("original", len(snap.Paths))
	}

	// Normalize before any comparison so "a//b" and "a/b" are the same
	// entry. Empty lines never reach this point in one-line-per-path
	// form, but normalization maps them to "." which is rejected below.
	normalized := make([]string, len(edited))
	for i, line := range edited {
		normalized[i] = filepath.Clean(strings.TrimSpace(line))
	}

	// Target uniqueness over the whole edited list. An unchanged line
	// coincides only with itself; any value appearing twice means two
	// files would end up with the same name.
	firstLine := make(map[string]int, len(normalized))
	for i, path := range normalized {
		if prev, ok := firstLine[path]; ok {
			return Mapping{}, errors.Newf(errors.ErrDuplicateTarget,
				"lines %d and %d both name %q", prev+1, i+1, path).
				WithDetail("path", path).
				WithDetail("lines", []int{prev + 1, i + 1})
		}
		firstLine[path] = i
	}

	var pairs []Pair
	sources := make(map[string]struct{})
	for i, path := range normalized {
		if path != snap.Paths[i] {
			pairs = append(pairs, Pair{Old: snap.Paths[i], New: path})
			sources[snap.Paths[i]] = struct{}{}
		}
	}

	// A new name must not shadow a file the user left untouched. If the
	// colliding file is itself being renamed away it is fine, the
	// planner vacates it first.
	inSnapshot := snap.PathSet()
	for i, pair := range pairs {
		if _, exists := inSnapshot[pair.New]; !exists {
			continue
		}
		if _, vacated := sources[pair.New]; !vacated {
			return Mapping{}, errors.Newf(errors.ErrTargetCollision,
				"renaming %q to %q would overwrite a file not being renamed", pair.Old, pair.New).
				WithDetail("old", pair.Old).
				WithDetail("new", pair.New).
				WithDetail("pair", i)
		}
	}

	for _, pair := range pairs {
		if err := validateTarget(pair, snap.Options.Recursive); err != nil {
			return Mapping{}, err
		}
	}

	return Mapping{Pairs: pairs}, nil
}

// validateTarget rejects malformed new paths: empty, absolute, escaping
// the root, or leaving the root directory in non-recursive mode.
func validateTarget(pair Pair, recursive bool) error {
	reject := func(reason string) error {
		return errors.Newf(errors.ErrMalformedPath,
			"cannot rename %q to %q: %s", pair.Old, pair.New, reason).
			WithDetail("old", pair.Old).
			WithDetail("new", pair.New)
	}

	switch {
	case pair.New == "" || pair.New == ".":
		return reject("new name is empty")
	case strings.ContainsRune(pair.New, 0):
		return reject("new name contains a NUL byte")
	case filepath.IsAbs(pair.New):
		return reject("new name must be relative to the base directory")
	case pair.New == ".." || strings.HasPrefix(pair.New, ".."+string(filepath.Separator)):
		return reject("new name escapes the base directory")
	case !recursive && strings.ContainsRune(pair.New, filepath.Separator):
		return reject("new name leaves the base directory; rerun with --recursive")
	}
	return nil
}
