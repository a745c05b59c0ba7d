// pkg/rename/mapping_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (validation is pure)
// PURPOSE: Test edited-list validation and mapping construction

package rename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/rename"
	"github.com/arthur-debert/bumv/pkg/snapshot"
)

func snap(recursive bool, paths ...string) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Root:    "/work",
		Options: snapshot.Options{Recursive: recursive, RespectIgnores: true},
		Paths:   paths,
	}
}

func TestBuildMapping_NoEdits(t *testing.T) {
	s := snap(false, "a.txt", "b.txt")

	mapping, err := rename.BuildMapping(s, []string{"a.txt", "b.txt"})

	require.NoError(t, err)
	assert.True(t, mapping.IsEmpty(), "unchanged list should produce an empty mapping")
}

func TestBuildMapping_ChangedLines(t *testing.T) {
	s := snap(false, "a.txt", "b.txt", "c.txt")

	mapping, err := rename.BuildMapping(s, []string{"a.txt", "renamed.txt", "c.txt"})

	require.NoError(t, err)
	require.Len(t, mapping.Pairs, 1)
	assert.Equal(t, rename.Pair{Old: "b.txt", New: "renamed.txt"}, mapping.Pairs[0])
}

func TestBuildMapping_LineCountMismatch(t *testing.T) {
	s := snap(false, "a.txt", "b.txt")

	_, err := rename.BuildMapping(s, []string{"a.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLineCount))

	_, err = rename.BuildMapping(s, []string{"a.txt", "b.txt", "c.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLineCount))
}

func TestBuildMapping_DuplicateTargets(t *testing.T) {
	s := snap(false, "a.txt", "b.txt")

	// Two different lines rewritten to the same name
	_, err := rename.BuildMapping(s, []string{"same.txt", "same.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateTarget))

	// One changed line colliding with an unchanged one is also a
	// duplicate within the edited list
	_, err = rename.BuildMapping(s, []string{"b.txt", "b.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateTarget))
}

func TestBuildMapping_OverwriteUntouchedFileRejected(t *testing.T) {
	s := snap(false, "a.txt", "b.txt", "c.txt")

	// a.txt -> b.txt while b.txt keeps its name: the untouched line
	// still reads b.txt, so the edited list carries the name twice and
	// is rejected before anything runs.
	_, err := rename.BuildMapping(s, []string{"b.txt", "b.txt", "c.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateTarget))

	// a.txt -> b.txt is fine when b.txt is renamed away in the same
	// batch; the planner sequences the chain.
	mapping, err := rename.BuildMapping(s, []string{"b.txt", "b.txt.old", "c.txt"})
	require.NoError(t, err)
	assert.Len(t, mapping.Pairs, 2)
}

func TestBuildMapping_TargetOfPendingSourceIsAllowed(t *testing.T) {
	// m -> z is fine when z itself is renamed away in the same batch,
	// regardless of which line comes first.
	s := snap(false, "m.txt", "z.txt")
	mapping, err := rename.BuildMapping(s, []string{"z.txt", "z2.txt"})
	require.NoError(t, err)
	assert.Len(t, mapping.Pairs, 2)

	s = snap(false, "b.txt", "y.txt")
	mapping, err = rename.BuildMapping(s, []string{"c.txt", "b.txt"})
	require.NoError(t, err)
	assert.Len(t, mapping.Pairs, 2)
}

func TestBuildMapping_SwapIsAllowed(t *testing.T) {
	s := snap(false, "a.txt", "b.txt")

	mapping, err := rename.BuildMapping(s, []string{"b.txt", "a.txt"})

	require.NoError(t, err)
	assert.Len(t, mapping.Pairs, 2)
}

func TestBuildMapping_MalformedTargets(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"absolute", "/etc/passwd"},
		{"escapes_root", "../outside.txt"},
		{"deep_escape", "../../outside.txt"},
		{"dot", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := snap(true, "a.txt")
			_, err := rename.BuildMapping(s, []string{tt.target})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPath),
				"got %v", err)
		})
	}
}

func TestBuildMapping_SubdirectoryTargetNeedsRecursiveMode(t *testing.T) {
	s := snap(false, "a.txt")
	_, err := rename.BuildMapping(s, []string{"sub/a.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedPath))

	s = snap(true, "a.txt")
	mapping, err := rename.BuildMapping(s, []string{"sub/a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "sub/a.txt", mapping.Pairs[0].New)
}

func TestBuildMapping_NormalizesBeforeComparing(t *testing.T) {
	s := snap(true, "sub/a.txt")

	// A redundant separator is not a rename
	mapping, err := rename.BuildMapping(s, []string{"sub//a.txt"})

	require.NoError(t, err)
	assert.True(t, mapping.IsEmpty())
}
