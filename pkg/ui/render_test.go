// pkg/ui/render_test.go
// TEST TYPE: Unit
// PURPOSE: Test plan and error rendering in both output formats

package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/rename"
	"github.com/arthur-debert/bumv/pkg/snapshot"
	"github.com/arthur-debert/bumv/pkg/testutil"
	"github.com/arthur-debert/bumv/pkg/ui"
)

func planFor(t *testing.T, files []string, edited []string) *rename.Plan {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	for _, f := range files {
		env.WriteFile(f, "x")
	}
	snap, err := snapshot.Capture(env.FS, env.Root, snapshot.Options{})
	require.NoError(t, err)
	mapping, err := rename.BuildMapping(snap, edited)
	require.NoError(t, err)
	plan, err := rename.NewPlanner(env.FS, env.Root).Build(mapping)
	require.NoError(t, err)
	return plan
}

func TestRenderPlan_TextFormat(t *testing.T) {
	plan := planFor(t, []string{"a.txt", "b.txt"}, []string{"renamed.txt", "b.txt"})

	out := ui.RenderPlan(plan, ui.FormatText)

	assert.Equal(t, "a.txt -> renamed.txt", out)
}

func TestRenderPlan_TerminalFormatListsEverySide(t *testing.T) {
	plan := planFor(t, []string{"a.txt", "b.txt"}, []string{"renamed.txt", "b.txt"})

	out := ui.RenderPlan(plan, ui.FormatTerminal)

	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "renamed.txt")
	assert.Contains(t, out, "Planned renames")
	assert.NotContains(t, out, "temporary rename")
}

func TestRenderPlan_TerminalFormatNotesCycleTemps(t *testing.T) {
	plan := planFor(t, []string{"a.txt", "b.txt"}, []string{"b.txt", "a.txt"})

	out := ui.RenderPlan(plan, ui.FormatTerminal)

	assert.Contains(t, out, "1 temporary rename(s) break cycles")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrStaleSnapshot, "directory changed while editing")

	out := ui.RenderError(err, ui.FormatText)

	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "directory changed while editing")
}
