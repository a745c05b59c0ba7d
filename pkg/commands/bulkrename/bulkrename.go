package bulkrename

import (
	"time"

	"github.com/arthur-debert/bumv/pkg/config"
	"github.com/arthur-debert/bumv/pkg/editor"
	"github.com/arthur-debert/bumv/pkg/filesystem"
	"github.com/arthur-debert/bumv/pkg/logging"
	"github.com/arthur-debert/bumv/pkg/rename"
	"github.com/arthur-debert/bumv/pkg/snapshot"
	"github.com/arthur-debert/bumv/pkg/types"
	"github.com/arthur-debert/bumv/pkg/ui"
)

// Options holds everything one invocation needs. The configuration is
// threaded through explicitly; nothing reads ambient state. FileSystem,
// Edit, and Confirm are injectable for tests, mirroring how the
// collaborators are injected in production.
type Options struct {
	// Root is the base directory, "." when unset.
	Root string

	// Config carries editor choice, traversal mode, and journal mode.
	Config config.Config

	// DryRun stops after planning; the caller renders the plan.
	DryRun bool

	// AutoConfirm skips the prompt (--yes).
	AutoConfirm bool

	// Format selects rendering for the confirmation screen.
	Format ui.Format

	FileSystem types.FS        // defaults to the OS filesystem
	Edit       editor.EditFunc // defaults to the configured editor
	Confirm    ui.ConfirmFunc  // defaults to the interactive prompt
	Now        func() time.Time
}

// Result reports what one invocation did.
type Result struct {
	Snapshot *snapshot.Snapshot
	Mapping  rename.Mapping
	Plan     *rename.Plan

	// Executed is true when the renames ran to completion.
	Executed bool

	// Declined is true when the user rejected the plan.
	Declined bool

	// Completed lists the steps that actually ran.
	Completed []rename.Step

	// LogPath is the rename log written after a successful run, empty
	// when logging is disabled or nothing changed.
	LogPath string
}

// Run performs one bulk rename: capture, edit, validate, plan,
// confirm, execute, journal.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.bulkrename")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	snapOpts := snapshot.Options{
		Recursive:      opts.Config.Recursive,
		RespectIgnores: opts.Config.RespectIgnores,
	}

	logger.Info().
		Str("root", root).
		Bool("recursive", snapOpts.Recursive).
		Bool("respectIgnores", snapOpts.RespectIgnores).
		Bool("dryRun", opts.DryRun).
		Msg("Starting bulk rename")

	snap, err := snapshot.Capture(fsys, root, snapOpts)
	if err != nil {
		return nil, err
	}
	result := &Result{Snapshot: snap}
	if len(snap.Paths) == 0 {
		logger.Info().Msg("Nothing to rename")
		return result, nil
	}

	edit := opts.Edit
	if edit == nil {
		edit = editor.Resolve(opts.Config.Editor, opts.Config.UseVSCode).Edit
	}
	editedText, err := edit(editor.Render(snap.Paths))
	if err != nil {
		return nil, err
	}

	mapping, err := rename.BuildMapping(snap, editor.Parse(editedText))
	if err != nil {
		return nil, err
	}
	result.Mapping = mapping
	if mapping.IsEmpty() {
		logger.Info().Msg("No lines changed")
		return result, nil
	}

	plan, err := rename.NewPlanner(fsys, root).Build(mapping)
	if err != nil {
		return nil, err
	}
	result.Plan = plan

	if opts.DryRun {
		logger.Info().Int("steps", len(plan.Steps())).Msg("Dry run, stopping before execution")
		return result, nil
	}

	confirm := opts.Confirm
	if confirm == nil {
		if opts.AutoConfirm {
			confirm = ui.AlwaysAccept
		} else {
			confirm = ui.Confirm(opts.Format)
		}
	}
	accepted, err := confirm(ui.RenderPlan(plan, opts.Format))
	if err != nil {
		return nil, err
	}
	if !accepted {
		logger.Info().Msg("User declined the plan")
		result.Declined = true
		return result, nil
	}

	stepLog := &rename.StepLog{}
	executor := &rename.Executor{
		FS:   fsys,
		Root: root,
		Refresh: func() (*snapshot.Snapshot, error) {
			return snapshot.Capture(fsys, root, snapOpts)
		},
		Recorder: stepLog,
	}
	if err := executor.Execute(snap, plan); err != nil {
		result.Completed = stepLog.Completed
		return result, err
	}
	result.Completed = stepLog.Completed
	result.Executed = true

	if !opts.Config.NoLog {
		logPath, err := rename.WriteLogFile(fsys, root, mapping, now())
		if err != nil {
			// The renames succeeded; a failed log write is not fatal
			logger.Warn().Err(err).Msg("Failed to write rename log")
		} else {
			result.LogPath = logPath
		}
	}

	logger.Info().Int("renamed", len(mapping.Pairs)).Msg("Bulk rename finished")
	return result, nil
}
