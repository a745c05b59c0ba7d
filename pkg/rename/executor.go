package rename

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/logging"
	"github.com/arthur-debert/bumv/pkg/snapshot"
	"github.com/arthur-debert/bumv/pkg/types"
)

// Recorder is notified after each completed rename. It is the
// extension point for an append-only journal of performed operations,
// which a future undo command could replay in reverse.
type Recorder interface {
	Record(step Step)
}

// Executor performs the planned renames against the filesystem.
//
// The filesystem is a shared, unsynchronized resource: another actor
// may mutate it between snapshot and execution or between steps. The
// executor compensates by re-validating immediately before each use.
// There is no rollback; on the first failed check it halts and leaves
// completed renames in place.
type Executor struct {
	// FS is the filesystem the renames run against.
	FS types.FS

	// Root is the base directory all step paths are relative to.
	Root string

	// Refresh re-derives a snapshot with the same traversal rules as
	// the original. When set, execution starts with a whole-snapshot
	// staleness check.
	Refresh func() (*snapshot.Snapshot, error)

	// Recorder, when set, receives each completed step.
	Recorder Recorder
}

// Execute runs every plan step in order.
//
// It first re-captures the snapshot and compares it path-for-path with
// the one the user edited; any drift aborts before the first rename.
// Each step then re-confirms its source is still a regular file and its
// target still absent before renaming.
func (e *Executor) Execute(snap *snapshot.Snapshot, plan *Plan) error {
	logger := logging.GetLogger("rename.executor")

	if e.Refresh != nil {
		fresh, err := e.Refresh()
		if err != nil {
			return errors.Wrap(err, errors.ErrTraversal, "failed to re-capture snapshot")
		}
		if !snap.Equal(fresh) {
			return errors.New(errors.ErrStaleSnapshot,
				"the files in the directory changed while you were editing them")
		}
	}

	for i, step := range plan.Steps() {
		if err := e.executeStep(step); err != nil {
			logger.Error().
				Int("step", i+1).
				Str("from", step.From).
				Str("to", step.To).
				Err(err).
				Msg("Rename halted")
			return err
		}
		logger.Info().
			Str("from", step.From).
			Str("to", step.To).
			Bool("temp", step.Temp).
			Msg("Renamed")
		if e.Recorder != nil {
			e.Recorder.Record(step)
		}
	}
	return nil
}

// executeStep re-checks both preconditions and performs one rename.
// Planning already avoided known collisions; these checks are the last
// line of defense against external mutation and stay mandatory.
func (e *Executor) executeStep(step Step) error {
	from := filepath.Join(e.Root, step.From)
	to := filepath.Join(e.Root, step.To)

	info, err := e.FS.Lstat(from)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrSourceMissing,
				"%q no longer exists", step.From).
				WithDetail("from", step.From).WithDetail("to", step.To)
		}
		return errors.Wrapf(err, errors.ErrRenameFailed, "failed to stat %q", step.From)
	}
	if !info.Mode().IsRegular() {
		return errors.Newf(errors.ErrSourceMissing,
			"%q is no longer a regular file", step.From).
			WithDetail("from", step.From).WithDetail("to", step.To)
	}

	// Renaming into a new subdirectory implies creating it.
	parent := filepath.Dir(to)
	if _, err := e.FS.Stat(parent); os.IsNotExist(err) {
		if err := e.FS.MkdirAll(parent, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrRenameFailed,
				"failed to create directory for %q", step.To)
		}
	}

	if _, err := e.FS.Stat(to); err == nil {
		return errors.Newf(errors.ErrTargetExists,
			"%q already exists", step.To).
			WithDetail("from", step.From).WithDetail("to", step.To)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrRenameFailed, "failed to stat %q", step.To)
	}

	if err := e.FS.Rename(from, to); err != nil {
		return errors.Wrapf(err, errors.ErrRenameFailed,
			"failed to rename %q to %q", step.From, step.To)
	}
	return nil
}
