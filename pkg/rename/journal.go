package rename

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/types"
)

// logTimeFormat names the log file after the run that produced it.
const logTimeFormat = "20060102_150405"

// WriteLogFile records a completed run's mapping to a log file in the
// base directory, named bumv_<timestamp>.log. The log lists the
// user-facing mapping, not the temporary steps used to break cycles.
// Old names are padded into an aligned, tab-separated column.
func WriteLogFile(fsys types.FS, root string, m Mapping, now time.Time) (string, error) {
	if m.IsEmpty() {
		return "", nil
	}

	width := 0
	for _, pair := range m.Pairs {
		if len(pair.Old) > width {
			width = len(pair.Old)
		}
	}

	lines := make([]string, 0, len(m.Pairs))
	for _, pair := range m.Pairs {
		lines = append(lines, fmt.Sprintf("%-*s\t%s", width, pair.Old, pair.New))
	}

	name := fmt.Sprintf("bumv_%s.log", now.Format(logTimeFormat))
	path := filepath.Join(root, name)
	if err := fsys.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrJournal, "failed to write rename log %s", name)
	}
	return path, nil
}

// StepLog is a Recorder that keeps completed steps in order. It backs
// the log file above and is the seam where a persistent journal for a
// future undo command would plug in.
type StepLog struct {
	Completed []Step
}

// Record implements Recorder.
func (l *StepLog) Record(step Step) {
	l.Completed = append(l.Completed, step)
}
