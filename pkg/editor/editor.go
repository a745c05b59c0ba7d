package editor

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/bumv/pkg/errors"
	"github.com/arthur-debert/bumv/pkg/logging"
)

// vsCode is the fallback editor command when nothing else is configured.
func vsCode() string {
	if runtime.GOOS == "windows" {
		return "code.cmd"
	}
	return "code"
}

// EditFunc takes the rendered file list and returns it after the user
// edited it. The command layer injects Editor.Edit here; tests inject
// a plain function.
type EditFunc func(content string) (string, error)

// Editor launches an external editor on a temporary file.
type Editor struct {
	// Command is the editor executable. Resolved by Resolve.
	Command string
}

// Resolve picks the editor command: an explicit command wins, then
// $EDITOR, then VS Code.
func Resolve(command string, useVSCode bool) Editor {
	if useVSCode {
		return Editor{Command: vsCode()}
	}
	if command != "" {
		return Editor{Command: command}
	}
	if fromEnv := os.Getenv("EDITOR"); fromEnv != "" {
		return Editor{Command: fromEnv}
	}
	return Editor{Command: vsCode()}
}

// Render turns a path list into the text the user edits, one per line.
func Render(paths []string) string {
	return strings.Join(paths, "\n")
}

// Parse re-reads the edited text into a path list. Empty lines are
// dropped, which tolerates the usual blank trailing line; a removed
// real line is caught by the validator's line-count check.
func Parse(content string) []string {
	var paths []string
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

// Edit writes content to a temporary file, blocks on the editor, and
// returns the file contents on a clean exit. The temporary file is
// always removed.
func (e Editor) Edit(content string) (string, error) {
	logger := logging.GetLogger("editor")

	tmp, err := os.CreateTemp("", "bumv-*.txt")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrEditor, "failed to create temp file")
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", errors.Wrap(err, errors.ErrEditor, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrEditor, "failed to close temp file")
	}

	args := []string{tmpPath}
	// VS Code returns immediately unless told to wait for the tab
	if e.Command == vsCode() {
		args = append([]string{"--wait"}, args...)
	}

	logger.Debug().Str("editor", e.Command).Str("file", tmpPath).Msg("Launching editor")

	cmd := exec.Command(e.Command, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrEditor, "editor %s exited with an error", e.Command)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrEditor, "failed to read edited file")
	}
	return string(edited), nil
}
