package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// ConfirmFunc presents rendered output to the user and returns whether
// they accepted. The command layer injects one of these; tests inject
// a canned answer.
type ConfirmFunc func(rendered string) (bool, error)

// Confirm returns the interactive confirmation for the given format:
// pterm's confirm prompt on a capable terminal, a plain [Y/n] line
// otherwise. Enter accepts in both.
func Confirm(format Format) ConfirmFunc {
	return func(rendered string) (bool, error) {
		fmt.Println(rendered)
		fmt.Println()

		if format == FormatTerminal {
			return pterm.DefaultInteractiveConfirm.
				WithDefaultValue(true).
				Show("Rename these files?")
		}

		fmt.Print("Rename [Y/n]? ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return false, fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "", "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// AlwaysAccept skips the prompt, for --yes runs.
func AlwaysAccept(rendered string) (bool, error) {
	fmt.Println(rendered)
	return true, nil
}
