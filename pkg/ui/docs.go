package ui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed manual.md
var manual string

// RenderManual renders the embedded manual, richly on a terminal and
// as plain markdown when piped.
func RenderManual(format Format) (string, error) {
	if format != FormatTerminal {
		return manual, nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return manual, nil
	}

	out, err := renderer.Render(manual)
	if err != nil {
		return manual, nil
	}
	return out, nil
}
