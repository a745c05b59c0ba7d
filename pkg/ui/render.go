package ui

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/bumv/pkg/rename"
	"github.com/arthur-debert/bumv/pkg/ui/styles"
)

// RenderPlan renders the ordered step list for user review, temporary
// renames included, since those are the operations that will actually
// run.
func RenderPlan(plan *rename.Plan, format Format) string {
	if format != FormatTerminal {
		return plan.Describe()
	}

	data := pterm.TableData{{"From", "To"}}
	temps := 0
	for _, step := range plan.Steps() {
		from := styles.GetStyle("OldName").Render(step.From)
		to := styles.GetStyle("NewName").Render(step.To)
		data = append(data, []string{from, to})
		if step.Temp {
			temps++
		}
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return plan.Describe()
	}

	out := styles.GetStyle("Title").Render("Planned renames") + "\n\n" + table
	if temps > 0 {
		// Two temp steps per cycle share one temporary name
		note := fmt.Sprintf("%d temporary rename(s) break cycles; none survive a successful run", temps/2)
		out += "\n" + styles.GetStyle("Muted").Render(note)
	}
	return out
}

// RenderError renders a fatal error for stderr.
func RenderError(err error, format Format) string {
	msg := fmt.Sprintf("Error: %v", err)
	if format != FormatTerminal {
		return msg
	}
	return styles.GetStyle("Error").Render(msg)
}
