package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/bumv/cmd/bumv"
	"github.com/arthur-debert/bumv/pkg/ui"
)

func main() {
	rootCmd := bumv.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format := ui.FormatAuto.Resolve(os.Stderr)
		fmt.Fprintln(os.Stderr, ui.RenderError(err, format))
		os.Exit(1)
	}
}
