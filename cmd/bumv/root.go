package bumv

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bumv/internal/version"
	"github.com/arthur-debert/bumv/pkg/commands/bulkrename"
	"github.com/arthur-debert/bumv/pkg/config"
	"github.com/arthur-debert/bumv/pkg/logging"
	"github.com/arthur-debert/bumv/pkg/ui"
	"github.com/arthur-debert/bumv/pkg/ui/styles"
)

// NewRootCmd builds the bumv command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		recursive  bool
		noIgnore   bool
		noLog      bool
		useVSCode  bool
		editorFlag string
		dryRun     bool
		yes        bool
	)

	rootCmd := &cobra.Command{
		Use:   "bumv [path]",
		Short: "A bulk file renaming utility that uses your editor as its UI",
		Long: `bumv (bulk move) renames many files at once: it opens the file list in
your editor, you rewrite the names you want changed, save, close the
editor, and confirm the resulting plan.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			// Flags win over config file and environment
			flags := cmd.Flags()
			if flags.Changed("recursive") {
				cfg.Recursive = recursive
			}
			if flags.Changed("no-ignore") {
				cfg.RespectIgnores = !noIgnore
			}
			if flags.Changed("no-log") {
				cfg.NoLog = noLog
			}
			if flags.Changed("use-vscode") {
				cfg.UseVSCode = useVSCode
			}
			if flags.Changed("editor") {
				cfg.Editor = editorFlag
			}

			format := ui.FormatAuto.Resolve(os.Stdout)

			result, err := bulkrename.Run(bulkrename.Options{
				Root:        root,
				Config:      cfg,
				DryRun:      dryRun,
				AutoConfirm: yes,
				Format:      format,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case result.Plan == nil:
				fmt.Fprintln(out, "No files to rename.")
			case dryRun:
				fmt.Fprintln(out, ui.RenderPlan(result.Plan, format))
			case result.Declined:
				fmt.Fprintln(out, "Aborted.")
			default:
				fmt.Fprintln(out, "Files renamed successfully.")
				if result.LogPath != "" {
					fmt.Fprintln(out, styles.GetStyle("Muted").Render("Log written to "+result.LogPath))
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false,
		"Recursively rename files in subdirectories")
	rootCmd.Flags().BoolVarP(&noIgnore, "no-ignore", "n", false,
		"Do not observe ignore files and include hidden files")
	rootCmd.Flags().BoolVar(&noLog, "no-log", false,
		"Do not write a rename log file")
	rootCmd.Flags().BoolVarP(&useVSCode, "use-vscode", "c", false,
		"Use VS Code as editor")
	rootCmd.Flags().StringVar(&editorFlag, "editor", "",
		"Editor command (overrides config and $EDITOR)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Show the rename plan without executing it")
	rootCmd.Flags().BoolVar(&yes, "yes", false,
		"Skip the confirmation prompt")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(newManCmd(rootCmd))
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(docsCmd)

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bumv version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(bumv completion bash)

Zsh:
  $ bumv completion zsh > "${fpath[1]}/_bumv"

Fish:
  $ bumv completion fish | source

PowerShell:
  PS> bumv completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Generate man page",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "BUMV",
				Section: "1",
			}
			return doc.GenManTree(root, header, "/tmp")
		},
	}
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Print the default configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.GenerateTOML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the bumv manual",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := ui.RenderManual(ui.FormatAuto.Resolve(os.Stdout))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
