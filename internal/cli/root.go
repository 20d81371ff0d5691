// Package cli provides the command-line interface for msr2ly.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kant/libmusicxml/internal/cli/commands"
	"github.com/kant/libmusicxml/internal/cli/config"
	"github.com/kant/libmusicxml/internal/cli/output"
	"github.com/kant/libmusicxml/pkg/lilypond"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "msr2ly",
		Short: "msr2ly - score model to LilyPond translator",
		Long: `msr2ly translates score descriptions into LilyPond source.

A score description lists parts, staves, voices, measures and lyrics in
YAML or JSON. msr2ly builds the score model from it, validates it, and
writes the LilyPond text that engraves it.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			// Load configuration with CLI flags
			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			// Store logger in context
			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Targets LilyPond ` + lilypond.DefaultVersion + `
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./msr2ly.yaml)")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.StringP("output", "o", "", "Output format (auto|text|markdown|json)")

	// Rendering options
	pf.Bool("absolute", false, "Write absolute octaves instead of relative ones")
	pf.Bool("comments", false, "Annotate structural scopes with comments")
	pf.Bool("no-lyrics", false, "Omit lyrics")
	pf.Bool("numeric-time", false, "Use numeric time signatures")
	pf.Bool("stems", false, "Write explicit stem directions")
	pf.Bool("line-numbers", false, "Annotate notes with their input line")
	pf.Int("max-tokens-per-line", 0, "Music tokens per output line (0 for default)")
	pf.Int("max-lyrics-per-line", 0, "Syllables per output line (0 for default)")
	pf.Bool("no-auto-beaming", false, "Disable automatic beaming")
	pf.String("language", "", "Pitch-name language (nederlands|english)")
	pf.Bool("midi", false, "Add a MIDI block to the score")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for language flag
	_ = rootCmd.RegisterFlagCompletionFunc("language", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return lilypond.Languages(), cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for msr2ly.

To load completions:

Bash:
  $ source <(msr2ly completion bash)

Zsh:
  $ msr2ly completion zsh > "${fpath[1]}/_msr2ly"

Fish:
  $ msr2ly completion fish | source

PowerShell:
  PS> msr2ly completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
