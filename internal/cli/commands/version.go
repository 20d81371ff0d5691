package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kant/libmusicxml/pkg/lilypond"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display msr2ly version and the LilyPond version it targets.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "msr2ly v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Score model to LilyPond translator (LilyPond %s)\n", lilypond.DefaultVersion)
		},
	}
}
