// Package version implements the version subcommand.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridkit-dev/gridkit/internal/cmdutil"
)

// Format renders version info for display.
func Format(version, buildDate string) string {
	if buildDate == "" {
		return fmt.Sprintf("gridkit %s", version)
	}
	return fmt.Sprintf("gridkit %s (%s)", version, buildDate)
}

// NewCmdVersion creates the version command.
func NewCmdVersion(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gridkit version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Format(f.Version, f.BuildDate))
		},
	}
}
