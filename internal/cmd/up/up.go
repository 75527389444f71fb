// Package up implements the prepare lifecycle hook as a CLI command.
package up

import (
	"github.com/spf13/cobra"

	"github.com/gridkit-dev/gridkit/internal/cmdutil"
	"github.com/gridkit-dev/gridkit/internal/lifecycle"
)

// NewCmdUp creates the up command. It runs the full prepare sequence and
// exits non-zero only on a policy-gated fatal failure, aborting the
// surrounding test session.
func NewCmdUp(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Start the gateway and UI containers for a test session",
		Long: `Start the browser-automation gateway and its companion UI.

Any leftover containers from a previous session are removed first, the
browser configuration file is verified, and missing images are pulled
unless skip_pull is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := f.Config()
			if err != nil {
				return err
			}
			eng, err := f.Engine(ctx)
			if err != nil {
				return err
			}
			return lifecycle.New(cfg, eng).Prepare(ctx)
		},
	}
}
