// Package down implements the completion lifecycle hook as a CLI command.
package down

import (
	"github.com/spf13/cobra"

	"github.com/gridkit-dev/gridkit/internal/cmdutil"
	"github.com/gridkit-dev/gridkit/internal/lifecycle"
)

// NewCmdDown creates the down command. Teardown is best-effort: stop
// failures are logged, never fatal.
func NewCmdDown(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Stop the gateway and UI containers",
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
			return lifecycle.New(cfg, eng).Complete(ctx)
		},
	}
}
