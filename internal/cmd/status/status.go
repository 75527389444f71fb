// Package status reports whether the session containers are running.
package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridkit-dev/gridkit/internal/cmdutil"
)

// NewCmdStatus creates the status command.
func NewCmdStatus(f *cmdutil.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the gateway and UI containers are running",
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

			for _, name := range []string{cfg.Gateway.Name, cfg.UI.Name} {
				running, err := eng.IsRunning(ctx, name)
				if err != nil {
					return err
				}
				state := "stopped"
				if running {
					state = "running"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, state)
			}
			return nil
		},
	}
}
