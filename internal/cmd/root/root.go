// Package root assembles the gridkit command tree.
package root

import (
	"github.com/spf13/cobra"

	"github.com/gridkit-dev/gridkit/internal/cmd/down"
	"github.com/gridkit-dev/gridkit/internal/cmd/status"
	"github.com/gridkit-dev/gridkit/internal/cmd/up"
	versioncmd "github.com/gridkit-dev/gridkit/internal/cmd/version"
	"github.com/gridkit-dev/gridkit/internal/cmdutil"
	"github.com/gridkit-dev/gridkit/internal/logger"
)

// NewCmdRoot creates the root command for the gridkit CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "gridkit",
		Short: "Manage browser-automation containers for test sessions",
		Long: `Gridkit manages the browser-automation gateway and its companion UI
as ephemeral infrastructure for an automated test run.

Quick start:
  gridkit up        # Before the test session: clean up, pull, start
  gridkit status    # Check both containers
  gridkit down      # After the session: tear everything down`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("gridkit starting")
			return nil
		},
		Version: f.Version,
	}

	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")
	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.BuildDate) + "\n")

	cmd.AddCommand(up.NewCmdUp(f))
	cmd.AddCommand(down.NewCmdDown(f))
	cmd.AddCommand(status.NewCmdStatus(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up logging, with file output when configured.
// Falls back to console-only if the configuration cannot be loaded; the
// command itself will report that error.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	cfg, err := f.Config()
	if err != nil {
		logger.Init(debug)
		return
	}
	fileCfg := logger.FileConfig{
		Enabled:    cfg.Logging.FileEnabled,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		MaxBackups: cfg.Logging.MaxBackups,
	}
	if err := logger.InitWithFile(debug, cfg.Logging.Dir, fileCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging disabled")
	}
}
