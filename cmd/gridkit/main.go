package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gridkit-dev/gridkit/internal/cmd/root"
	"github.com/gridkit-dev/gridkit/internal/cmdutil"
	"github.com/gridkit-dev/gridkit/internal/logger"
	"github.com/gridkit-dev/gridkit/pkg/engine"
)

// Set at build time via ldflags.
var (
	version   = "dev"
	buildDate = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridkit:", err)
		return 1
	}

	f := cmdutil.NewFactory(workDir, version, buildDate)
	defer func() {
		_ = f.CloseEngine()
		_ = logger.CloseFileWriter()
	}()

	cmd := root.NewCmdRoot(f)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var engineErr *engine.EngineError
		if errors.As(err, &engineErr) {
			fmt.Fprint(os.Stderr, engineErr.FormatUserError())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return 1
	}
	return 0
}
