// Package cmdutil provides shared dependencies for CLI commands.
package cmdutil

import (
	"context"
	"sync"

	"github.com/gridkit-dev/gridkit/internal/config"
	"github.com/gridkit-dev/gridkit/pkg/engine"
)

// Factory provides shared dependencies for CLI commands. It is a small
// dependency injection container: closure fields are wired by NewFactory
// with lazy initialization, and tests substitute their own.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	// Dependency providers
	Config      func() (*config.Config, error)
	Engine      func(context.Context) (*engine.Engine, error)
	CloseEngine func() error
}

// NewFactory wires the real implementations, rooted at workDir.
func NewFactory(workDir, version, buildDate string) *Factory {
	f := &Factory{Version: version, BuildDate: buildDate}

	var (
		cfgOnce sync.Once
		cfg     *config.Config
		cfgErr  error
	)
	f.Config = func() (*config.Config, error) {
		cfgOnce.Do(func() {
			cfg, cfgErr = config.NewLoader(workDir).Load()
		})
		return cfg, cfgErr
	}

	var (
		engOnce sync.Once
		eng     *engine.Engine
		engErr  error
	)
	f.Engine = func(ctx context.Context) (*engine.Engine, error) {
		engOnce.Do(func() {
			eng, engErr = engine.New(ctx)
		})
		return eng, engErr
	}
	f.CloseEngine = func() error {
		if eng == nil {
			return nil
		}
		return eng.Close()
	}

	return f
}
