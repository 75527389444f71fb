// Package lifecycle sequences the container work around a test session:
// teardown-before-start, configuration verification, conditional image
// resolution, ordered start of the gateway and UI containers, and full
// teardown on completion.
package lifecycle

import (
	"context"
	"errors"
	"os"

	"github.com/gridkit-dev/gridkit/internal/config"
	"github.com/gridkit-dev/gridkit/internal/images"
	"github.com/gridkit-dev/gridkit/internal/logger"
	"github.com/gridkit-dev/gridkit/pkg/engine"

	"github.com/gridkit-dev/gridkit/internal/browsers"
)

// Runner is the container surface the controller drives.
type Runner interface {
	RemoveForce(ctx context.Context, name string) engine.CommandResult
	RunDetached(ctx context.Context, opts engine.RunOptions) engine.CommandResult
	IsRunning(ctx context.Context, name string) (bool, error)
}

// resolver is the image surface the controller drives.
type resolver interface {
	EnsurePresent(ctx context.Context, ref string)
	EnsureAll(ctx context.Context, refs []string)
}

// Controller owns the prepare and completion sequences for one session.
// It holds no mutable state beyond its immutable configuration; every
// operation recomputes container identity from the configured names.
type Controller struct {
	cfg    *config.Config
	runner Runner
	images resolver
	poll   PollPolicy
}

// New creates a controller backed by a live engine.
func New(cfg *config.Config, eng *engine.Engine) *Controller {
	return &Controller{
		cfg:    cfg,
		runner: eng,
		images: images.NewResolver(eng, images.AssumePresent),
		poll:   DefaultPollPolicy,
	}
}

// step is one side-effecting stage of a sequence. Steps run in order and
// a step only returns an error when it must abort the whole session;
// everything else is absorbed into logs so later steps always run.
type step struct {
	name string
	run  func(ctx context.Context) error
}

func (c *Controller) runSteps(ctx context.Context, steps []step) error {
	for _, s := range steps {
		logger.Debug().Str("step", s.name).Msg("lifecycle step")
		if err := s.run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Prepare brings up the session containers. Called once before any test
// executes. Strictly sequential; the only errors it returns are the
// policy-gated fatal ones (missing browsers file, gateway start failure).
func (c *Controller) Prepare(ctx context.Context) error {
	return c.runSteps(ctx, []step{
		{"stop gateway", c.stopContainer(c.cfg.Gateway.Name)},
		{"stop ui", c.stopContainer(c.cfg.UI.Name)},
		{"verify browsers file", c.verifyBrowsersFile},
		{"resolve images", c.resolveImages},
		{"start gateway", c.startGateway},
		{"await gateway", c.awaitGateway},
		{"start ui", c.startUI},
	})
}

// Complete tears the session containers down. Called once after all tests
// finish. Stop failures are logged, never raised.
func (c *Controller) Complete(ctx context.Context) error {
	return c.runSteps(ctx, []step{
		{"stop ui", c.stopContainer(c.cfg.UI.Name)},
		{"stop gateway", c.stopContainer(c.cfg.Gateway.Name)},
	})
}

// stopContainer returns a step function that force-removes the named
// container. A container that does not exist is a successful no-op.
func (c *Controller) stopContainer(name string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		res := c.runner.RemoveForce(ctx, name)
		if !res.OK {
			logger.Debug().Str("container", name).Str("output", res.Output).Msg("container not removed")
		} else {
			logger.Info().Str("container", name).Msg("container removed")
		}
		return nil
	}
}

func (c *Controller) verifyBrowsersFile(_ context.Context) error {
	if _, err := os.Stat(c.cfg.BrowsersFile); err != nil {
		logger.Error().Str("path", c.cfg.BrowsersFile).Msg("browser configuration file does not exist")
		if c.cfg.FailFast {
			return engine.ErrBrowsersFileMissing(c.cfg.BrowsersFile)
		}
	}
	return nil
}

func (c *Controller) resolveImages(ctx context.Context) error {
	if c.cfg.SkipPull {
		logger.Debug().Msg("image pulling skipped by configuration")
		return nil
	}

	cfg, err := browsers.Load(c.cfg.BrowsersFile)
	if err != nil {
		// Image discovery fails softly; a genuinely missing image surfaces
		// at container start, where the fail-fast policy applies.
		logger.Warn().Err(err).Msg("skipping browser image resolution")
	} else {
		c.images.EnsureAll(ctx, cfg.ImageRefs())
	}

	c.images.EnsurePresent(ctx, c.cfg.UIImage())
	c.images.EnsurePresent(ctx, c.cfg.GatewayImage())
	return nil
}

func (c *Controller) startGateway(ctx context.Context) error {
	opts, err := c.gatewayRunOptions()
	if err != nil {
		logger.Error().Err(err).Msg("cannot assemble gateway run options")
		if c.cfg.FailFast {
			return engine.ErrContainerStartFailed(c.cfg.Gateway.Name, err)
		}
		return nil
	}

	res := c.runner.RunDetached(ctx, opts)
	if !res.OK {
		logger.Error().Str("container", opts.Name).Str("output", res.Output).Msg("gateway failed to start")
		if c.cfg.FailFast {
			return engine.ErrContainerStartFailed(opts.Name, errors.New(res.Output))
		}
		return nil
	}
	logger.Info().Str("container", opts.Name).Str("id", res.Output).Msg("gateway started")
	return nil
}

func (c *Controller) gatewayRunOptions() (engine.RunOptions, error) {
	mountDir, err := c.cfg.MountDir()
	if err != nil {
		return engine.RunOptions{}, err
	}
	memory, err := c.cfg.GatewayMemoryBytes()
	if err != nil {
		return engine.RunOptions{}, err
	}
	return engine.RunOptions{
		Name:  c.cfg.Gateway.Name,
		Image: c.cfg.GatewayImage(),
		Ports: []engine.PortMapping{
			{HostPort: c.cfg.Gateway.Port, ContainerPort: config.DefaultGatewayPort},
		},
		Mounts: []engine.Mount{
			{HostPath: mountDir, ContainerPath: config.GatewayConfigDir, ReadOnly: true},
			{HostPath: c.cfg.EngineSocket, ContainerPath: c.cfg.EngineSocket},
		},
		Args:     c.cfg.Gateway.Args,
		Memory:   memory,
		NanoCPUs: c.cfg.GatewayNanoCPUs(),
	}, nil
}

func (c *Controller) awaitGateway(ctx context.Context) error {
	c.awaitRunning(ctx, c.cfg.Gateway.Name)
	return nil
}

// startUI starts the dashboard linked to the gateway by name. UI failures
// are never fatal: the gateway is the session's working surface, the
// dashboard is a convenience.
func (c *Controller) startUI(ctx context.Context) error {
	res := c.runner.RunDetached(ctx, engine.RunOptions{
		Name:  c.cfg.UI.Name,
		Image: c.cfg.UIImage(),
		Ports: []engine.PortMapping{
			{HostPort: c.cfg.UI.Port, ContainerPort: config.DefaultUIPort},
		},
		Links: []string{c.cfg.Gateway.Name},
		Args:  c.cfg.UI.Args,
	})
	if !res.OK {
		logger.Warn().Str("container", c.cfg.UI.Name).Str("output", res.Output).Msg("ui failed to start")
		return nil
	}
	logger.Info().Str("container", c.cfg.UI.Name).Str("id", res.Output).Msg("ui started")
	return nil
}
