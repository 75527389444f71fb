package lifecycle

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/gridkit-dev/gridkit/internal/logger"
)

// PollPolicy bounds the readiness wait: a fixed number of attempts with a
// constant interval between them.
type PollPolicy struct {
	Attempts uint64
	Interval time.Duration
}

// DefaultPollPolicy matches the engine's typical container start latency.
var DefaultPollPolicy = PollPolicy{Attempts: 10, Interval: time.Second}

var errNotRunning = errors.New("container not yet running")

// awaitRunning polls until the named container reports running or the
// policy is exhausted. Readiness is best-effort: exhaustion is logged and
// the caller proceeds regardless, so a slow-starting container never
// aborts the session on its own.
func (c *Controller) awaitRunning(ctx context.Context, name string) {
	attempts := c.poll.Attempts
	if attempts == 0 {
		attempts = 1
	}

	check := func() error {
		running, err := c.runner.IsRunning(ctx, name)
		if err != nil {
			logger.Debug().Err(err).Str("container", name).Msg("readiness check errored")
			return err
		}
		if !running {
			return errNotRunning
		}
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.poll.Interval), attempts-1)
	if err := backoff.Retry(check, bo); err != nil {
		logger.Debug().Str("container", name).Msg("gave up waiting for container, proceeding")
		return
	}
	logger.Info().Str("container", name).Msg("container running")
}
