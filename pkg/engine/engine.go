// Package engine wraps the Docker SDK with the handful of operations
// gridkit needs to manage its two session containers: forced removal,
// detached run, name-filtered listing, and image presence checks.
// Everything goes through the narrow APIClient interface so tests can
// substitute a fake (see enginetest).
package engine

import (
	"context"
	"io"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// APIClient is the subset of the Docker client the engine uses.
// *client.Client satisfies it.
type APIClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	Close() error
}

// Engine issues container and image commands against a Docker daemon.
type Engine struct {
	cli APIClient
}

// New connects to the Docker daemon from the environment and verifies the
// connection with a ping.
func New(ctx context.Context) (*Engine, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, ErrEngineUnreachable(err)
	}

	e := &Engine{cli: cli}
	if err := e.HealthCheck(ctx); err != nil {
		cli.Close()
		return nil, err
	}
	return e, nil
}

// NewWithClient wraps an existing API client. Intended for tests.
func NewWithClient(cli APIClient) *Engine {
	return &Engine{cli: cli}
}

// HealthCheck verifies the Docker daemon is reachable.
func (e *Engine) HealthCheck(ctx context.Context) error {
	if _, err := e.cli.Ping(ctx); err != nil {
		return ErrEngineUnreachable(err)
	}
	return nil
}

// Close releases Docker client resources.
func (e *Engine) Close() error {
	return e.cli.Close()
}
