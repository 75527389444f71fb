package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit-dev/gridkit/pkg/engine"
	"github.com/gridkit-dev/gridkit/pkg/engine/enginetest"
)

func TestRemoveForce(t *testing.T) {
	t.Run("existing container", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerRemoveFn: func(_ context.Context, id string, opts container.RemoveOptions) error {
				assert.Equal(t, "selenoid", id)
				assert.True(t, opts.Force)
				return nil
			},
		}
		eng := engine.NewWithClient(fake)

		res := eng.RemoveForce(context.Background(), "selenoid")

		assert.True(t, res.OK)
		assert.Equal(t, []string{"ContainerRemove"}, fake.Calls)
	})

	t.Run("absent container is a no-op, not a failure to raise", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerRemoveFn: func(_ context.Context, _ string, _ container.RemoveOptions) error {
				return errors.New("Error response from daemon: No such container: selenoid")
			},
		}
		eng := engine.NewWithClient(fake)

		res := eng.RemoveForce(context.Background(), "selenoid")

		assert.False(t, res.OK)
		assert.Contains(t, res.Output, "No such container")
	})
}

func TestRunDetached(t *testing.T) {
	opts := engine.RunOptions{
		Name:  "selenoid",
		Image: "aerokube/selenoid:latest-release",
		Ports: []engine.PortMapping{{HostPort: 4445, ContainerPort: 4444}},
		Mounts: []engine.Mount{
			{HostPath: "/home/ci/config", ContainerPath: "/etc/selenoid", ReadOnly: true},
			{HostPath: "/var/run/docker.sock", ContainerPath: "/var/run/docker.sock"},
		},
		Links: []string{"other"},
		Args:  []string{"-limit", "4"},
	}

	t.Run("create and start in order", func(t *testing.T) {
		var gotCfg *container.Config
		var gotHost *container.HostConfig
		fake := &enginetest.FakeAPIClient{
			ContainerCreateFn: func(_ context.Context, cfg *container.Config, host *container.HostConfig, _ *network.NetworkingConfig, _ *ocispec.Platform, name string) (container.CreateResponse, error) {
				require.Equal(t, "selenoid", name)
				gotCfg, gotHost = cfg, host
				return container.CreateResponse{ID: "cid-1"}, nil
			},
			ContainerStartFn: func(_ context.Context, id string, _ container.StartOptions) error {
				assert.Equal(t, "cid-1", id)
				return nil
			},
		}
		eng := engine.NewWithClient(fake)

		res := eng.RunDetached(context.Background(), opts)

		require.True(t, res.OK)
		assert.Equal(t, "cid-1", res.Output)
		assert.Equal(t, []string{"ContainerCreate", "ContainerStart"}, fake.Calls)

		assert.Equal(t, "aerokube/selenoid:latest-release", gotCfg.Image)
		assert.Equal(t, []string{"-limit", "4"}, []string(gotCfg.Cmd))
		bindings, ok := gotHost.PortBindings["4444/tcp"]
		require.True(t, ok)
		require.Len(t, bindings, 1)
		assert.Equal(t, "4445", bindings[0].HostPort)
		assert.Equal(t, []string{
			"/home/ci/config:/etc/selenoid:ro",
			"/var/run/docker.sock:/var/run/docker.sock",
		}, gotHost.Binds)
		assert.Equal(t, []string{"other:other"}, gotHost.Links)
	})

	t.Run("create failure is a failed result, start never issued", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerCreateFn: func(_ context.Context, _ *container.Config, _ *container.HostConfig, _ *network.NetworkingConfig, _ *ocispec.Platform, _ string) (container.CreateResponse, error) {
				return container.CreateResponse{}, errors.New("port is already allocated")
			},
		}
		eng := engine.NewWithClient(fake)

		res := eng.RunDetached(context.Background(), opts)

		assert.False(t, res.OK)
		assert.Contains(t, res.Output, "already allocated")
		assert.Equal(t, []string{"ContainerCreate"}, fake.Calls)
	})

	t.Run("start failure is a failed result", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerCreateFn: func(_ context.Context, _ *container.Config, _ *container.HostConfig, _ *network.NetworkingConfig, _ *ocispec.Platform, _ string) (container.CreateResponse, error) {
				return container.CreateResponse{ID: "cid-1"}, nil
			},
			ContainerStartFn: func(_ context.Context, _ string, _ container.StartOptions) error {
				return errors.New("oci runtime error")
			},
		}
		eng := engine.NewWithClient(fake)

		res := eng.RunDetached(context.Background(), opts)

		assert.False(t, res.OK)
		assert.Contains(t, res.Output, "oci runtime error")
	})
}

func TestIsRunning(t *testing.T) {
	t.Run("exact name match with leading slash", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerListFn: func(_ context.Context, opts container.ListOptions) ([]types.Container, error) {
				assert.Equal(t, []string{"selenoid"}, opts.Filters.Get("name"))
				return []types.Container{enginetest.ContainerFixture("selenoid", "aerokube/selenoid:latest-release")}, nil
			},
		}
		eng := engine.NewWithClient(fake)

		running, err := eng.IsRunning(context.Background(), "selenoid")
		require.NoError(t, err)
		assert.True(t, running)
	})

	t.Run("substring matches from the engine filter are rejected", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerListFn: func(_ context.Context, _ container.ListOptions) ([]types.Container, error) {
				return []types.Container{enginetest.ContainerFixture("selenoid-ui", "aerokube/selenoid-ui:latest-release")}, nil
			},
		}
		eng := engine.NewWithClient(fake)

		running, err := eng.IsRunning(context.Background(), "selenoid")
		require.NoError(t, err)
		assert.False(t, running)
	})

	t.Run("list error propagates", func(t *testing.T) {
		fake := &enginetest.FakeAPIClient{
			ContainerListFn: func(_ context.Context, _ container.ListOptions) ([]types.Container, error) {
				return nil, errors.New("engine unreachable")
			},
		}
		eng := engine.NewWithClient(fake)

		running, err := eng.IsRunning(context.Background(), "selenoid")
		require.Error(t, err)
		assert.False(t, running)
	})
}
