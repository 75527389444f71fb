// Package enginetest provides a test double for engine.APIClient.
package enginetest

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// FakeAPIClient implements engine.APIClient using the function-field
// pattern: each method delegates to its Fn field when set and records the
// call, and panics with "not implemented" otherwise, so unexpected engine
// traffic fails loudly in tests.
type FakeAPIClient struct {
	// mu protects Calls from concurrent access.
	mu sync.Mutex

	// Calls records the method names invoked on this fake, in order.
	Calls []string

	PingFn            func(ctx context.Context) (types.Ping, error)
	ContainerCreateFn func(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStartFn  func(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerRemoveFn func(ctx context.Context, containerID string, options container.RemoveOptions) error
	ContainerListFn   func(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ImageListFn       func(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePullFn       func(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	CloseFn           func() error
}

func (f *FakeAPIClient) record(method string) {
	f.mu.Lock()
	f.Calls = append(f.Calls, method)
	f.mu.Unlock()
}

func notImplemented(method string) {
	panic(fmt.Sprintf("not implemented: %s (set %sFn on FakeAPIClient)", method, method))
}

// Reset clears the Calls log.
func (f *FakeAPIClient) Reset() {
	f.mu.Lock()
	f.Calls = nil
	f.mu.Unlock()
}

// CallCount returns how many times the named method was invoked.
func (f *FakeAPIClient) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (f *FakeAPIClient) Ping(ctx context.Context) (types.Ping, error) {
	if f.PingFn == nil {
		notImplemented("Ping")
	}
	f.record("Ping")
	return f.PingFn(ctx)
}

func (f *FakeAPIClient) ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error) {
	if f.ContainerCreateFn == nil {
		notImplemented("ContainerCreate")
	}
	f.record("ContainerCreate")
	return f.ContainerCreateFn(ctx, config, hostConfig, networkingConfig, platform, containerName)
}

func (f *FakeAPIClient) ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error {
	if f.ContainerStartFn == nil {
		notImplemented("ContainerStart")
	}
	f.record("ContainerStart")
	return f.ContainerStartFn(ctx, containerID, options)
}

func (f *FakeAPIClient) ContainerRemove(ctx context.Context, containerID string, options container.RemoveOptions) error {
	if f.ContainerRemoveFn == nil {
		notImplemented("ContainerRemove")
	}
	f.record("ContainerRemove")
	return f.ContainerRemoveFn(ctx, containerID, options)
}

func (f *FakeAPIClient) ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error) {
	if f.ContainerListFn == nil {
		notImplemented("ContainerList")
	}
	f.record("ContainerList")
	return f.ContainerListFn(ctx, options)
}

func (f *FakeAPIClient) ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error) {
	if f.ImageListFn == nil {
		notImplemented("ImageList")
	}
	f.record("ImageList")
	return f.ImageListFn(ctx, options)
}

func (f *FakeAPIClient) ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error) {
	if f.ImagePullFn == nil {
		notImplemented("ImagePull")
	}
	f.record("ImagePull")
	return f.ImagePullFn(ctx, refStr, options)
}

func (f *FakeAPIClient) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	f.record("Close")
	return f.CloseFn()
}

// --- Fixtures ---

// ContainerFixture returns a container list entry with the Docker-style
// leading slash on its name.
func ContainerFixture(name, image string) types.Container {
	return types.Container{
		ID:    "cid-" + name,
		Names: []string{"/" + name},
		Image: image,
		State: "running",
	}
}

// ImageFixture returns an image list entry tagged with the given reference.
func ImageFixture(ref string) image.Summary {
	return image.Summary{
		ID:       "sha256:" + strings.Repeat("0", 64),
		RepoTags: []string{ref},
	}
}

// PullStream returns a ReadCloser standing in for a pull progress stream.
func PullStream() io.ReadCloser {
	return io.NopCloser(strings.NewReader(`{"status":"Pull complete"}`))
}
