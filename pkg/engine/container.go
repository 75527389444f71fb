package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/go-connections/nat"
)

// CommandResult is the normalized outcome of an engine command: captured
// output text and whether the command succeeded. Failures are carried in
// the result rather than raised; the caller decides whether a failed
// result is fatal.
type CommandResult struct {
	Output string
	OK     bool
}

func okResult(output string) CommandResult {
	return CommandResult{Output: output, OK: true}
}

func failedResult(err error) CommandResult {
	return CommandResult{Output: err.Error()}
}

// PortMapping maps a host port to a container port (TCP).
type PortMapping struct {
	HostPort      int
	ContainerPort int
}

// Mount binds a host path into the container.
type Mount struct {
	HostPath      string
	ContainerPath string
	ReadOnly      bool
}

func (m Mount) bind() string {
	if m.ReadOnly {
		return fmt.Sprintf("%s:%s:ro", m.HostPath, m.ContainerPath)
	}
	return fmt.Sprintf("%s:%s", m.HostPath, m.ContainerPath)
}

// RunOptions describes a single detached container run.
type RunOptions struct {
	Name   string
	Image  string
	Ports  []PortMapping
	Mounts []Mount
	Links  []string // names of containers to link, linked under their own name
	Args   []string // trailing arguments passed to the image entrypoint

	// Optional resource limits. Zero means unlimited.
	Memory   int64 // bytes
	NanoCPUs int64
}

// RemoveForce issues a forced removal of the container with the given name.
// Absence of such a container is not an error: the failure text is captured
// in the result but never raised.
func (e *Engine) RemoveForce(ctx context.Context, name string) CommandResult {
	err := e.cli.ContainerRemove(ctx, name, container.RemoveOptions{Force: true})
	if err != nil {
		return failedResult(err)
	}
	return okResult(name)
}

// RunDetached creates and starts a container with the supplied options,
// using the name as its sole identity. A failure is returned as a failed
// result; the caller applies its terminating-error policy.
func (e *Engine) RunDetached(ctx context.Context, opts RunOptions) CommandResult {
	exposed := nat.PortSet{}
	bindings := nat.PortMap{}
	for _, p := range opts.Ports {
		port, err := nat.NewPort("tcp", strconv.Itoa(p.ContainerPort))
		if err != nil {
			return failedResult(err)
		}
		exposed[port] = struct{}{}
		bindings[port] = []nat.PortBinding{{HostPort: strconv.Itoa(p.HostPort)}}
	}

	binds := make([]string, 0, len(opts.Mounts))
	for _, m := range opts.Mounts {
		binds = append(binds, m.bind())
	}

	links := make([]string, 0, len(opts.Links))
	for _, l := range opts.Links {
		links = append(links, fmt.Sprintf("%s:%s", l, l))
	}

	cfg := &container.Config{
		Image:        opts.Image,
		Cmd:          opts.Args,
		ExposedPorts: exposed,
	}
	hostCfg := &container.HostConfig{
		PortBindings: bindings,
		Binds:        binds,
		Links:        links,
		Resources: container.Resources{
			Memory:   opts.Memory,
			NanoCPUs: opts.NanoCPUs,
		},
	}

	resp, err := e.cli.ContainerCreate(ctx, cfg, hostCfg, nil, nil, opts.Name)
	if err != nil {
		return failedResult(err)
	}
	if err := e.cli.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return failedResult(err)
	}
	return okResult(resp.ID)
}

// IsRunning reports whether a running container with exactly the given name
// exists. The Docker name filter matches substrings, so results are checked
// for an exact match (container names carry a leading slash).
func (e *Engine) IsRunning(ctx context.Context, name string) (bool, error) {
	containers, err := e.cli.ContainerList(ctx, container.ListOptions{
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return false, err
	}
	for _, c := range containers {
		for _, n := range c.Names {
			if n == "/"+name || n == name {
				return true, nil
			}
		}
	}
	return false, nil
}
