package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
	log "github.com/sirupsen/logrus"
	funk "github.com/thoas/go-funk"
)

// API is the subset of the Docker Engine API used by Client. *client.Client
// implements it.
type API interface {
	Ping(ctx context.Context) (types.Ping, error)
	ImagePull(ctx context.Context, ref string, options types.ImagePullOptions) (io.ReadCloser, error)
	ImageInspectWithRaw(ctx context.Context, imageID string) (types.ImageInspect, []byte, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *specs.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options types.ContainerStartOptions) error
	ContainerAttach(ctx context.Context, container string, options types.ContainerAttachOptions) (types.HijackedResponse, error)
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerList(ctx context.Context, options types.ContainerListOptions) ([]types.Container, error)
	ContainerStop(ctx context.Context, containerID string, options container.StopOptions) error
	ContainerRemove(ctx context.Context, containerID string, options types.ContainerRemoveOptions) error
	ContainerExecCreate(ctx context.Context, container string, config types.ExecConfig) (types.IDResponse, error)
	ContainerExecAttach(ctx context.Context, execID string, config types.ExecStartCheck) (types.HijackedResponse, error)
	ContainerExecInspect(ctx context.Context, execID string) (types.ContainerExecInspect, error)
	Close() error
}

// Client is a thin wrapper around the Docker Engine API. Every method is a
// single pass-through call; failures are wrapped with ErrEngineOperationFailed.
type Client struct {
	api API
}

// NewClient wraps an already connected API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// Connect creates a client from the environment (DOCKER_HOST and friends) and
// pings the daemon. Any failure is reported as ErrEngineUnavailable.
func Connect(ctx context.Context, opts ...client.Opt) (*Client, error) {
	opts = append([]client.Opt{client.FromEnv, client.WithAPIVersionNegotiation()}, opts...)
	dockerClient, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEngineUnavailable, err)
	}
	c := NewClient(dockerClient)
	if err := c.Ping(ctx); err != nil {
		dockerClient.Close()
		return nil, err
	}
	return c, nil
}

// Ping checks that the engine answers.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s", ErrEngineUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.api.Close()
}

// Pull pulls an image and waits until the pull finishes. Progress messages are
// written to out. Errors reported inside the progress stream fail the pull.
func (c *Client) Pull(ctx context.Context, image string, out io.Writer) error {
	log.Debugf("Pulling image: %s", image)
	body, err := c.api.ImagePull(ctx, image, types.ImagePullOptions{})
	if err != nil {
		return opError("pulling image", image, err, ErrImageNotFound)
	}
	defer body.Close()
	if out == nil {
		out = io.Discard
	}
	if err := jsonmessage.DisplayJSONMessagesStream(body, out, 0, false, nil); err != nil {
		return opError("pulling image", image, err, ErrImageNotFound)
	}
	return nil
}

// ImageExists reports whether the image is present in the local image store.
func (c *Client) ImageExists(ctx context.Context, image string) (bool, error) {
	if _, _, err := c.api.ImageInspectWithRaw(ctx, image); err != nil {
		if client.IsErrNotFound(err) {
			return false, nil
		}
		return false, opError("inspecting image", image, err, ErrImageNotFound)
	}
	return true, nil
}

// Create creates a container with the given name and returns its ID.
func (c *Client) Create(ctx context.Context, name string, config *container.Config, hostConfig *container.HostConfig) (string, error) {
	resp, err := c.api.ContainerCreate(ctx, config, hostConfig, nil, nil, name)
	if err != nil {
		return "", opError("creating container", name, err, ErrImageNotFound)
	}
	for _, w := range resp.Warnings {
		log.WithField("container", name).Warn(w)
	}
	return resp.ID, nil
}

// Start starts a created container.
func (c *Client) Start(ctx context.Context, containerName string) error {
	if err := c.api.ContainerStart(ctx, containerName, types.ContainerStartOptions{}); err != nil {
		return opError("starting container", containerName, err, ErrContainerNotFound)
	}
	return nil
}

// Attach opens a streaming attach session to the container's stdout and
// stderr. The caller owns the returned response and must close it.
func (c *Client) Attach(ctx context.Context, containerName string) (types.HijackedResponse, error) {
	resp, err := c.api.ContainerAttach(ctx, containerName, types.ContainerAttachOptions{
		Stream: true,
		Stdout: true,
		Stderr: true,
	})
	if err != nil {
		return types.HijackedResponse{}, opError("attaching to container", containerName, err, ErrContainerNotFound)
	}
	return resp, nil
}

// Inspect returns the engine's view of the container.
func (c *Client) Inspect(ctx context.Context, containerName string) (types.ContainerJSON, error) {
	ctInfo, err := c.api.ContainerInspect(ctx, containerName)
	if err != nil {
		return types.ContainerJSON{}, opError("inspecting container", containerName, err, ErrContainerNotFound)
	}
	return ctInfo, nil
}

// ContainerID returns the ID of the container with exactly the given name,
// running or not.
func (c *Client) ContainerID(ctx context.Context, containerName string) (string, error) {
	containers, err := c.api.ContainerList(ctx, types.ContainerListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", containerName)),
	})
	if err != nil {
		return "", opError("listing containers", containerName, err, ErrContainerNotFound)
	}
	for _, ct := range containers {
		if funk.ContainsString(ct.Names, "/"+containerName) {
			return ct.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrContainerNotFound, containerName)
}

// Stop stops a container. A nil timeout leaves the grace period to the
// engine's own policy.
func (c *Client) Stop(ctx context.Context, containerName string, timeout *time.Duration) error {
	options := container.StopOptions{}
	if timeout != nil {
		seconds := int(timeout.Seconds())
		options.Timeout = &seconds
	}
	if err := c.api.ContainerStop(ctx, containerName, options); err != nil {
		return opError("stopping container", containerName, err, ErrContainerNotFound)
	}
	return nil
}

// Remove removes a container. It does not check whether the container exists
// first, so removing an absent container fails.
func (c *Client) Remove(ctx context.Context, containerName string, force bool) error {
	if err := c.api.ContainerRemove(ctx, containerName, types.ContainerRemoveOptions{Force: force}); err != nil {
		return opError("removing container", containerName, err, ErrContainerNotFound)
	}
	return nil
}

// ExecCreate creates an exec session for cmd with stdout and stderr attached.
func (c *Client) ExecCreate(ctx context.Context, containerName string, cmd []string) (string, error) {
	resp, err := c.api.ContainerExecCreate(ctx, containerName, types.ExecConfig{
		AttachStdout: true,
		AttachStderr: true,
		Cmd:          cmd,
	})
	if err != nil {
		return "", opError("creating exec", containerName, err, ErrContainerNotFound)
	}
	return resp.ID, nil
}

// ExecAttach starts an exec session and returns its attached output.
func (c *Client) ExecAttach(ctx context.Context, execID string) (types.HijackedResponse, error) {
	resp, err := c.api.ContainerExecAttach(ctx, execID, types.ExecStartCheck{})
	if err != nil {
		return types.HijackedResponse{}, opError("attaching exec", execID, err, ErrContainerNotFound)
	}
	return resp, nil
}

// ExecInspect returns the state of an exec session, including its exit code.
func (c *Client) ExecInspect(ctx context.Context, execID string) (types.ContainerExecInspect, error) {
	info, err := c.api.ContainerExecInspect(ctx, execID)
	if err != nil {
		return types.ContainerExecInspect{}, opError("inspecting exec", execID, err, ErrContainerNotFound)
	}
	return info, nil
}

func opError(op, target string, err, notFound error) error {
	if client.IsErrNotFound(err) {
		return fmt.Errorf("%w: %w %s: %s", ErrEngineOperationFailed, notFound, target, err)
	}
	return fmt.Errorf("%w: %s %s: %s", ErrEngineOperationFailed, op, target, err)
}
