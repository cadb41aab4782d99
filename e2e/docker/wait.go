package docker

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/docker/docker/client"
)

func WaitUntilRunning(containerName string, timeout time.Duration) error {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return err
	}
	defer dockerClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	notRunningErr := errors.New("container is not running")
	return backoff.Retry(func() error {
		response, err := dockerClient.ContainerInspect(ctx, containerName)
		if client.IsErrNotFound(err) {
			// The runner may still be pulling or creating.
			return notRunningErr
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		if response.State.Running {
			return nil
		}
		return notRunningErr
	}, b)
}

// WaitUntilRemoved waits until no container with the given name exists.
func WaitUntilRemoved(containerName string, timeout time.Duration) error {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return err
	}
	defer dockerClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	return backoff.Retry(func() error {
		_, err := dockerClient.ContainerInspect(ctx, containerName)
		if client.IsErrNotFound(err) {
			return nil
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return errors.New("container still exists")
	}, b)
}
