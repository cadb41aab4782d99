package e2e

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkContainerNotFound checks that no container with the given name exists
func checkContainerNotFound(t *testing.T, containerName string) {
	t.Helper()
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Fatal(err)
	}
	defer dockerClient.Close()

	t.Logf("Checking %s container does not exist", containerName)
	_, err = dockerClient.ContainerInspect(context.Background(), containerName)
	assert.True(t, client.IsErrNotFound(err), "%s container should not exist: %v", containerName, err)
}

// checkHeightFile checks that the daemon wrote its tip into the mounted data
// directory and returns it
func checkHeightFile(t *testing.T, dataDir string) int64 {
	t.Helper()
	t.Logf("Checking height file in %s", dataDir)
	b, err := os.ReadFile(filepath.Join(dataDir, "height"))
	require.NoError(t, err, "height file should exist in the data directory")
	height, err := strconv.ParseInt(strings.TrimSpace(string(b)), 10, 64)
	require.NoError(t, err)
	return height
}

// waitForOutput waits until the runner has written substr
func waitForOutput(p *runnerProcess, substr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewConstantBackOff(200*time.Millisecond), ctx)
	return backoff.Retry(func() error {
		if strings.Contains(p.out.String(), substr) {
			return nil
		}
		return errors.New("output not found: " + substr)
	}, b)
}
