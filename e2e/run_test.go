package e2e

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/NethermindEth/defi-runner/e2e/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Run checks that the run command starts the node with the data
// directory mounted, reports its height and removes the container on SIGINT.
func Test_Run(t *testing.T) {
	// Test context
	var (
		dataDir = filepath.Join(t.TempDir(), "defi-data")
		runner  *runnerProcess
		start   time.Time
		runErr  error
	)
	e2eTest := newE2ETestCase(t,
		func(t *testing.T, runnerPath string) error {
			return buildMockImage(t)
		},
		func(t *testing.T, runnerPath string) {
			start = time.Now()
			var err error
			runner, err = startRunner(t, runnerPath, runnerArgs(dataDir, "run", "--pull-policy", "missing", "--poll-interval", "1s")...)
			require.NoError(t, err)
			require.NoError(t, docker.WaitUntilRunning(containerName, 30*time.Second))
			require.NoError(t, waitForOutput(runner, "Block height", 30*time.Second))
			runErr = runner.signal(t, os.Interrupt)
		},
		func(t *testing.T) {
			assert.NoError(t, runErr, "run should exit cleanly after SIGINT")
			checkContainerNotFound(t, containerName)
			checkHeightFile(t, dataDir)
			assert.Contains(t, runner.out.String(), "DeFiChain version v0.0.0-mock")

			events, err := docker.ContainerEventsRange(context.Background(), start, time.Now())
			require.NoError(t, err)
			var containerID string
			events.CheckInOrder(t,
				docker.NewContainerCreated(mockImage, &containerID),
				docker.NewContainerStarted(&containerID),
				docker.NewContainerDies(&containerID),
				docker.NewContainerDestroy(&containerID),
			)
		})
	e2eTest.run()
}

// Test_Run_SIGTERM checks that SIGTERM tears the node down like SIGINT.
func Test_Run_SIGTERM(t *testing.T) {
	// Test context
	var (
		dataDir = filepath.Join(t.TempDir(), "defi-data")
		runErr  error
	)
	e2eTest := newE2ETestCase(t,
		func(t *testing.T, runnerPath string) error {
			return buildMockImage(t)
		},
		func(t *testing.T, runnerPath string) {
			runner, err := startRunner(t, runnerPath, runnerArgs(dataDir, "run", "--pull-policy", "missing")...)
			require.NoError(t, err)
			require.NoError(t, docker.WaitUntilRunning(containerName, 30*time.Second))
			runErr = runner.signal(t, syscall.SIGTERM)
		},
		func(t *testing.T) {
			assert.NoError(t, runErr, "run should exit cleanly after SIGTERM")
			checkContainerNotFound(t, containerName)
		})
	e2eTest.run()
}

// Test_Run_NameInUse checks that a second runner refuses to take over a
// container name that is already in use.
func Test_Run_NameInUse(t *testing.T) {
	// Test context
	var (
		first  *runnerProcess
		runErr error
	)
	e2eTest := newE2ETestCase(t,
		func(t *testing.T, runnerPath string) error {
			if err := buildMockImage(t); err != nil {
				return err
			}
			var err error
			first, err = startRunner(t, runnerPath, runnerArgs(filepath.Join(t.TempDir(), "first"), "run", "--pull-policy", "missing")...)
			if err != nil {
				return err
			}
			return docker.WaitUntilRunning(containerName, 30*time.Second)
		},
		func(t *testing.T, runnerPath string) {
			_, runErr = runCommand(t, runnerPath, runnerArgs(filepath.Join(t.TempDir(), "second"), "run", "--pull-policy", "missing")...)
		},
		func(t *testing.T) {
			assert.Error(t, runErr, "second runner should fail")
			// The first runner still owns its container.
			require.NoError(t, docker.WaitUntilRunning(containerName, 5*time.Second))
			require.NoError(t, first.signal(t, os.Interrupt))
			checkContainerNotFound(t, containerName)
		})
	e2eTest.run()
}
