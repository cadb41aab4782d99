package e2e

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/NethermindEth/defi-runner/e2e/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_Height checks that the height command prints the running node's
// block height.
func Test_Height(t *testing.T) {
	// Test context
	var (
		dataDir   = filepath.Join(t.TempDir(), "defi-data")
		runner    *runnerProcess
		out       []byte
		heightErr error
	)
	e2eTest := newE2ETestCase(t,
		func(t *testing.T, runnerPath string) error {
			if err := buildMockImage(t); err != nil {
				return err
			}
			var err error
			runner, err = startRunner(t, runnerPath, runnerArgs(dataDir, "run", "--pull-policy", "missing")...)
			if err != nil {
				return err
			}
			if err := docker.WaitUntilRunning(containerName, 30*time.Second); err != nil {
				return err
			}
			// Let the daemon write its first tip.
			return waitForOutput(runner, "UpdateTip", 30*time.Second)
		},
		func(t *testing.T, runnerPath string) {
			out, heightErr = runCommand(t, runnerPath, runnerArgs(dataDir, "height")...)
		},
		func(t *testing.T) {
			require.NoError(t, heightErr, "height command should succeed")
			height, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, height, int64(0))
			require.NoError(t, runner.signal(t, os.Interrupt))
		})
	e2eTest.run()
}

// Test_Stop_Remove checks that a node stopped by the stop command can be
// removed with rm, and that the data directory survives both.
func Test_Stop_Remove(t *testing.T) {
	// Test context
	var (
		dataDir = filepath.Join(t.TempDir(), "defi-data")
		runner  *runnerProcess
		stopErr error
		rmErr   error
	)
	e2eTest := newE2ETestCase(t,
		func(t *testing.T, runnerPath string) error {
			if err := buildMockImage(t); err != nil {
				return err
			}
			var err error
			runner, err = startRunner(t, runnerPath, runnerArgs(dataDir, "run", "--pull-policy", "missing", "--remove-policy", "ignore-missing")...)
			if err != nil {
				return err
			}
			return docker.WaitUntilRunning(containerName, 30*time.Second)
		},
		func(t *testing.T, runnerPath string) {
			_, stopErr = runCommand(t, runnerPath, runnerArgs(dataDir, "stop", "--timeout", "1s")...)
			_, rmErr = runCommand(t, runnerPath, runnerArgs(dataDir, "rm", "--yes")...)
		},
		func(t *testing.T) {
			assert.NoError(t, stopErr, "stop command should succeed")
			assert.NoError(t, rmErr, "rm command should succeed")
			require.NoError(t, docker.WaitUntilRemoved(containerName, 10*time.Second))
			checkHeightFile(t, dataDir)
			// The container is already gone; ignore-missing lets the runner exit cleanly.
			assert.NoError(t, runner.signal(t, os.Interrupt))
		})
	e2eTest.run()
}

// Test_Remove_NonExisting checks the rm command against a missing container.
func Test_Remove_NonExisting(t *testing.T) {
	// Test context
	var (
		dataDir            = filepath.Join(t.TempDir(), "defi-data")
		strictErr, lenient error
	)
	e2eTest := newE2ETestCase(t,
		nil,
		func(t *testing.T, runnerPath string) {
			_, strictErr = runCommand(t, runnerPath, runnerArgs(dataDir, "rm", "--yes")...)
			_, lenient = runCommand(t, runnerPath, runnerArgs(dataDir, "rm", "--yes", "--ignore-missing")...)
		},
		func(t *testing.T) {
			assert.Error(t, strictErr, "rm should fail for a missing container")
			assert.NoError(t, lenient, "rm --ignore-missing should succeed for a missing container")
		})
	e2eTest.run()
}
