package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/golang/mock/gomock"
	specs "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/defi-runner/internal/data"
	"github.com/NethermindEth/defi-runner/internal/engine"
	"github.com/NethermindEth/defi-runner/internal/engine/mocks"
	"github.com/NethermindEth/defi-runner/internal/locker"
	"github.com/NethermindEth/defi-runner/internal/node"
)

func running() types.ContainerJSON {
	return types.ContainerJSON{
		ContainerJSONBase: &types.ContainerJSONBase{
			ID:    "ctid",
			State: &types.ContainerState{Status: "running", Running: true},
		},
	}
}

// expectStartup sets the calls made before the node is confirmed running and
// returns the last of them.
func expectStartup(t *testing.T, api *mocks.MockAPI, dataDir string) *gomock.Call {
	attach := api.EXPECT().ContainerAttach(gomock.Any(), "defi-node", gomock.Any()).
		Return(hijacked(frames(t, stdcopy.Stdout, "Bitcoin version v4.0.0\n")), nil)
	gomock.InOrder(
		api.EXPECT().ContainerList(gomock.Any(), gomock.Any()).Return(nil, nil),
		api.EXPECT().ImagePull(gomock.Any(), "defi/defichain:latest", gomock.Any()).Return(upToDate(), nil),
		api.EXPECT().
			ContainerCreate(gomock.Any(), gomock.Any(), gomock.Any(), nil, nil, "defi-node").
			DoAndReturn(func(_ context.Context, config *container.Config, hostConfig *container.HostConfig, _ *network.NetworkingConfig, _ *specs.Platform, _ string) (container.CreateResponse, error) {
				assert.Equal(t, "defi/defichain:latest", config.Image)
				assert.Equal(t, []mount.Mount{{Type: mount.TypeBind, Source: dataDir, Target: "/data"}}, hostConfig.Mounts)
				return container.CreateResponse{ID: "ctid"}, nil
			}),
		api.EXPECT().ContainerStart(gomock.Any(), "defi-node", gomock.Any()).Return(nil),
		attach,
	)
	return attach
}

func TestRunCmd(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "defi-data")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd, env := newRootCmd(t, nil)
	api := env.api
	attach := expectStartup(t, api, dataDir)
	inspect := api.EXPECT().ContainerInspect(gomock.Any(), "defi-node").Return(running(), nil).After(attach)

	api.EXPECT().ContainerExecCreate(gomock.Any(), "defi-node", gomock.Any()).
		Return(types.IDResponse{ID: "exec-id"}, nil).MinTimes(1).After(inspect)
	api.EXPECT().ContainerExecAttach(gomock.Any(), "exec-id", gomock.Any()).
		DoAndReturn(func(context.Context, string, types.ExecStartCheck) (types.HijackedResponse, error) {
			return hijacked(frames(t, stdcopy.Stdout, "2701348\n")), nil
		}).MinTimes(1)
	// The first answered query stands in for the interrupt.
	api.EXPECT().ContainerExecInspect(gomock.Any(), "exec-id").
		DoAndReturn(func(context.Context, string) (types.ContainerExecInspect, error) {
			cancel()
			return types.ContainerExecInspect{ExecID: "exec-id"}, nil
		}).MinTimes(1)

	api.EXPECT().ContainerRemove(gomock.Any(), "defi-node", types.ContainerRemoveOptions{Force: true}).Return(nil)
	api.EXPECT().Close().Return(nil)

	cmd.SetArgs([]string{"--datadir", dataDir, "run", "--poll-interval", "1h"})
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.DirExists(t, dataDir)
	// The data directory lock is released on exit.
	lock := locker.NewFLock().New(filepath.Join(dataDir, ".defi-runner.lock"))
	locked, err := lock.TryLock()
	require.NoError(t, err)
	assert.True(t, locked)
	require.NoError(t, lock.Unlock())
}

func TestRunCmdNotRunning(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "defi-data")
	cmd, env := newRootCmd(t, nil)
	api := env.api
	attach := expectStartup(t, api, dataDir)
	api.EXPECT().ContainerInspect(gomock.Any(), "defi-node").
		Return(types.ContainerJSON{
			ContainerJSONBase: &types.ContainerJSONBase{
				State: &types.ContainerState{Status: "exited", ExitCode: 1},
			},
		}, nil).After(attach)
	api.EXPECT().ContainerRemove(gomock.Any(), "defi-node", types.ContainerRemoveOptions{Force: true}).Return(nil)
	api.EXPECT().Close().Return(nil)

	cmd.SetArgs([]string{"--datadir", dataDir, "run", "--startup-timeout", "1s"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, node.ErrNotRunning)
}

func TestRunCmdPullFails(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "defi-data")
	cmd, env := newRootCmd(t, nil)
	api := env.api
	gomock.InOrder(
		api.EXPECT().ContainerList(gomock.Any(), gomock.Any()).Return(nil, nil),
		api.EXPECT().ImagePull(gomock.Any(), "defi/defichain:latest", gomock.Any()).Return(nil, assert.AnError),
		// Nothing was created, so nothing is removed.
		api.EXPECT().Close().Return(nil),
	)

	cmd.SetArgs([]string{"--datadir", dataDir, "run"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, node.ErrImagePull)
}

func TestRunCmdPreconditions(t *testing.T) {
	ts := []struct {
		name    string
		args    []string
		connect func(api *mocks.MockAPI) Connector
		setup   func(t *testing.T, dataDir string)
		err     error
	}{
		{
			name: "invalid pull policy",
			args: []string{"run", "--pull-policy", "sometimes"},
			err:  ErrInvalidFlag,
		},
		{
			name: "invalid remove policy",
			args: []string{"run", "--remove-policy", "lenient"},
			err:  ErrInvalidFlag,
		},
		{
			name: "non-positive poll interval",
			args: []string{"run", "--poll-interval", "0s"},
			err:  ErrInvalidFlag,
		},
		{
			name: "non-positive startup timeout",
			args: []string{"run", "--startup-timeout=-1s"},
			err:  ErrInvalidFlag,
		},
		{
			name:    "engine unavailable",
			args:    []string{"run"},
			connect: func(*mocks.MockAPI) Connector { return unavailable },
			err:     engine.ErrEngineUnavailable,
		},
		{
			name: "data directory in use",
			args: []string{"run"},
			setup: func(t *testing.T, dataDir string) {
				lock := locker.NewFLock().New(filepath.Join(dataDir, ".defi-runner.lock"))
				require.NoError(t, lock.Lock())
				t.Cleanup(func() { _ = lock.Unlock() })
			},
			err: data.ErrDataDirLocked,
		},
	}
	for _, tt := range ts {
		t.Run(tt.name, func(t *testing.T) {
			dataDir := t.TempDir()
			if tt.setup != nil {
				tt.setup(t, dataDir)
			}
			cmd, _ := newRootCmd(t, tt.connect)
			cmd.SetArgs(append([]string{"--datadir", dataDir}, tt.args...))
			assert.ErrorIs(t, cmd.Execute(), tt.err)
		})
	}
}
