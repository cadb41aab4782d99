package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/NethermindEth/defi-runner/internal/engine"
	"github.com/cenkalti/backoff/v4"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	labelManaged = "defi-runner.managed"
	labelSession = "defi-runner.session"
)

// Engine is the container engine as seen by the Supervisor. *engine.Client
// implements it.
type Engine interface {
	Pull(ctx context.Context, image string, out io.Writer) error
	ImageExists(ctx context.Context, image string) (bool, error)
	ContainerID(ctx context.Context, containerName string) (string, error)
	Create(ctx context.Context, name string, config *container.Config, hostConfig *container.HostConfig) (string, error)
	Start(ctx context.Context, containerName string) error
	Attach(ctx context.Context, containerName string) (types.HijackedResponse, error)
	Inspect(ctx context.Context, containerName string) (types.ContainerJSON, error)
	Stop(ctx context.Context, containerName string, timeout *time.Duration) error
	Remove(ctx context.Context, containerName string, force bool) error
	ExecCreate(ctx context.Context, containerName string, cmd []string) (string, error)
	ExecAttach(ctx context.Context, execID string) (types.HijackedResponse, error)
	ExecInspect(ctx context.Context, execID string) (types.ContainerExecInspect, error)
}

// Supervisor owns the lifecycle of one named node container. Every operation
// addresses the container by name and asks the engine for the current truth;
// the only local state is the advisory lifecycle State.
//
// A Supervisor is safe for concurrent use. BlockHeight never changes state, so
// a poller can query it while the foreground stops or removes the container.
type Supervisor struct {
	handle  Handle
	engine  Engine
	opts    options
	session string

	mu    sync.Mutex
	state State
}

// NewSupervisor returns a Supervisor for the container described by h.
func NewSupervisor(h Handle, e Engine, opts ...Option) *Supervisor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Supervisor{
		handle:  h,
		engine:  e,
		opts:    o,
		session: uuid.NewString(),
		state:   StateUncreated,
	}
}

// Handle returns the identity of the managed container.
func (s *Supervisor) Handle() Handle {
	return s.handle
}

// Session returns the ID this Supervisor labels its containers with.
func (s *Supervisor) Session() string {
	return s.session
}

// State returns the last lifecycle state observed by this Supervisor.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Supervisor) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"container": s.handle.name,
		"image":     s.handle.image,
	})
}

// Start pulls the image (according to the pull policy), creates the container
// with the data directory bind-mounted, starts it and attaches to its output.
// The caller owns the returned LogStream and must close it.
func (s *Supervisor) Start(ctx context.Context) (*LogStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.canStart() {
		return nil, fmt.Errorf("%w: cannot start %s while %s", ErrInvalidTransition, s.handle.name, s.state)
	}
	logger := s.logger()

	if _, err := s.engine.ContainerID(ctx, s.handle.name); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrContainerExists, s.handle.name)
	} else if !errors.Is(err, engine.ErrContainerNotFound) {
		return nil, err
	}

	if err := s.pull(ctx, logger); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrImagePull, s.handle.image, err)
	}

	config := &container.Config{
		Image:        s.handle.image,
		Cmd:          s.opts.daemonCommand,
		AttachStdout: true,
		AttachStderr: true,
		Labels: map[string]string{
			labelManaged: "true",
			labelSession: s.session,
		},
	}
	hostConfig := &container.HostConfig{
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: s.handle.dataDir,
				Target: s.opts.dataTarget,
			},
		},
	}
	logger.WithField("datadir", s.handle.dataDir).Info("Creating node container")
	id, err := s.engine.Create(ctx, s.handle.name, config, hostConfig)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrContainerCreate, s.handle.name, err)
	}
	s.state = StateStopped

	if err := s.engine.Start(ctx, s.handle.name); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrContainerStart, s.handle.name, err)
	}
	s.state = StateRunning
	logger.WithField("id", id).Info("Node container started")

	resp, err := s.engine.Attach(ctx, s.handle.name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAttach, s.handle.name, err)
	}
	return newLogStream(resp), nil
}

// Logs attaches to the output of an already running container. Only output
// produced after the attach is streamed.
func (s *Supervisor) Logs(ctx context.Context) (*LogStream, error) {
	resp, err := s.engine.Attach(ctx, s.handle.name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrAttach, s.handle.name, err)
	}
	return newLogStream(resp), nil
}

func (s *Supervisor) pull(ctx context.Context, logger *log.Entry) error {
	if s.opts.pullPolicy == PullIfMissing {
		exists, err := s.engine.ImageExists(ctx, s.handle.image)
		if err != nil {
			return err
		}
		if exists {
			logger.Debug("Image present, skipping pull")
			return nil
		}
	}
	logger.Info("Pulling image")
	progress := logger.WriterLevel(log.DebugLevel)
	defer progress.Close()
	return s.engine.Pull(ctx, s.handle.image, progress)
}

// Stop asks the engine to stop the container. The grace period is the
// engine's default unless WithStopTimeout was given.
func (s *Supervisor) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger().Info("Stopping node container")
	if err := s.engine.Stop(ctx, s.handle.name, s.opts.stopTimeout); err != nil {
		return err
	}
	s.state = StateStopped
	return nil
}

// Remove force-removes the container whether or not it is running. It does not
// check for existence first; what happens when the container is absent is
// decided by the remove policy.
func (s *Supervisor) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger()
	logger.Info("Removing node container")
	if err := s.engine.Remove(ctx, s.handle.name, true); err != nil {
		if s.opts.removePolicy != RemoveIgnoreMissing || !errors.Is(err, engine.ErrContainerNotFound) {
			return err
		}
		logger.Debug("Container already absent")
	}
	s.state = StateRemoved
	return nil
}

// WaitRunning blocks until the engine reports the container as running, the
// container exits, or timeout elapses. Engine errors end the wait at once.
func (s *Supervisor) WaitRunning(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	b := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	notRunningErr := errors.New("container is not running yet")
	err := backoff.Retry(func() error {
		ctInfo, err := s.engine.Inspect(ctx, s.handle.name)
		if err != nil {
			return backoff.Permanent(err)
		}
		if ctInfo.ContainerJSONBase == nil || ctInfo.State == nil {
			return notRunningErr
		}
		if ctInfo.State.Running {
			return nil
		}
		if ctInfo.State.Status == "exited" || ctInfo.State.Status == "dead" {
			return backoff.Permanent(fmt.Errorf("container %s with exit code %d", ctInfo.State.Status, ctInfo.State.ExitCode))
		}
		return notRunningErr
	}, b)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotRunning, s.handle.name, err)
	}
	return nil
}

// BlockHeight runs the height command in the container and parses its
// output. The whole output is read before parsing, so a value split across
// several frames is handled.
func (s *Supervisor) BlockHeight(ctx context.Context) (int64, error) {
	execID, err := s.engine.ExecCreate(ctx, s.handle.name, s.opts.heightCommand)
	if err != nil {
		return 0, err
	}
	resp, err := s.engine.ExecAttach(ctx, execID)
	if err != nil {
		return 0, err
	}
	if resp.Reader == nil {
		if resp.Conn != nil {
			resp.Close()
		}
		return 0, fmt.Errorf("%w: exec %s", ErrExecNotAttached, execID)
	}
	defer resp.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, resp.Reader); err != nil {
		return 0, fmt.Errorf("%w: reading exec %s output: %s", engine.ErrEngineOperationFailed, execID, err)
	}

	info, err := s.engine.ExecInspect(ctx, execID)
	if err != nil {
		return 0, err
	}
	if info.ExitCode != 0 {
		return 0, fmt.Errorf("%w: %v exited with code %d: %s", ErrExecFailed, s.opts.heightCommand, info.ExitCode, bytes.TrimSpace(stderr.Bytes()))
	}
	return ParseHeight(stdout.Bytes())
}
