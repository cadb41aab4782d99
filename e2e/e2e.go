package e2e

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
)

const (
	mockImage     = "defi-runner/mock-defid:latest"
	containerName = "defi-runner-e2e"
)

type (
	e2eArranger func(t *testing.T, runnerPath string) error
	e2eAct      func(t *testing.T, runnerPath string)
	e2eAssert   func(t *testing.T)
)

type e2eTestCase struct {
	t        *testing.T
	testDir  string
	repoPath string
	arranger e2eArranger
	act      e2eAct
	assert   e2eAssert
}

func newE2ETestCase(t *testing.T, arranger e2eArranger, act e2eAct, assert e2eAssert) *e2eTestCase {
	t.Helper()
	checkDockerAvailable(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	tc := &e2eTestCase{
		t:        t,
		testDir:  t.TempDir(),
		repoPath: filepath.Dir(wd),
		arranger: arranger,
		act:      act,
		assert:   assert,
	}
	t.Logf("Creating new E2E test case (%p). TestDir: %s", tc, tc.testDir)
	checkGoInstalled(t)
	tc.installGoModules()
	tc.buildRunner()
	return tc
}

func (e *e2eTestCase) run() {
	e.t.Cleanup(e.cleanup)
	if e.arranger != nil {
		if err := e.arranger(e.t, e.runnerPath()); err != nil {
			e.t.Fatalf("error in Arrange step: %v", err)
		}
	}
	if e.act != nil {
		e.act(e.t, e.runnerPath())
	}
	if e.assert != nil {
		e.assert(e.t)
	}
}

func (e *e2eTestCase) runnerPath() string {
	return filepath.Join(e.testDir, "defi-runner")
}

// cleanup removes the test container in case a failed test left it behind.
func (e *e2eTestCase) cleanup() {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		e.t.Fatalf("error creating docker client: %v", err)
	}
	defer dockerClient.Close()
	err = dockerClient.ContainerRemove(context.Background(), containerName, types.ContainerRemoveOptions{Force: true})
	if err != nil && !client.IsErrNotFound(err) {
		e.t.Errorf("error removing container %s: %v", containerName, err)
	}
}

func (e *e2eTestCase) installGoModules() {
	e.t.Helper()
	cmd := exec.Command("go", "mod", "download")
	cmd.Dir = e.repoPath
	e.t.Logf("Installing Go modules in %s", e.repoPath)
	if err := cmd.Run(); err != nil {
		e.t.Fatalf("error installing Go modules: %v", err)
	} else {
		e.t.Logf("Go modules installed")
	}
}

func (e *e2eTestCase) buildRunner() {
	e.t.Helper()
	outPath := e.runnerPath()
	e.t.Logf("Building defi-runner to %s", outPath)
	cmd := exec.Command("go", "build", "-o", outPath, "./cmd/defi-runner")
	cmd.Dir = e.repoPath
	if out, err := cmd.CombinedOutput(); err != nil {
		e.t.Fatalf("error building defi-runner: %v\n%s", err, out)
	} else {
		e.t.Logf("defi-runner built")
	}
}

func checkGoInstalled(t *testing.T) {
	t.Helper()
	err := exec.Command("go", "version").Run()
	if err != nil {
		t.Fatalf("error checking Go installation: %v", err)
	} else {
		t.Logf("Go installed")
	}
}

func checkDockerAvailable(t *testing.T) {
	t.Helper()
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	defer dockerClient.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := dockerClient.Ping(ctx); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

// buildMockImage builds the stand-in node image used instead of the real
// DeFiChain image.
func buildMockImage(t *testing.T) error {
	t.Helper()
	t.Logf("Building %s", mockImage)
	cmd := exec.Command("docker", "build", "-t", mockImage, filepath.Join("testdata", "mock-defid"))
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("docker build output:\n%s", out)
	}
	return err
}

// runnerArgs returns the flags selecting the test node.
func runnerArgs(dataDir string, args ...string) []string {
	return append([]string{
		"--image", mockImage,
		"--name", containerName,
		"--datadir", dataDir,
	}, args...)
}

func runCommand(t *testing.T, path string, args ...string) ([]byte, error) {
	t.Helper()
	t.Logf("Running command: %s %v", path, args)
	out, err := exec.Command(path, args...).CombinedOutput()
	t.Logf("Command output:\n%s", out)
	return out, err
}

// syncBuffer is a bytes.Buffer safe for a writing process and a reading test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// runnerProcess is a defi-runner running in the background.
type runnerProcess struct {
	cmd *exec.Cmd
	out *syncBuffer
}

func startRunner(t *testing.T, path string, args ...string) (*runnerProcess, error) {
	t.Helper()
	t.Logf("Starting command: %s %v", path, args)
	p := &runnerProcess{
		cmd: exec.Command(path, args...),
		out: &syncBuffer{},
	}
	p.cmd.Stdout = p.out
	p.cmd.Stderr = p.out
	if err := p.cmd.Start(); err != nil {
		return nil, err
	}
	t.Cleanup(func() {
		if p.cmd.ProcessState == nil {
			_ = p.cmd.Process.Kill()
			_ = p.cmd.Wait()
		}
	})
	return p, nil
}

// signal sends sig to the process and waits for it to exit.
func (p *runnerProcess) signal(t *testing.T, sig os.Signal) error {
	t.Helper()
	if err := p.cmd.Process.Signal(sig); err != nil {
		return err
	}
	err := p.cmd.Wait()
	t.Logf("Runner output:\n%s", p.out.String())
	return err
}
