package node

import (
	"fmt"
	"time"
)

// PullPolicy controls when Start pulls the image.
type PullPolicy string

const (
	// PullAlways pulls on every start.
	PullAlways PullPolicy = "always"
	// PullIfMissing only pulls when the image is not in the local store.
	PullIfMissing PullPolicy = "missing"
)

// ParsePullPolicy parses a policy name as accepted on the command line.
func ParsePullPolicy(s string) (PullPolicy, error) {
	switch p := PullPolicy(s); p {
	case PullAlways, PullIfMissing:
		return p, nil
	}
	return "", fmt.Errorf("unknown pull policy %q, expected %q or %q", s, PullAlways, PullIfMissing)
}

// RemovePolicy controls how Remove treats a container that does not exist.
type RemovePolicy string

const (
	// RemoveStrict reports removing an absent container as an engine failure.
	RemoveStrict RemovePolicy = "strict"
	// RemoveIgnoreMissing treats an absent container as already removed.
	RemoveIgnoreMissing RemovePolicy = "ignore-missing"
)

// ParseRemovePolicy parses a policy name as accepted on the command line.
func ParseRemovePolicy(s string) (RemovePolicy, error) {
	switch p := RemovePolicy(s); p {
	case RemoveStrict, RemoveIgnoreMissing:
		return p, nil
	}
	return "", fmt.Errorf("unknown remove policy %q, expected %q or %q", s, RemoveStrict, RemoveIgnoreMissing)
}

var (
	defaultDaemonCommand = []string{"defid"}
	defaultHeightCommand = []string{"defi-cli", "getblockcount"}
)

// DefaultDataTarget is where the host data directory is mounted inside the
// container.
const DefaultDataTarget = "/data"

type options struct {
	pullPolicy    PullPolicy
	removePolicy  RemovePolicy
	daemonCommand []string
	heightCommand []string
	dataTarget    string
	stopTimeout   *time.Duration
}

func defaultOptions() options {
	return options{
		pullPolicy:    PullAlways,
		removePolicy:  RemoveStrict,
		daemonCommand: defaultDaemonCommand,
		heightCommand: defaultHeightCommand,
		dataTarget:    DefaultDataTarget,
	}
}

// Option configures a Supervisor.
type Option func(*options)

func WithPullPolicy(p PullPolicy) Option {
	return func(o *options) { o.pullPolicy = p }
}

func WithRemovePolicy(p RemovePolicy) Option {
	return func(o *options) { o.removePolicy = p }
}

// WithDaemonCommand sets the command the container runs.
func WithDaemonCommand(cmd ...string) Option {
	return func(o *options) { o.daemonCommand = cmd }
}

// WithHeightCommand sets the command executed inside the container to query
// the block height. It must print a single JSON integer on stdout.
func WithHeightCommand(cmd ...string) Option {
	return func(o *options) { o.heightCommand = cmd }
}

func WithDataTarget(path string) Option {
	return func(o *options) { o.dataTarget = path }
}

// WithStopTimeout sets the grace period given to the daemon on Stop. Without
// it the engine's default applies.
func WithStopTimeout(d time.Duration) Option {
	return func(o *options) { o.stopTimeout = &d }
}
