package node

// State is the lifecycle state of the managed container as last observed by
// the Supervisor. The engine stays the source of truth: a container removed
// behind the Supervisor's back is still reported with its last known state.
type State int

const (
	StateUncreated State = iota
	StateRunning
	StateStopped
	StateRemoved
)

func (s State) String() string {
	switch s {
	case StateUncreated:
		return "uncreated"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// canStart reports whether a new container may be created from this state.
func (s State) canStart() bool {
	return s == StateUncreated || s == StateRemoved
}
