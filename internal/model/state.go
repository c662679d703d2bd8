package model

// RunState is a stage of the conversion state machine.
type RunState int

// Stages in the order a successful run passes through them. StateFailed is
// reachable from any stage.
const (
	StateDiscover RunState = iota
	StateFanOutWalk
	StateAggregate
	StateCleanup
	StateDone
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StateDiscover:
		return "discover"
	case StateFanOutWalk:
		return "fan-out-walk"
	case StateAggregate:
		return "aggregate"
	case StateCleanup:
		return "cleanup"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen.
func (s RunState) Terminal() bool {
	return s == StateDone || s == StateFailed
}
