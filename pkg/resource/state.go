package resource

import "fmt"

// State represents the lifecycle state of a resource.
type State string

const (
	// StateCreated is the initial state after construction.
	// The resource exists but is not running.
	StateCreated State = "Created"

	// StateStarted indicates the resource is running.
	StateStarted State = "Started"

	// StateStopped indicates the resource is paused and can be restarted
	// or safely deleted.
	StateStopped State = "Stopped"

	// StateDeleted is the terminal state. Deletion is soft: metadata is
	// preserved for the audit trail, but no further operations are allowed.
	StateDeleted State = "Deleted"
)

// Valid checks if the state is one of the defined lifecycle states.
func (s State) Valid() bool {
	switch s {
	case StateCreated, StateStarted, StateStopped, StateDeleted:
		return true
	}
	return false
}

// IsTerminal returns true if the state allows no further transitions.
func (s State) IsTerminal() bool {
	return s == StateDeleted
}

// Op is a lifecycle operation requested on a resource.
type Op string

const (
	// OpStart requests the resource to start (or restart from Stopped).
	OpStart Op = "start"

	// OpStop requests a running resource to stop.
	OpStop Op = "stop"

	// OpDelete requests a soft delete of the resource.
	OpDelete Op = "delete"
)

// Transition computes the lifecycle transition for an operation from a state.
// It is a pure function: it returns the next state and the new deleted flag,
// or an INVALID_TRANSITION error carrying the current state, the attempted
// operation, and the reason. Every (state, op) combination is covered.
func Transition(s State, op Op) (State, bool, error) {
	switch s {
	case StateCreated:
		switch op {
		case OpStart:
			return StateStarted, false, nil
		case OpStop:
			return s, false, NewInvalidTransitionError(s, op, "resource not started yet")
		case OpDelete:
			return StateDeleted, true, nil
		}

	case StateStarted:
		switch op {
		case OpStart:
			return s, false, NewInvalidTransitionError(s, op, "resource already running")
		case OpStop:
			return StateStopped, false, nil
		case OpDelete:
			return s, false, NewInvalidTransitionError(s, op, "must stop resource first")
		}

	case StateStopped:
		switch op {
		case OpStart:
			return StateStarted, false, nil
		case OpStop:
			return s, false, NewInvalidTransitionError(s, op, "resource already stopped")
		case OpDelete:
			return StateDeleted, true, nil
		}

	case StateDeleted:
		// Terminal: soft deletion is permanent.
		switch op {
		case OpStart, OpStop, OpDelete:
			return s, true, NewInvalidTransitionError(s, op, "resource is deleted")
		}
	}

	return s, s == StateDeleted, NewInvalidTransitionError(s, op, fmt.Sprintf("unknown state or operation (state=%s, op=%s)", s, op))
}

// transitionMessage builds the audit message for a completed transition.
// The region context is read from the variant's config view; a placeholder
// is substituted when absent so the message never fails to render.
func transitionMessage(from State, op Op, config map[string]any) string {
	switch op {
	case OpStart:
		if from == StateStopped {
			return "restarted in " + regionFrom(config)
		}
		return "started in " + regionFrom(config)
	case OpStop:
		return "stopped"
	case OpDelete:
		if from == StateCreated {
			return "marked as deleted (unused)"
		}
		return "marked as deleted"
	}
	return string(op)
}

func regionFrom(config map[string]any) string {
	if region, ok := config["region"].(string); ok && region != "" {
		return region
	}
	return "unknown region"
}
