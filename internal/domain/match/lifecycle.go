package match

import "errors"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// ErrInvalidTransition is returned when a requested status change violates
// the lifecycle. The caller must not persist anything in that case.
var ErrInvalidTransition = errors.New("invalid match status transition")

// allowedTransitions is the full lifecycle: rejected and completed are
// terminal. Rejecting an already-accepted match is deliberately absent;
// cancellation after acceptance is not a modeled operation.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusAccepted: true,
		StatusRejected: true,
	},
	StatusAccepted: {
		StatusCompleted: true,
	},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Transition validates a status change. It returns changed=false when the
// target equals the current status (an idempotent replay that must succeed
// without side effects) and ErrInvalidTransition for every move the
// lifecycle does not allow.
func Transition(current, target Status) (changed bool, err error) {
	if !current.Valid() || !target.Valid() {
		return false, ErrInvalidTransition
	}
	if current == target {
		return false, nil
	}
	if allowedTransitions[current][target] {
		return true, nil
	}
	return false, ErrInvalidTransition
}
