package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a route. The underlying string is
// the wire and storage representation used by the read model.
//
// State transitions:
//
//	available ──reserve──> pending ──start──> in_progress ──complete──> completed
//	     ^                   │  │                  │
//	     └──────release──────┘  └────cancel────────┴──> cancelled
//
// Status is a value object that validates state transitions and exposes a
// fixed priority ranking used to order a courier's route list.
type Status string

const (
	// Available means the route is unassigned and open for reservation.
	Available Status = "available"

	// Pending means a courier reserved the route but has not started it.
	Pending Status = "pending"

	// InProgress means the courier scanned the parcel and is delivering.
	InProgress Status = "in_progress"

	// Completed means the delivery was confirmed. Final state.
	Completed Status = "completed"

	// Cancelled means the delivery was abandoned or timed out. Final state.
	Cancelled Status = "cancelled"
)

// getValidStatuses returns the set of statuses accepted from external input.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Available:  {},
		Pending:    {},
		InProgress: {},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString converts an external string into a Status, failing for
// anything outside the known enum.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the Status value belongs to the known enum.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the storage representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Priority returns the fixed ranking used to order a courier's routes:
// pending < in_progress < completed < cancelled. Available routes sort last;
// they do not normally appear in a courier's own list.
func (s Status) Priority() int {
	switch s {
	case Pending:
		return 0
	case InProgress:
		return 1
	case Completed:
		return 2
	case Cancelled:
		return 3
	default:
		return 4
	}
}

// ValidateCanHaveCourier validates the consistency between route status and
// courier assignment: a courier is assigned exactly while the status is not
// available.
func (s Status) ValidateCanHaveCourier(assigned bool) error {
	if assigned && s == Available {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s))
	}
	if !assigned && s != Available {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s))
	}
	return nil
}

// Reserve transitions available -> pending.
func (s Status) Reserve() (Status, error) {
	if s != Available {
		return "", transitionError(s, "reserve")
	}
	return Pending, nil
}

// Release transitions pending -> available.
func (s Status) Release() (Status, error) {
	if s != Pending {
		return "", transitionError(s, "release")
	}
	return Available, nil
}

// Start transitions pending -> in_progress.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return "", transitionError(s, "start")
	}
	return InProgress, nil
}

// Complete transitions in_progress -> completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return "", transitionError(s, "complete")
	}
	return Completed, nil
}

// Cancel transitions pending or in_progress -> cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != InProgress {
		return "", transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, transition string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, transition))
}
