package appointment

import "github.com/washpoint/carwash-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusDeleted    Status = "Deleted"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDeleted:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// The only legal path is Pending -> In Progress -> Completed. Deleted is a
// terminal soft-delete reachable from any other state. Everything else,
// including backward moves like Completed -> Pending, is rejected.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if from == StatusDeleted {
		return false
	}
	if to == StatusDeleted {
		return true
	}

	switch from {
	case StatusPending:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	}
	return false
}

// CanClaim gates the extern-employee claim: only a Pending, unassigned
// appointment can be claimed.
func CanClaim(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
