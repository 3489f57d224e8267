package appointment

import (
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyDomicileStatus validates and applies a status change in memory. The
// completion edge itself (CompletedAt plus history accrual) is handled by the
// repository so it stays atomic with the write.
func ApplyDomicileStatus(ap *models.AppointmentDomicile, to Status) error {
	if !IsValidStatus(string(to)) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(Status(ap.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)
	return nil
}

func ApplyLocationStatus(ap *models.AppointmentLocation, to Status) error {
	if !IsValidStatus(string(to)) {
		return httperr.ErrBusiness("invalid_status")
	}
	if !CanTransition(Status(ap.Status), to) {
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(to)
	return nil
}
