package appointment

import (
	"context"
	"errors"

	"github.com/washpoint/carwash-api/internal/audit"
	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

type ClaimAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewClaimAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ClaimAppointment {
	return &ClaimAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute claims a Pending domicile appointment for an extern employee. The
// store performs the Pending check and the assignment as one atomic update,
// so under concurrent claims exactly one employee wins; everyone else gets
// invalid_transition.
func (uc *ClaimAppointment) Execute(
	ctx context.Context,
	employeeID uint,
	appointmentID uint,
) (*models.AppointmentDomicile, error) {

	err := uc.repo.ClaimDomicile(ctx, appointmentID, employeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		if errors.Is(err, domain.ErrNotPending) {
			return nil, httperr.ErrBusiness("invalid_transition")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &employeeID,
		ActorRole: "extern_employee",
		Action:    "appointment_claimed",
		Entity:    "appointment_domicile",
		EntityID:  &appointmentID,
	})

	return uc.repo.GetDomicile(ctx, appointmentID)
}
