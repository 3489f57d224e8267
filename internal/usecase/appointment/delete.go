package appointment

import (
	"context"
	"errors"

	"github.com/washpoint/carwash-api/internal/audit"
	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Domicile soft-deletes: the row stays, the status becomes Deleted and no
// further transition is possible. Only the owning client or an admin may
// delete.
func (uc *DeleteAppointment) Domicile(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetDomicile(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if !p.Is(principal.RoleAdmin) && !(p.Is(principal.RoleClient) && ap.ClientID == p.ID) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.SoftDeleteDomicile(ctx, appointmentID); err != nil {
		return err
	}

	actorID := p.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: string(p.Role),
		Action:    "appointment_domicile_deleted",
		Entity:    "appointment_domicile",
		EntityID:  &appointmentID,
	})
	return nil
}

func (uc *DeleteAppointment) Location(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetLocation(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if !p.Is(principal.RoleAdmin) && !(p.Is(principal.RoleClient) && ap.ClientID == p.ID) {
		return httperr.ErrBusiness("forbidden")
	}

	if err := uc.repo.SoftDeleteLocation(ctx, appointmentID); err != nil {
		return err
	}

	actorID := p.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: string(p.Role),
		Action:    "appointment_location_deleted",
		Entity:    "appointment_location",
		EntityID:  &appointmentID,
	})
	return nil
}
