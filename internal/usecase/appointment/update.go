package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/washpoint/carwash-api/internal/audit"
	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Nil fields are left untouched.
type UpdateDomicileInput struct {
	Time     *time.Time
	CarType  *string
	CarName  *string
	WashType *string
	Place    *string
	Price    *float64
	Status   *string
}

type UpdateLocationInput struct {
	Date     *time.Time
	Time     *string
	CarType  *string
	CarName  *string
	WashType *string
	Price    *float64
	Status   *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ExecuteDomicile applies a partial update. Status changes go through the
// transition table; a move into Completed runs the completion edge, which
// accrues the employee history exactly once no matter how many times the
// appointment is saved at Completed afterwards.
func (uc *UpdateAppointment) ExecuteDomicile(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
	in UpdateDomicileInput,
) (*models.AppointmentDomicile, error) {

	ap, err := uc.repo.GetDomicile(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if !canAccessDomicile(p, ap) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if domain.Status(ap.Status) == domain.StatusDeleted {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.CarType != nil {
		ap.CarType = *in.CarType
	}
	if in.CarName != nil {
		ap.CarName = *in.CarName
	}
	if in.WashType != nil {
		ap.WashType = *in.WashType
	}
	if in.Place != nil {
		ap.Place = *in.Place
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		ap.Price = *in.Price
	}

	var completing, deleting bool
	if in.Status != nil {
		target := domain.Status(*in.Status)
		if err := domain.ApplyDomicileStatus(ap, target); err != nil {
			return nil, err
		}
		completing = target == domain.StatusCompleted
		deleting = target == domain.StatusDeleted
	}

	switch {
	case deleting:
		if err := uc.repo.SoftDeleteDomicile(ctx, ap.ID); err != nil {
			return nil, err
		}
	case completing:
		if err := uc.repo.UpdateDomicile(ctx, ap); err != nil {
			return nil, err
		}
		if err := uc.repo.CompleteDomicile(ctx, ap); err != nil {
			return nil, err
		}
	default:
		if err := uc.repo.UpdateDomicile(ctx, ap); err != nil {
			return nil, err
		}
	}

	actorID := p.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: string(p.Role),
		Action:    "appointment_domicile_updated",
		Entity:    "appointment_domicile",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

func (uc *UpdateAppointment) ExecuteLocation(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
	in UpdateLocationInput,
) (*models.AppointmentLocation, error) {

	ap, err := uc.repo.GetLocation(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if !canAccessLocation(p, ap) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if domain.Status(ap.Status) == domain.StatusDeleted {
		return nil, httperr.ErrBusiness("invalid_transition")
	}

	if in.Date != nil {
		ap.Date = *in.Date
	}
	if in.Time != nil {
		ap.Time = *in.Time
	}
	if in.CarType != nil {
		ap.CarType = *in.CarType
	}
	if in.CarName != nil {
		ap.CarName = *in.CarName
	}
	if in.WashType != nil {
		ap.WashType = *in.WashType
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, httperr.ErrBusiness("invalid_price")
		}
		ap.Price = *in.Price
	}

	var completing, deleting bool
	if in.Status != nil {
		target := domain.Status(*in.Status)
		if err := domain.ApplyLocationStatus(ap, target); err != nil {
			return nil, err
		}
		completing = target == domain.StatusCompleted
		deleting = target == domain.StatusDeleted
	}

	switch {
	case deleting:
		if err := uc.repo.SoftDeleteLocation(ctx, ap.ID); err != nil {
			return nil, err
		}
	case completing:
		if err := uc.repo.UpdateLocation(ctx, ap); err != nil {
			return nil, err
		}
		if err := uc.repo.CompleteLocation(ctx, ap); err != nil {
			return nil, err
		}
	default:
		if err := uc.repo.UpdateLocation(ctx, ap); err != nil {
			return nil, err
		}
	}

	actorID := p.ID
	uc.audit.Dispatch(audit.Event{
		ActorID:   &actorID,
		ActorRole: string(p.Role),
		Action:    "appointment_location_updated",
		Entity:    "appointment_location",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
