package appointment

import (
	"context"
	"errors"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Domicile(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
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
	return ap, nil
}

func (uc *GetAppointment) Location(
	ctx context.Context,
	p *principal.Principal,
	appointmentID uint,
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
	return ap, nil
}
