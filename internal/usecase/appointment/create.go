package appointment

import (
	"context"
	"time"

	"github.com/washpoint/carwash-api/internal/audit"
	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateDomicileInput struct {
	ClientID uint

	Time     time.Time
	CarType  string
	CarName  string
	WashType string
	Place    string
	Price    float64
}

type CreateLocationInput struct {
	ClientID uint

	Date     time.Time
	Time     string
	CarType  string
	CarName  string
	WashType string
	Price    float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ExecuteDomicile creates a Pending at-home appointment owned by the calling
// client, with no employee assigned until a claim.
func (uc *CreateAppointment) ExecuteDomicile(
	ctx context.Context,
	in CreateDomicileInput,
) (*models.AppointmentDomicile, error) {

	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	ap := &models.AppointmentDomicile{
		Time:     in.Time,
		CarType:  in.CarType,
		CarName:  in.CarName,
		WashType: in.WashType,
		Place:    in.Place,
		Price:    in.Price,
		Status:   string(domain.InitialStatus()),
		ClientID: in.ClientID,
	}

	if err := uc.repo.CreateDomicile(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.ClientID,
		ActorRole: "client",
		Action:    "appointment_domicile_created",
		Entity:    "appointment_domicile",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) ExecuteLocation(
	ctx context.Context,
	in CreateLocationInput,
) (*models.AppointmentLocation, error) {

	if in.Price < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	ap := &models.AppointmentLocation{
		Date:     in.Date,
		Time:     in.Time,
		CarType:  in.CarType,
		CarName:  in.CarName,
		WashType: in.WashType,
		Price:    in.Price,
		Status:   string(domain.InitialStatus()),
		ClientID: in.ClientID,
	}

	if err := uc.repo.CreateLocation(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   &in.ClientID,
		ActorRole: "client",
		Action:    "appointment_location_created",
		Entity:    "appointment_location",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
