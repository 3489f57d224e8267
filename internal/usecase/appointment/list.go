package appointment

import (
	"context"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// PendingDomicile is the claim board: every Pending at-home job, visible to
// extern employees.
func (uc *ListAppointments) PendingDomicile(ctx context.Context) ([]models.AppointmentDomicile, error) {
	pending := domain.StatusPending
	return uc.repo.ListDomicile(ctx, domain.DomicileFilter{Status: &pending})
}

// MineDomicile scopes the listing to the caller: clients see the jobs they
// own, extern employees the jobs assigned to them. Only an explicit admin
// role gets the unscoped list; any other role is refused rather than
// silently elevated.
func (uc *ListAppointments) MineDomicile(
	ctx context.Context,
	p *principal.Principal,
) ([]models.AppointmentDomicile, error) {

	switch p.Role {
	case principal.RoleClient:
		id := p.ID
		return uc.repo.ListDomicile(ctx, domain.DomicileFilter{ClientID: &id})
	case principal.RoleExternEmployee:
		id := p.ID
		return uc.repo.ListDomicile(ctx, domain.DomicileFilter{ExternEmployeeID: &id})
	case principal.RoleAdmin:
		return uc.repo.ListDomicile(ctx, domain.DomicileFilter{IncludeDeleted: true})
	}
	return nil, httperr.ErrBusiness("forbidden")
}

// Location jobs are a shared pool: any intern employee sees them all.
// Clients see their own; admin sees everything including deleted rows.
func (uc *ListAppointments) Location(
	ctx context.Context,
	p *principal.Principal,
) ([]models.AppointmentLocation, error) {

	switch p.Role {
	case principal.RoleClient:
		id := p.ID
		return uc.repo.ListLocation(ctx, domain.LocationFilter{ClientID: &id})
	case principal.RoleInternEmployee:
		return uc.repo.ListLocation(ctx, domain.LocationFilter{})
	case principal.RoleAdmin:
		return uc.repo.ListLocation(ctx, domain.LocationFilter{IncludeDeleted: true})
	}
	return nil, httperr.ErrBusiness("forbidden")
}
