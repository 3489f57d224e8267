package appointment

import (
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/models"
)

// Access rules: a client touches only their own appointments, an extern
// employee only the ones assigned to them, and admin reads everything. An
// appointment that exists but belongs to someone else is reported as
// forbidden, not missing.

func canAccessDomicile(p *principal.Principal, ap *models.AppointmentDomicile) bool {
	switch p.Role {
	case principal.RoleAdmin:
		return true
	case principal.RoleClient:
		return ap.ClientID == p.ID
	case principal.RoleExternEmployee:
		return ap.ExternEmployeeID != nil && *ap.ExternEmployeeID == p.ID
	}
	return false
}

func canAccessLocation(p *principal.Principal, ap *models.AppointmentLocation) bool {
	switch p.Role {
	case principal.RoleAdmin:
		return true
	case principal.RoleClient:
		return ap.ClientID == p.ID
	case principal.RoleInternEmployee:
		// location jobs are a shared pool for the intern staff
		return true
	}
	return false
}
