package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/washpoint/carwash-api/internal/models"
)

var (
	ErrNotFound   = errors.New("appointment not found")
	ErrNotPending = errors.New("appointment is not pending")
)

// DomicileFilter scopes a listing. Nil fields are not applied. Deleted rows
// are excluded unless IncludeDeleted is set (admin reads).
type DomicileFilter struct {
	Status           *Status
	ClientID         *uint
	ExternEmployeeID *uint
	IncludeDeleted   bool
}

type LocationFilter struct {
	Status         *Status
	ClientID       *uint
	IncludeDeleted bool
}

// Stats is the per-day projection served to admins.
type Stats struct {
	Total                 int64            `json:"total"`
	StatusBreakdown       map[string]int64 `json:"status_breakdown"`
	WashTypeBreakdown     map[string]int64 `json:"wash_type_breakdown"`
	DistinctEmployeeCount int64            `json:"distinct_employee_count"`
}

type Revenue struct {
	TotalRevenue     float64 `json:"total_revenue"`
	AppointmentCount int64   `json:"appointment_count"`
}

type Repository interface {
	// -------- Domicile --------
	CreateDomicile(ctx context.Context, ap *models.AppointmentDomicile) error

	GetDomicile(ctx context.Context, id uint) (*models.AppointmentDomicile, error)

	ListDomicile(ctx context.Context, f DomicileFilter) ([]models.AppointmentDomicile, error)

	// ClaimDomicile atomically assigns the employee and moves
	// Pending -> In Progress. Exactly one concurrent claimant wins; losers
	// get ErrNotPending.
	ClaimDomicile(ctx context.Context, appointmentID uint, employeeID uint) error

	// UpdateDomicile persists field changes. The caller validates the
	// transition; a transition into Completed must go through
	// CompleteDomicile instead.
	UpdateDomicile(ctx context.Context, ap *models.AppointmentDomicile) error

	// CompleteDomicile performs the completion edge: sets status and
	// CompletedAt only if the appointment has never completed before, and
	// accrues the employee history row in the same transaction.
	CompleteDomicile(ctx context.Context, ap *models.AppointmentDomicile) error

	SoftDeleteDomicile(ctx context.Context, id uint) error

	// -------- Location --------
	CreateLocation(ctx context.Context, ap *models.AppointmentLocation) error

	GetLocation(ctx context.Context, id uint) (*models.AppointmentLocation, error)

	ListLocation(ctx context.Context, f LocationFilter) ([]models.AppointmentLocation, error)

	UpdateLocation(ctx context.Context, ap *models.AppointmentLocation) error

	CompleteLocation(ctx context.Context, ap *models.AppointmentLocation) error

	SoftDeleteLocation(ctx context.Context, id uint) error

	// -------- Projections --------
	StatsForDay(ctx context.Context, kind Kind, dayStart, dayEnd time.Time) (*Stats, error)

	RevenueForDay(ctx context.Context, kind Kind, dayStart, dayEnd time.Time) (*Revenue, error)

	// -------- History --------
	ListExternHistory(ctx context.Context, employeeID uint) ([]models.ExternEmployeeHistory, error)

	ListInternHistory(ctx context.Context, employeeID uint) ([]models.InternEmployeeHistory, error)
}
