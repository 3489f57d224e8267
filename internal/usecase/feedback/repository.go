package feedback

import (
	"context"
	"errors"

	"github.com/washpoint/carwash-api/internal/models"
)

var ErrNotFound = errors.New("feedback not found")

// Totals is the raw aggregate the store produces; rounding is the service's
// concern.
type Totals struct {
	Total         int64
	ApprovedCount int64
	AverageRating float64
}

type Repository interface {
	Create(ctx context.Context, fb *models.Feedback) error

	GetByID(ctx context.Context, id uint) (*models.Feedback, error)

	// List filters on approval when approved is non-nil.
	List(ctx context.Context, approved *bool) ([]models.Feedback, error)

	SetApproved(ctx context.Context, id uint, approved bool) error

	Delete(ctx context.Context, id uint) error

	Totals(ctx context.Context) (*Totals, error)

	// -------- Ratings --------
	CreateRating(ctx context.Context, rt *models.Rating) error

	ListRatings(ctx context.Context, externEmployeeID uint) ([]models.Rating, error)

	// RecomputeFinalRating averages all scores for the employee, stores the
	// result on the employee row and returns it.
	RecomputeFinalRating(ctx context.Context, externEmployeeID uint) (float64, error)
}
