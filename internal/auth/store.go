package auth

import (
	"context"
	"errors"

	"github.com/washpoint/carwash-api/internal/models"
)

var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalStore is the lookup surface over the four identity tables.
// Lookups are table-specific by design; there is no cross-table query.
type PrincipalStore interface {
	ClientByID(ctx context.Context, id uint) (*models.Client, error)
	ClientByEmail(ctx context.Context, email string) (*models.Client, error)

	ExternEmployeeByID(ctx context.Context, id uint) (*models.ExternEmployee, error)
	ExternEmployeeByEmail(ctx context.Context, email string) (*models.ExternEmployee, error)

	InternEmployeeByID(ctx context.Context, id uint) (*models.InternEmployee, error)
	InternEmployeeByEmail(ctx context.Context, email string) (*models.InternEmployee, error)

	AdminByID(ctx context.Context, id uint) (*models.Admin, error)
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}
