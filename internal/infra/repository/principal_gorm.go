package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

// PrincipalGormRepository serves the four disjoint identity tables. The
// methods are deliberately table-specific: identity is only meaningful as an
// (id, role) pair.
type PrincipalGormRepository struct {
	db *gorm.DB
}

func NewPrincipalGormRepository(db *gorm.DB) *PrincipalGormRepository {
	return &PrincipalGormRepository{db: db}
}

func (r *PrincipalGormRepository) ClientByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *PrincipalGormRepository) ClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func (r *PrincipalGormRepository) ExternEmployeeByID(ctx context.Context, id uint) (*models.ExternEmployee, error) {
	var e models.ExternEmployee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &e, nil
}

func (r *PrincipalGormRepository) ExternEmployeeByEmail(ctx context.Context, email string) (*models.ExternEmployee, error) {
	var e models.ExternEmployee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &e, nil
}

func (r *PrincipalGormRepository) InternEmployeeByID(ctx context.Context, id uint) (*models.InternEmployee, error) {
	var e models.InternEmployee
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &e, nil
}

func (r *PrincipalGormRepository) InternEmployeeByEmail(ctx context.Context, email string) (*models.InternEmployee, error) {
	var e models.InternEmployee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &e, nil
}

func (r *PrincipalGormRepository) AdminByID(ctx context.Context, id uint) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (r *PrincipalGormRepository) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.ErrPrincipalNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation, which on the identity tables means a duplicate email.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateConflictError maps a create failure to the conflict business code
// when it was a duplicate email, passing everything else through.
func CreateConflictError(err error) error {
	if IsUniqueViolation(err) {
		return httperr.ErrBusiness("email_already_exists")
	}
	return err
}
