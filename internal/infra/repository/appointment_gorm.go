package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Domicile
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateDomicile(
	ctx context.Context,
	ap *models.AppointmentDomicile,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetDomicile(
	ctx context.Context,
	id uint,
) (*models.AppointmentDomicile, error) {

	var ap models.AppointmentDomicile
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("ExternEmployee").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListDomicile(
	ctx context.Context,
	f domain.DomicileFilter,
) ([]models.AppointmentDomicile, error) {

	q := r.db.WithContext(ctx).Model(&models.AppointmentDomicile{}).Preload("Client")

	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	} else if !f.IncludeDeleted {
		q = q.Where("status <> ?", string(domain.StatusDeleted))
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.ExternEmployeeID != nil {
		q = q.Where("extern_employee_id = ?", *f.ExternEmployeeID)
	}

	var aps []models.AppointmentDomicile
	if err := q.Order("time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// ClaimDomicile is a single conditional UPDATE so the Pending check and the
// assignment are one atomic step: under concurrent claims exactly one UPDATE
// matches, every other claimant sees zero rows and gets ErrNotPending.
func (r *AppointmentGormRepository) ClaimDomicile(
	ctx context.Context,
	appointmentID uint,
	employeeID uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentDomicile{}).
		Where(
			"id = ? AND status = ? AND extern_employee_id IS NULL",
			appointmentID,
			string(domain.StatusPending),
		).
		Updates(map[string]any{
			"status":             string(domain.StatusInProgress),
			"extern_employee_id": employeeID,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.AppointmentDomicile{}).
			Where("id = ?", appointmentID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrNotPending
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateDomicile(
	ctx context.Context,
	ap *models.AppointmentDomicile,
) error {
	return r.db.WithContext(ctx).
		Omit("Client", "ExternEmployee", "CompletedAt").
		Save(ap).Error
}

// CompleteDomicile performs the completion edge. CompletedAt doubles as the
// edge marker: the conditional UPDATE only matches while it is NULL, so
// saving an already-Completed appointment never re-accrues history.
func (r *AppointmentGormRepository) CompleteDomicile(
	ctx context.Context,
	ap *models.AppointmentDomicile,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&models.AppointmentDomicile{}).
			Where("id = ? AND completed_at IS NULL", ap.ID).
			Updates(map[string]any{
				"status":       string(domain.StatusCompleted),
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already completed once; nothing left to accrue
			return nil
		}

		ap.Status = string(domain.StatusCompleted)
		ap.CompletedAt = &now

		if ap.ExternEmployeeID == nil {
			return nil
		}

		hist := models.ExternEmployeeHistory{
			ExternEmployeeID: *ap.ExternEmployeeID,
			ClientID:         ap.ClientID,
			AppointmentID:    ap.ID,
			CarsWashed:       1,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&hist).Error
	})
}

func (r *AppointmentGormRepository) SoftDeleteDomicile(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentDomicile{}).
		Where("id = ?", id).
		Update("status", string(domain.StatusDeleted))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Location
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateLocation(
	ctx context.Context,
	ap *models.AppointmentLocation,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetLocation(
	ctx context.Context,
	id uint,
) (*models.AppointmentLocation, error) {

	var ap models.AppointmentLocation
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListLocation(
	ctx context.Context,
	f domain.LocationFilter,
) ([]models.AppointmentLocation, error) {

	q := r.db.WithContext(ctx).Model(&models.AppointmentLocation{}).Preload("Client")

	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	} else if !f.IncludeDeleted {
		q = q.Where("status <> ?", string(domain.StatusDeleted))
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}

	var aps []models.AppointmentLocation
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) UpdateLocation(
	ctx context.Context,
	ap *models.AppointmentLocation,
) error {
	return r.db.WithContext(ctx).
		Omit("Client", "CompletedAt").
		Save(ap).Error
}

// CompleteLocation mirrors CompleteDomicile. Location appointments carry no
// assignment, so accrual credits the lowest-id intern employee; the policy
// lives only here. With no intern employees on file the completion still
// succeeds and accrual is skipped.
func (r *AppointmentGormRepository) CompleteLocation(
	ctx context.Context,
	ap *models.AppointmentLocation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		res := tx.Model(&models.AppointmentLocation{}).
			Where("id = ? AND completed_at IS NULL", ap.ID).
			Updates(map[string]any{
				"status":       string(domain.StatusCompleted),
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		ap.Status = string(domain.StatusCompleted)
		ap.CompletedAt = &now

		emp, err := r.firstInternEmployee(tx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		hist := models.InternEmployeeHistory{
			InternEmployeeID: emp.ID,
			ClientID:         ap.ClientID,
			AppointmentID:    ap.ID,
			CarsWashed:       1,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&hist).Error
	})
}

func (r *AppointmentGormRepository) firstInternEmployee(tx *gorm.DB) (*models.InternEmployee, error) {
	var emp models.InternEmployee
	if err := tx.Order("id ASC").First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *AppointmentGormRepository) SoftDeleteLocation(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AppointmentLocation{}).
		Where("id = ?", id).
		Update("status", string(domain.StatusDeleted))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Projections
// --------------------------------------------------

type groupCount struct {
	Key   string
	Count int64
}

func (r *AppointmentGormRepository) StatsForDay(
	ctx context.Context,
	kind domain.Kind,
	dayStart, dayEnd time.Time,
) (*domain.Stats, error) {

	stats := &domain.Stats{
		StatusBreakdown:   map[string]int64{},
		WashTypeBreakdown: map[string]int64{},
	}

	base := func() *gorm.DB {
		if kind == domain.KindDomicile {
			return r.db.WithContext(ctx).
				Model(&models.AppointmentDomicile{}).
				Where("time >= ? AND time < ?", dayStart, dayEnd)
		}
		return r.db.WithContext(ctx).
			Model(&models.AppointmentLocation{}).
			Where("date >= ? AND date < ?", dayStart, dayEnd)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var byStatus []groupCount
	if err := base().
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		stats.StatusBreakdown[row.Key] = row.Count
	}

	var byWashType []groupCount
	if err := base().
		Select("wash_type AS key, COUNT(*) AS count").
		Group("wash_type").
		Scan(&byWashType).Error; err != nil {
		return nil, err
	}
	for _, row := range byWashType {
		stats.WashTypeBreakdown[row.Key] = row.Count
	}

	if kind == domain.KindDomicile {
		if err := base().
			Where("extern_employee_id IS NOT NULL").
			Distinct("extern_employee_id").
			Count(&stats.DistinctEmployeeCount).Error; err != nil {
			return nil, err
		}
	} else {
		if err := r.db.WithContext(ctx).
			Model(&models.InternEmployeeHistory{}).
			Joins("JOIN appointment_locations ON appointment_locations.id = intern_employee_histories.appointment_id").
			Where("appointment_locations.date >= ? AND appointment_locations.date < ?", dayStart, dayEnd).
			Distinct("intern_employee_histories.intern_employee_id").
			Count(&stats.DistinctEmployeeCount).Error; err != nil {
			return nil, err
		}
	}

	return stats, nil
}

func (r *AppointmentGormRepository) RevenueForDay(
	ctx context.Context,
	kind domain.Kind,
	dayStart, dayEnd time.Time,
) (*domain.Revenue, error) {

	var rev domain.Revenue

	q := r.db.WithContext(ctx)
	if kind == domain.KindDomicile {
		q = q.Model(&models.AppointmentDomicile{}).
			Where("time >= ? AND time < ?", dayStart, dayEnd)
	} else {
		q = q.Model(&models.AppointmentLocation{}).
			Where("date >= ? AND date < ?", dayStart, dayEnd)
	}
	q = q.Where("status = ?", string(domain.StatusCompleted))

	row := struct {
		Total float64
		Count int64
	}{}
	if err := q.
		Select("COALESCE(SUM(price), 0) AS total, COUNT(*) AS count").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	rev.TotalRevenue = row.Total
	rev.AppointmentCount = row.Count
	return &rev, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *AppointmentGormRepository) ListExternHistory(
	ctx context.Context,
	employeeID uint,
) ([]models.ExternEmployeeHistory, error) {

	var rows []models.ExternEmployeeHistory
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Appointment").
		Where("extern_employee_id = ?", employeeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListInternHistory(
	ctx context.Context,
	employeeID uint,
) ([]models.InternEmployeeHistory, error) {

	var rows []models.InternEmployeeHistory
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Appointment").
		Where("intern_employee_id = ?", employeeID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
