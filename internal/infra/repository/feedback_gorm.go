package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	ucfeedback "github.com/washpoint/carwash-api/internal/usecase/feedback"

	"github.com/washpoint/carwash-api/internal/models"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

func (r *FeedbackGormRepository) Create(ctx context.Context, fb *models.Feedback) error {
	return r.db.WithContext(ctx).Create(fb).Error
}

func (r *FeedbackGormRepository) GetByID(ctx context.Context, id uint) (*models.Feedback, error) {
	var fb models.Feedback
	if err := r.db.WithContext(ctx).First(&fb, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ucfeedback.ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}

func (r *FeedbackGormRepository) List(ctx context.Context, approved *bool) ([]models.Feedback, error) {
	q := r.db.WithContext(ctx).Model(&models.Feedback{})
	if approved != nil {
		q = q.Where("approved = ?", *approved)
	}

	var rows []models.Feedback
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FeedbackGormRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Where("id = ?", id).
		Update("approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ucfeedback.ErrNotFound
	}
	return nil
}

func (r *FeedbackGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Feedback{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ucfeedback.ErrNotFound
	}
	return nil
}

func (r *FeedbackGormRepository) Totals(ctx context.Context) (*ucfeedback.Totals, error) {
	row := struct {
		Total    int64
		Approved int64
		Avg      float64
	}{}

	if err := r.db.WithContext(ctx).
		Model(&models.Feedback{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE approved) AS approved, COALESCE(AVG(rating), 0) AS avg").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &ucfeedback.Totals{
		Total:         row.Total,
		ApprovedCount: row.Approved,
		AverageRating: row.Avg,
	}, nil
}

// -------- Ratings --------

func (r *FeedbackGormRepository) CreateRating(ctx context.Context, rt *models.Rating) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *FeedbackGormRepository) ListRatings(ctx context.Context, externEmployeeID uint) ([]models.Rating, error) {
	var rows []models.Rating
	if err := r.db.WithContext(ctx).
		Where("extern_employee_id = ?", externEmployeeID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *FeedbackGormRepository) RecomputeFinalRating(ctx context.Context, externEmployeeID uint) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("extern_employee_id = ?", externEmployeeID).
		Select("COALESCE(AVG(score), 0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.ExternEmployee{}).
		Where("id = ?", externEmployeeID).
		Update("final_rating", avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}
