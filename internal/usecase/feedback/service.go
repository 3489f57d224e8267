package feedback

import (
	"context"
	"math"

	"github.com/washpoint/carwash-api/internal/audit"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, auditDispatcher *audit.Dispatcher) *Service {
	return &Service{repo: repo, audit: auditDispatcher}
}

// Submit records client feedback about an extern employee. It always starts
// unapproved and stays out of the public listing until an admin approves it.
func (s *Service) Submit(
	ctx context.Context,
	clientID uint,
	externEmployeeID uint,
	rating int,
	text string,
) (*models.Feedback, error) {

	if rating < 1 || rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	fb := &models.Feedback{
		ClientID:         clientID,
		ExternEmployeeID: externEmployeeID,
		Rating:           rating,
		Text:             text,
		Approved:         false,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:   &clientID,
		ActorRole: "client",
		Action:    "feedback_submitted",
		Entity:    "feedback",
		EntityID:  &fb.ID,
	})

	return fb, nil
}

func (s *Service) ListPublic(ctx context.Context) ([]models.Feedback, error) {
	approved := true
	return s.repo.List(ctx, &approved)
}

func (s *Service) ListAdmin(ctx context.Context, approved *bool) ([]models.Feedback, error) {
	return s.repo.List(ctx, approved)
}

func (s *Service) Moderate(
	ctx context.Context,
	adminID uint,
	feedbackID uint,
	approved bool,
) (*models.Feedback, error) {

	if _, err := s.repo.GetByID(ctx, feedbackID); err != nil {
		return nil, err
	}
	if err := s.repo.SetApproved(ctx, feedbackID, approved); err != nil {
		return nil, err
	}

	action := "feedback_rejected"
	if approved {
		action = "feedback_approved"
	}
	s.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: "admin",
		Action:    action,
		Entity:    "feedback",
		EntityID:  &feedbackID,
	})

	return s.repo.GetByID(ctx, feedbackID)
}

func (s *Service) Delete(ctx context.Context, adminID uint, feedbackID uint) error {
	if _, err := s.repo.GetByID(ctx, feedbackID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, feedbackID); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		ActorID:   &adminID,
		ActorRole: "admin",
		Action:    "feedback_deleted",
		Entity:    "feedback",
		EntityID:  &feedbackID,
	})
	return nil
}

type Summary struct {
	Total            int64   `json:"total"`
	ApprovedCount    int64   `json:"approved_count"`
	NotApprovedCount int64   `json:"not_approved_count"`
	AverageRating    float64 `json:"average_rating"`
}

// Summary reports moderation totals with the average rating rounded to one
// decimal, or 0 when there is no feedback at all.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if totals.Total > 0 {
		avg = math.Round(totals.AverageRating*10) / 10
	}

	return &Summary{
		Total:            totals.Total,
		ApprovedCount:    totals.ApprovedCount,
		NotApprovedCount: totals.Total - totals.ApprovedCount,
		AverageRating:    avg,
	}, nil
}

// SubmitRating records a simple client score and refreshes the employee's
// derived final rating.
func (s *Service) SubmitRating(
	ctx context.Context,
	clientID uint,
	externEmployeeID uint,
	score int,
) (*models.Rating, float64, error) {

	if score < 1 || score > 5 {
		return nil, 0, httperr.ErrBusiness("invalid_rating")
	}

	rt := &models.Rating{
		ClientID:         clientID,
		ExternEmployeeID: externEmployeeID,
		Score:            score,
	}
	if err := s.repo.CreateRating(ctx, rt); err != nil {
		return nil, 0, err
	}

	final, err := s.repo.RecomputeFinalRating(ctx, externEmployeeID)
	if err != nil {
		return nil, 0, err
	}
	return rt, final, nil
}

func (s *Service) ListRatings(ctx context.Context, externEmployeeID uint) ([]models.Rating, error) {
	return s.repo.ListRatings(ctx, externEmployeeID)
}
