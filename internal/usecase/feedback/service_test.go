package feedback

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/washpoint/carwash-api/internal/audit"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/models"
)

type fakeFeedbackRepo struct {
	nextID    uint
	feedbacks map[uint]*models.Feedback
	ratings   []models.Rating

	finalRatings map[uint]float64
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{
		nextID:       1,
		feedbacks:    make(map[uint]*models.Feedback),
		finalRatings: make(map[uint]float64),
	}
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *models.Feedback) error {
	fb.ID = f.nextID
	f.nextID++
	cp := *fb
	f.feedbacks[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) GetByID(_ context.Context, id uint) (*models.Feedback, error) {
	fb, ok := f.feedbacks[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *fb
	return &cp, nil
}

func (f *fakeFeedbackRepo) List(_ context.Context, approved *bool) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, fb := range f.feedbacks {
		if approved != nil && fb.Approved != *approved {
			continue
		}
		out = append(out, *fb)
	}
	return out, nil
}

func (f *fakeFeedbackRepo) SetApproved(_ context.Context, id uint, approved bool) error {
	fb, ok := f.feedbacks[id]
	if !ok {
		return ErrNotFound
	}
	fb.Approved = approved
	return nil
}

func (f *fakeFeedbackRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.feedbacks[id]; !ok {
		return ErrNotFound
	}
	delete(f.feedbacks, id)
	return nil
}

func (f *fakeFeedbackRepo) Totals(_ context.Context) (*Totals, error) {
	t := &Totals{}
	var sum int
	for _, fb := range f.feedbacks {
		t.Total++
		if fb.Approved {
			t.ApprovedCount++
		}
		sum += fb.Rating
	}
	if t.Total > 0 {
		t.AverageRating = float64(sum) / float64(t.Total)
	}
	return t, nil
}

func (f *fakeFeedbackRepo) CreateRating(_ context.Context, rt *models.Rating) error {
	rt.ID = f.nextID
	f.nextID++
	f.ratings = append(f.ratings, *rt)
	return nil
}

func (f *fakeFeedbackRepo) ListRatings(_ context.Context, externEmployeeID uint) ([]models.Rating, error) {
	var out []models.Rating
	for _, rt := range f.ratings {
		if rt.ExternEmployeeID == externEmployeeID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (f *fakeFeedbackRepo) RecomputeFinalRating(_ context.Context, externEmployeeID uint) (float64, error) {
	var sum, n int
	for _, rt := range f.ratings {
		if rt.ExternEmployeeID == externEmployeeID {
			sum += rt.Score
			n++
		}
	}
	final := 0.0
	if n > 0 {
		final = float64(sum) / float64(n)
	}
	f.finalRatings[externEmployeeID] = final
	return final, nil
}

func testService(repo Repository) *Service {
	return NewService(repo, audit.NewDispatcher(audit.New(nil), zap.NewNop()))
}

func TestSubmitStartsUnapproved(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := testService(repo)
	ctx := context.Background()

	fb, err := svc.Submit(ctx, 1, 7, 4, "quick and thorough")
	if err != nil {
		t.Fatal(err)
	}
	if fb.Approved {
		t.Error("new feedback must start unapproved")
	}

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(public) != 0 {
		t.Fatalf("public listing has %d rows before moderation, want 0", len(public))
	}
}

func TestSubmitRejectsOutOfRangeRating(t *testing.T) {
	svc := testService(newFakeFeedbackRepo())

	for _, score := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), 1, 7, score, "x")
		if httperr.BusinessCode(err) != "invalid_rating" {
			t.Errorf("rating %d: err = %v, want invalid_rating", score, err)
		}
	}
}

func TestModerationControlsVisibility(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := testService(repo)
	ctx := context.Background()

	fb, err := svc.Submit(ctx, 1, 7, 5, "great")
	if err != nil {
		t.Fatal(err)
	}

	approved, err := svc.Moderate(ctx, 99, fb.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if !approved.Approved {
		t.Fatal("moderate(true) did not approve")
	}

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(public) != 1 {
		t.Fatalf("public listing = %d rows after approval, want 1", len(public))
	}

	// revoking approval hides it again
	if _, err := svc.Moderate(ctx, 99, fb.ID, false); err != nil {
		t.Fatal(err)
	}
	public, _ = svc.ListPublic(ctx)
	if len(public) != 0 {
		t.Fatalf("public listing = %d rows after rejection, want 0", len(public))
	}
}

func TestModerateMissingFeedback(t *testing.T) {
	svc := testService(newFakeFeedbackRepo())

	if _, err := svc.Moderate(context.Background(), 99, 123, true); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSummaryRoundsToOneDecimal(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := testService(repo)
	ctx := context.Background()

	// ratings 4, 4, 5 -> average 4.333... -> 4.3
	for _, score := range []int{4, 4, 5} {
		if _, err := svc.Submit(ctx, 1, 7, score, "x"); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Moderate(ctx, 99, 1, true); err != nil {
		t.Fatal(err)
	}

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Total != 3 || sum.ApprovedCount != 1 || sum.NotApprovedCount != 2 {
		t.Errorf("summary counts = %+v", sum)
	}
	if sum.AverageRating != 4.3 {
		t.Errorf("average = %v, want 4.3", sum.AverageRating)
	}
}

func TestSummaryEmpty(t *testing.T) {
	svc := testService(newFakeFeedbackRepo())

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if sum.Total != 0 || sum.AverageRating != 0 {
		t.Errorf("empty summary = %+v, want zeros", sum)
	}
}

func TestSubmitRatingRecomputesFinal(t *testing.T) {
	repo := newFakeFeedbackRepo()
	svc := testService(repo)
	ctx := context.Background()

	if _, final, err := svc.SubmitRating(ctx, 1, 7, 4); err != nil || final != 4 {
		t.Fatalf("first rating: final = %v, err = %v", final, err)
	}
	if _, final, err := svc.SubmitRating(ctx, 2, 7, 2); err != nil || final != 3 {
		t.Fatalf("second rating: final = %v, err = %v", final, err)
	}

	rows, err := svc.ListRatings(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("ratings = %d, want 2", len(rows))
	}

	if _, _, err := svc.SubmitRating(ctx, 1, 7, 9); httperr.BusinessCode(err) != "invalid_rating" {
		t.Errorf("out-of-range score err = %v, want invalid_rating", err)
	}
}
