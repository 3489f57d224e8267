package appointment

import (
	"context"
	"time"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/timezone"
)

// AppointmentStats serves the admin projections. Both queries are pure
// read-side; an empty date means "today" in the configured timezone.
type AppointmentStats struct {
	repo domain.Repository
	tz   string
}

func NewAppointmentStats(repo domain.Repository, tz string) *AppointmentStats {
	return &AppointmentStats{repo: repo, tz: tz}
}

func (uc *AppointmentStats) day(dateStr string) (time.Time, time.Time, error) {
	loc := timezone.Location(uc.tz)

	t := timezone.NowIn(uc.tz)
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, loc)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date")
		}
		t = parsed
	}

	start, end := timezone.DayBounds(t)
	return start, end, nil
}

func (uc *AppointmentStats) Stats(
	ctx context.Context,
	kind domain.Kind,
	dateStr string,
) (*domain.Stats, error) {

	start, end, err := uc.day(dateStr)
	if err != nil {
		return nil, err
	}
	return uc.repo.StatsForDay(ctx, kind, start, end)
}

func (uc *AppointmentStats) Revenue(
	ctx context.Context,
	kind domain.Kind,
	dateStr string,
) (*domain.Revenue, error) {

	start, end, err := uc.day(dateStr)
	if err != nil {
		return nil, err
	}
	return uc.repo.RevenueForDay(ctx, kind, start, end)
}
