package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/washpoint/carwash-api/internal/domain/appointment"
	"github.com/washpoint/carwash-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. It reproduces
// the store-level guarantees the use cases rely on: the claim is a
// compare-and-swap on Pending, and completion accrues a history row at most
// once per appointment.
type fakeRepo struct {
	mu sync.Mutex

	nextID    uint
	domiciles map[uint]*models.AppointmentDomicile
	locations map[uint]*models.AppointmentLocation

	externHistory []models.ExternEmployeeHistory
	internHistory []models.InternEmployeeHistory

	// ids of the intern staff; location completions credit the lowest
	internIDs []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		nextID:    1,
		domiciles: make(map[uint]*models.AppointmentDomicile),
		locations: make(map[uint]*models.AppointmentLocation),
	}
}

func (f *fakeRepo) CreateDomicile(_ context.Context, ap *models.AppointmentDomicile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.domiciles[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetDomicile(_ context.Context, id uint) (*models.AppointmentDomicile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.domiciles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListDomicile(_ context.Context, filter domain.DomicileFilter) ([]models.AppointmentDomicile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.AppointmentDomicile
	for _, ap := range f.domiciles {
		if !filter.IncludeDeleted && ap.Status == string(domain.StatusDeleted) {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		if filter.ClientID != nil && ap.ClientID != *filter.ClientID {
			continue
		}
		if filter.ExternEmployeeID != nil {
			if ap.ExternEmployeeID == nil || *ap.ExternEmployeeID != *filter.ExternEmployeeID {
				continue
			}
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ClaimDomicile(_ context.Context, appointmentID uint, employeeID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.domiciles[appointmentID]
	if !ok {
		return domain.ErrNotFound
	}
	if ap.Status != string(domain.StatusPending) || ap.ExternEmployeeID != nil {
		return domain.ErrNotPending
	}

	id := employeeID
	ap.ExternEmployeeID = &id
	ap.Status = string(domain.StatusInProgress)
	return nil
}

func (f *fakeRepo) UpdateDomicile(_ context.Context, ap *models.AppointmentDomicile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.domiciles[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}

	cp := *ap
	cp.CompletedAt = stored.CompletedAt // the update path never touches the completion mark
	f.domiciles[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) CompleteDomicile(_ context.Context, ap *models.AppointmentDomicile) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.domiciles[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.CompletedAt != nil {
		return nil
	}

	now := time.Now()
	stored.CompletedAt = &now
	stored.Status = string(domain.StatusCompleted)

	if stored.ExternEmployeeID == nil {
		return nil
	}
	for _, h := range f.externHistory {
		if h.ExternEmployeeID == *stored.ExternEmployeeID &&
			h.ClientID == stored.ClientID &&
			h.AppointmentID == stored.ID {
			return nil
		}
	}
	f.externHistory = append(f.externHistory, models.ExternEmployeeHistory{
		ID:               uint(len(f.externHistory) + 1),
		ExternEmployeeID: *stored.ExternEmployeeID,
		ClientID:         stored.ClientID,
		AppointmentID:    stored.ID,
		CarsWashed:       1,
	})
	return nil
}

func (f *fakeRepo) SoftDeleteDomicile(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.domiciles[id]
	if !ok {
		return domain.ErrNotFound
	}
	ap.Status = string(domain.StatusDeleted)
	return nil
}

func (f *fakeRepo) CreateLocation(_ context.Context, ap *models.AppointmentLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.locations[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) GetLocation(_ context.Context, id uint) (*models.AppointmentLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) ListLocation(_ context.Context, filter domain.LocationFilter) ([]models.AppointmentLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.AppointmentLocation
	for _, ap := range f.locations {
		if !filter.IncludeDeleted && ap.Status == string(domain.StatusDeleted) {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		if filter.ClientID != nil && ap.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) UpdateLocation(_ context.Context, ap *models.AppointmentLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.locations[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}

	cp := *ap
	cp.CompletedAt = stored.CompletedAt
	f.locations[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) CompleteLocation(_ context.Context, ap *models.AppointmentLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.locations[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.CompletedAt != nil {
		return nil
	}

	now := time.Now()
	stored.CompletedAt = &now
	stored.Status = string(domain.StatusCompleted)

	if len(f.internIDs) == 0 {
		return nil
	}
	lowest := f.internIDs[0]
	for _, id := range f.internIDs[1:] {
		if id < lowest {
			lowest = id
		}
	}
	for _, h := range f.internHistory {
		if h.InternEmployeeID == lowest &&
			h.ClientID == stored.ClientID &&
			h.AppointmentID == stored.ID {
			return nil
		}
	}
	f.internHistory = append(f.internHistory, models.InternEmployeeHistory{
		ID:               uint(len(f.internHistory) + 1),
		InternEmployeeID: lowest,
		ClientID:         stored.ClientID,
		AppointmentID:    stored.ID,
		CarsWashed:       1,
	})
	return nil
}

func (f *fakeRepo) SoftDeleteLocation(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.locations[id]
	if !ok {
		return domain.ErrNotFound
	}
	ap.Status = string(domain.StatusDeleted)
	return nil
}

func (f *fakeRepo) StatsForDay(_ context.Context, kind domain.Kind, dayStart, dayEnd time.Time) (*domain.Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stats := &domain.Stats{
		StatusBreakdown:   make(map[string]int64),
		WashTypeBreakdown: make(map[string]int64),
	}

	if kind == domain.KindDomicile {
		seen := make(map[uint]bool)
		for _, ap := range f.domiciles {
			if ap.Time.Before(dayStart) || !ap.Time.Before(dayEnd) {
				continue
			}
			stats.Total++
			stats.StatusBreakdown[ap.Status]++
			stats.WashTypeBreakdown[ap.WashType]++
			if ap.ExternEmployeeID != nil {
				seen[*ap.ExternEmployeeID] = true
			}
		}
		stats.DistinctEmployeeCount = int64(len(seen))
		return stats, nil
	}

	for _, ap := range f.locations {
		if ap.Date.Before(dayStart) || !ap.Date.Before(dayEnd) {
			continue
		}
		stats.Total++
		stats.StatusBreakdown[ap.Status]++
		stats.WashTypeBreakdown[ap.WashType]++
	}
	return stats, nil
}

func (f *fakeRepo) RevenueForDay(_ context.Context, kind domain.Kind, dayStart, dayEnd time.Time) (*domain.Revenue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rev := &domain.Revenue{}

	if kind == domain.KindDomicile {
		for _, ap := range f.domiciles {
			if ap.Time.Before(dayStart) || !ap.Time.Before(dayEnd) {
				continue
			}
			if ap.Status != string(domain.StatusCompleted) {
				continue
			}
			rev.TotalRevenue += ap.Price
			rev.AppointmentCount++
		}
		return rev, nil
	}

	for _, ap := range f.locations {
		if ap.Date.Before(dayStart) || !ap.Date.Before(dayEnd) {
			continue
		}
		if ap.Status != string(domain.StatusCompleted) {
			continue
		}
		rev.TotalRevenue += ap.Price
		rev.AppointmentCount++
	}
	return rev, nil
}

func (f *fakeRepo) ListExternHistory(_ context.Context, employeeID uint) ([]models.ExternEmployeeHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.ExternEmployeeHistory
	for _, h := range f.externHistory {
		if h.ExternEmployeeID == employeeID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListInternHistory(_ context.Context, employeeID uint) ([]models.InternEmployeeHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.InternEmployeeHistory
	for _, h := range f.internHistory {
		if h.InternEmployeeID == employeeID {
			out = append(out, h)
		}
	}
	return out, nil
}
