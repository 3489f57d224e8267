package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/models"
)

// fakeStore holds the four identity tables as maps. Ids may collide across
// tables, just like the real disjoint tables.
type fakeStore struct {
	clients map[uint]*models.Client
	externs map[uint]*models.ExternEmployee
	interns map[uint]*models.InternEmployee
	admins  map[uint]*models.Admin
}

func (s *fakeStore) ClientByID(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := s.clients[id]; ok {
		return c, nil
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) ClientByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range s.clients {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) ExternEmployeeByID(_ context.Context, id uint) (*models.ExternEmployee, error) {
	if e, ok := s.externs[id]; ok {
		return e, nil
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) ExternEmployeeByEmail(_ context.Context, email string) (*models.ExternEmployee, error) {
	for _, e := range s.externs {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) InternEmployeeByID(_ context.Context, id uint) (*models.InternEmployee, error) {
	if e, ok := s.interns[id]; ok {
		return e, nil
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) InternEmployeeByEmail(_ context.Context, email string) (*models.InternEmployee, error) {
	for _, e := range s.interns {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) AdminByID(_ context.Context, id uint) (*models.Admin, error) {
	if a, ok := s.admins[id]; ok {
		return a, nil
	}
	return nil, ErrPrincipalNotFound
}

func (s *fakeStore) AdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range s.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, ErrPrincipalNotFound
}

func collidingStore() *fakeStore {
	return &fakeStore{
		clients: map[uint]*models.Client{
			5: {ID: 5, FullName: "Client Five", Email: "client5@example.com"},
		},
		externs: map[uint]*models.ExternEmployee{
			5: {ID: 5, FullName: "Extern Five", Email: "extern5@example.com"},
		},
		interns: map[uint]*models.InternEmployee{},
		admins:  map[uint]*models.Admin{},
	}
}

func TestResolveRoleIsolationWithCollidingIDs(t *testing.T) {
	r := NewResolver(collidingStore())
	ctx := context.Background()

	asClient, err := r.Resolve(ctx, &AccessClaims{UserID: 5, UserType: "client"})
	if err != nil {
		t.Fatal(err)
	}
	asExtern, err := r.Resolve(ctx, &AccessClaims{UserID: 5, UserType: "extern_employee"})
	if err != nil {
		t.Fatal(err)
	}

	if asClient.Role != principal.RoleClient || asClient.FullName != "Client Five" {
		t.Errorf("client resolve = %+v", asClient)
	}
	if asExtern.Role != principal.RoleExternEmployee || asExtern.FullName != "Extern Five" {
		t.Errorf("extern resolve = %+v", asExtern)
	}

	// same id, different tables: the two principals must never mix
	if asClient.Email == asExtern.Email {
		t.Error("colliding ids resolved to the same identity")
	}
}

func TestResolveClientEmailFallback(t *testing.T) {
	store := collidingStore()
	// a social-login client whose token id does not match the table id
	store.clients[90] = &models.Client{ID: 90, FullName: "Shadow", Email: "shadow@example.com"}

	r := NewResolver(store)
	ctx := context.Background()

	p, err := r.Resolve(ctx, &AccessClaims{
		UserID:   777, // no client row with this id
		UserType: "client",
		Email:    "shadow@example.com",
	})
	if err != nil {
		t.Fatalf("email fallback failed: %v", err)
	}
	if p.ID != 90 {
		t.Errorf("resolved id = %d, want the table row's 90", p.ID)
	}
}

func TestResolveNoFallbackForEmployees(t *testing.T) {
	r := NewResolver(collidingStore())

	_, err := r.Resolve(context.Background(), &AccessClaims{
		UserID:   777,
		UserType: "extern_employee",
		Email:    "extern5@example.com", // exists, but employees never fall back
	})
	if !errors.Is(err, ErrPrincipalNotFound) {
		t.Errorf("err = %v, want ErrPrincipalNotFound", err)
	}
}

func TestResolveMalformedAndUnknown(t *testing.T) {
	r := NewResolver(collidingStore())
	ctx := context.Background()

	cases := []struct {
		name   string
		claims *AccessClaims
		want   error
	}{
		{"nil claims", nil, ErrMalformedToken},
		{"zero id", &AccessClaims{UserID: 0, UserType: "client"}, ErrMalformedToken},
		{"empty type", &AccessClaims{UserID: 5, UserType: ""}, ErrMalformedToken},
		{"unknown role", &AccessClaims{UserID: 5, UserType: "superuser"}, ErrUnknownRole},
	}

	for _, tc := range cases {
		if _, err := r.Resolve(ctx, tc.claims); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}
