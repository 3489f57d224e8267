package auth

import (
	"context"
	"errors"

	"github.com/washpoint/carwash-api/internal/domain/principal"
)

var (
	ErrMalformedToken = errors.New("token contains no valid user identification")
	ErrUnknownRole    = errors.New("unknown user type")
)

// Resolver turns decoded token claims into a concrete Principal by looking
// up the table named by the role tag.
type Resolver struct {
	store PrincipalStore
}

func NewResolver(store PrincipalStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve dispatches on the role tag. For the client role only, a miss on
// the embedded id falls back to lookup by the embedded email: social-login
// clients are created keyed by email and their token id may not match the
// Client table's id. No other role gets the fallback.
func (r *Resolver) Resolve(ctx context.Context, claims *AccessClaims) (*principal.Principal, error) {
	if claims == nil || claims.UserID == 0 || claims.UserType == "" {
		return nil, ErrMalformedToken
	}

	role, ok := principal.ParseRole(claims.UserType)
	if !ok {
		return nil, ErrUnknownRole
	}

	switch role {
	case principal.RoleClient:
		client, err := r.store.ClientByID(ctx, claims.UserID)
		if err != nil {
			if claims.Email != "" {
				client, err = r.store.ClientByEmail(ctx, claims.Email)
			}
			if err != nil {
				return nil, ErrPrincipalNotFound
			}
		}
		return &principal.Principal{
			ID:       client.ID,
			Role:     role,
			FullName: client.FullName,
			Email:    client.Email,
		}, nil

	case principal.RoleExternEmployee:
		emp, err := r.store.ExternEmployeeByID(ctx, claims.UserID)
		if err != nil {
			return nil, ErrPrincipalNotFound
		}
		return &principal.Principal{
			ID:       emp.ID,
			Role:     role,
			FullName: emp.FullName,
			Email:    emp.Email,
		}, nil

	case principal.RoleInternEmployee:
		emp, err := r.store.InternEmployeeByID(ctx, claims.UserID)
		if err != nil {
			return nil, ErrPrincipalNotFound
		}
		return &principal.Principal{
			ID:       emp.ID,
			Role:     role,
			FullName: emp.FullName,
			Email:    emp.Email,
		}, nil

	case principal.RoleAdmin:
		admin, err := r.store.AdminByID(ctx, claims.UserID)
		if err != nil {
			return nil, ErrPrincipalNotFound
		}
		return &principal.Principal{
			ID:       admin.ID,
			Role:     role,
			FullName: admin.FullName,
			Email:    admin.Email,
		}, nil
	}

	return nil, ErrUnknownRole
}
