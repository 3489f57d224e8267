package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/models"
)

type stubStore struct{}

func (stubStore) ClientByID(_ context.Context, id uint) (*models.Client, error) {
	if id == 1 {
		return &models.Client{ID: 1, FullName: "C", Email: "c@example.com"}, nil
	}
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) ClientByEmail(context.Context, string) (*models.Client, error) {
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) ExternEmployeeByID(context.Context, uint) (*models.ExternEmployee, error) {
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) ExternEmployeeByEmail(context.Context, string) (*models.ExternEmployee, error) {
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) InternEmployeeByID(context.Context, uint) (*models.InternEmployee, error) {
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) InternEmployeeByEmail(context.Context, string) (*models.InternEmployee, error) {
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) AdminByID(_ context.Context, id uint) (*models.Admin, error) {
	if id == 2 {
		return &models.Admin{ID: 2, FullName: "A", Email: "a@example.com"}, nil
	}
	return nil, auth.ErrPrincipalNotFound
}

func (stubStore) AdminByEmail(context.Context, string) (*models.Admin, error) {
	return nil, auth.ErrPrincipalNotFound
}

type noopBlacklist struct{}

func (noopBlacklist) Revoke(context.Context, string, time.Duration) error { return nil }

func (noopBlacklist) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func testRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	resolver := auth.NewResolver(stubStore{})
	tokens := auth.NewTokenService("test-secret", time.Hour, 24*time.Hour, noopBlacklist{}, resolver)

	r := gin.New()
	secured := r.Group("/", AuthMiddleware(tokens, resolver))
	secured.GET("/any", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": string(CurrentPrincipal(c).Role)})
	})
	secured.GET("/admin-only", RequireRole(principal.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, tokens
}

func do(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsUnauthenticated(t *testing.T) {
	r, _ := testRouter(t)

	if w := do(r, "/any", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}
	if w := do(r, "/any", "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsUnknownPrincipal(t *testing.T) {
	r, tokens := testRouter(t)

	// a validly-signed token whose id matches no client row
	pair, err := tokens.Issue(&principal.Principal{ID: 999, Role: principal.RoleClient})
	if err != nil {
		t.Fatal(err)
	}
	if w := do(r, "/any", pair.Access); w.Code != http.StatusUnauthorized {
		t.Errorf("orphan token: status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	r, tokens := testRouter(t)

	clientPair, err := tokens.Issue(&principal.Principal{ID: 1, Role: principal.RoleClient})
	if err != nil {
		t.Fatal(err)
	}
	adminPair, err := tokens.Issue(&principal.Principal{ID: 2, Role: principal.RoleAdmin})
	if err != nil {
		t.Fatal(err)
	}

	if w := do(r, "/any", clientPair.Access); w.Code != http.StatusOK {
		t.Errorf("client on open route: status = %d, want 200", w.Code)
	}
	if w := do(r, "/admin-only", clientPair.Access); w.Code != http.StatusForbidden {
		t.Errorf("client on admin route: status = %d, want 403", w.Code)
	}
	if w := do(r, "/admin-only", adminPair.Access); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
}
