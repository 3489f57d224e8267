package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/domain/principal"
	"github.com/washpoint/carwash-api/internal/httperr"
	"github.com/washpoint/carwash-api/internal/httpresp"
	"github.com/washpoint/carwash-api/internal/infra/repository"
	"github.com/washpoint/carwash-api/internal/models"
	"github.com/washpoint/carwash-api/internal/validators"
)

// AuthHandler owns the four per-table login/register endpoints plus the
// refresh/logout pair. There is deliberately no unified login: each role has
// its own identity table and its own entrypoint.
type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService
	log    *zap.Logger
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// --------- Login ---------

// Login handles /auth/:role/login. The role segment picks the table; a
// missing account is a 404 and a wrong password a 401, matching the
// distinction the mobile clients rely on.
func (h *AuthHandler) Login(c *gin.Context) {
	role, ok := principal.ParseRole(c.Param("role"))
	if !ok {
		httperr.NotFound(c, "unknown_role", "unknown login role")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	p, hash, err := h.lookup(c, role, email)
	if err != nil {
		if errors.Is(err, auth.ErrPrincipalNotFound) {
			httperr.NotFound(c, "email_not_found", "no account with this email")
			return
		}
		writeError(c, h.log, err)
		return
	}

	if !auth.VerifyPassword(req.Password, hash) {
		httperr.Unauthorized(c, "invalid_credentials", "wrong password")
		return
	}

	pair, err := h.tokens.Issue(p)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":    pair.Access,
		"refresh":   pair.Refresh,
		"user_type": string(p.Role),
		"user_id":   p.ID,
		"full_name": p.FullName,
	})
}

func (h *AuthHandler) lookup(c *gin.Context, role principal.Role, email string) (*principal.Principal, string, error) {
	store := repository.NewPrincipalGormRepository(h.db)
	ctx := c.Request.Context()

	switch role {
	case principal.RoleClient:
		row, err := store.ClientByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &principal.Principal{ID: row.ID, Role: role, FullName: row.FullName, Email: row.Email}, row.PasswordHash, nil
	case principal.RoleExternEmployee:
		row, err := store.ExternEmployeeByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &principal.Principal{ID: row.ID, Role: role, FullName: row.FullName, Email: row.Email}, row.PasswordHash, nil
	case principal.RoleInternEmployee:
		row, err := store.InternEmployeeByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &principal.Principal{ID: row.ID, Role: role, FullName: row.FullName, Email: row.Email}, row.PasswordHash, nil
	case principal.RoleAdmin:
		row, err := store.AdminByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		return &principal.Principal{ID: row.ID, Role: role, FullName: row.FullName, Email: row.Email}, row.PasswordHash, nil
	}
	return nil, "", auth.ErrPrincipalNotFound
}

// --------- Register ---------

func (h *AuthHandler) Register(c *gin.Context) {
	role, ok := principal.ParseRole(c.Param("role"))
	if !ok {
		httperr.NotFound(c, "unknown_role", "unknown registration role")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := h.validateRegistration(role, &req, email); err != nil {
		writeError(c, h.log, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	id, err := h.createPrincipal(c, role, &req, email, hashed)
	if err != nil {
		writeError(c, h.log, repository.CreateConflictError(err))
		return
	}

	httpresp.Created(c, gin.H{
		"id":        id,
		"user_type": string(role),
		"full_name": req.FullName,
		"email":     email,
	})
}

func (h *AuthHandler) validateRegistration(role principal.Role, req *RegisterRequest, email string) error {
	if err := validators.ValidateEmail(email); err != nil {
		return err
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		return err
	}

	// admins have no phone or age on file
	if role == principal.RoleAdmin {
		return nil
	}

	if err := validators.ValidatePhone(req.Phone); err != nil {
		return err
	}
	if role != principal.RoleInternEmployee {
		if err := validators.ValidateAge(req.Age); err != nil {
			return err
		}
	}
	return nil
}

func (h *AuthHandler) createPrincipal(c *gin.Context, role principal.Role, req *RegisterRequest, email, hash string) (uint, error) {
	ctx := c.Request.Context()

	switch role {
	case principal.RoleClient:
		row := models.Client{FullName: req.FullName, Email: email, PasswordHash: hash, Phone: req.Phone, Age: req.Age}
		if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case principal.RoleExternEmployee:
		row := models.ExternEmployee{FullName: req.FullName, Email: email, PasswordHash: hash, Phone: req.Phone, Age: req.Age}
		if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case principal.RoleInternEmployee:
		row := models.InternEmployee{FullName: req.FullName, Email: email, PasswordHash: hash, Phone: req.Phone}
		if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	case principal.RoleAdmin:
		row := models.Admin{FullName: req.FullName, Email: email, PasswordHash: hash}
		if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
			return 0, err
		}
		return row.ID, nil
	}
	return 0, auth.ErrPrincipalNotFound
}

// --------- Refresh / Logout ---------

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "refresh token required")
		return
	}

	access, _, err := h.tokens.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		// revoked, expired and malformed all collapse to 400: the caller
		// must log in again either way
		httperr.BadRequest(c, "invalid_refresh_token", "refresh token is invalid or revoked")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

// Logout blacklists the refresh token. The asymmetry is deliberate: access
// tokens are stateless and stay valid until expiry, only future refreshes
// are blocked.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "refresh token required")
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), req.Refresh); err != nil {
		httperr.BadRequest(c, "invalid_refresh_token", "refresh token is invalid")
		return
	}

	c.Status(http.StatusResetContent)
}
