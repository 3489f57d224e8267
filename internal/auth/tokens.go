package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/washpoint/carwash-api/internal/domain/principal"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// AccessClaims is the stateless access token payload. Access tokens are not
// checked against the blacklist; they simply expire.
type AccessClaims struct {
	UserID   uint   `json:"user_id"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// RefreshClaims carries a unique TokenID so a single refresh token can be
// revoked. Only refresh tokens are revocable: logout blocks future
// refreshes, it does not recall an already-issued access token.
type RefreshClaims struct {
	UserID   uint   `json:"user_id"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	TokenID  string `json:"token_id"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// BlacklistStore records revoked refresh-token ids until the token would
// have expired on its own.
type BlacklistStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	blacklist  BlacklistStore
	resolver   *Resolver
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, blacklist BlacklistStore, resolver *Resolver) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		blacklist:  blacklist,
		resolver:   resolver,
	}
}

// Issue returns an access/refresh pair for a resolved principal.
func (s *TokenService) Issue(p *principal.Principal) (*TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID:   p.ID,
		UserType: string(p.Role),
		FullName: p.FullName,
		Email:    p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	accessStr, err := access.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		UserID:   p.ID,
		UserType: string(p.Role),
		FullName: p.FullName,
		Email:    p.Email,
		TokenID:  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	refreshStr, err := refresh.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: accessStr, Refresh: refreshStr}, nil
}

func (s *TokenService) ParseAccess(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*AccessClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

func (s *TokenService) ParseRefresh(tokenString string) (*RefreshClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RefreshClaims{}, s.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*RefreshClaims)
	if !ok || !token.Valid || claims.TokenID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Refresh trades a valid, non-revoked refresh token for a new access token.
// The principal is re-resolved against its identity table first: a refresh
// token outlives account deletion, so without this check a deleted account
// could keep minting access tokens until the refresh token expired.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (string, *RefreshClaims, error) {
	claims, err := s.ParseRefresh(refreshToken)
	if err != nil {
		return "", nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return "", nil, err
	}
	if revoked {
		return "", nil, ErrTokenRevoked
	}

	p, err := s.resolver.Resolve(ctx, &AccessClaims{
		UserID:   claims.UserID,
		UserType: claims.UserType,
		Email:    claims.Email,
	})
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID:   p.ID,
		UserType: string(p.Role),
		FullName: p.FullName,
		Email:    p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	accessStr, err := access.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return accessStr, claims, nil
}

// Revoke blacklists a refresh token permanently (until its natural expiry,
// after which the token is rejected as expired anyway).
func (s *TokenService) Revoke(ctx context.Context, refreshToken string) error {
	claims, err := s.ParseRefresh(refreshToken)
	if err != nil {
		return err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Revoke(ctx, claims.TokenID, ttl)
}

func (s *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrTokenInvalid
	}
	return s.secret, nil
}
