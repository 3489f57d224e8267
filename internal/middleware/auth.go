package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/washpoint/carwash-api/internal/auth"
	"github.com/washpoint/carwash-api/internal/domain/principal"
)

const ContextPrincipal = "principal"

// AuthMiddleware parses the bearer access token, resolves the embedded
// (id, role) pair to a concrete principal row and attaches it to the
// request context. Any failure along the way is a 401; role checks are a
// separate concern (see RequireRole).
func AuthMiddleware(tokens *auth.TokenService, resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims, err := tokens.ParseAccess(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		p, err := resolver.Resolve(c.Request.Context(), claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_principal"})
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// RequireRole gates an endpoint to exactly one role. An authenticated
// principal with any other role gets a 403, never an implicit elevation.
func RequireRole(role principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
			return
		}
		if !p.Is(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) *principal.Principal {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil
	}
	p, ok := v.(*principal.Principal)
	if !ok {
		return nil
	}
	return p
}
