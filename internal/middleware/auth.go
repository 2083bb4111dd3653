package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bytebites/backend/internal/audit"
	ierr "github.com/bytebites/backend/internal/errors"
	"github.com/bytebites/backend/internal/types"
)

// Context keys set by AuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.TokenClaims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the principal on the gin context.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := validator.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID())
		c.Set(ContextUsername, claims.Name)
		c.Next()
	}
}

// ActorFromContext returns the authenticated principal, if any.
func ActorFromContext(c *gin.Context) (audit.Actor, bool) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return audit.Actor{}, false
	}
	return audit.Actor{ID: userID, Name: c.GetString(ContextUsername)}, true
}

func abortUnauthorized(c *gin.Context, hint string) {
	_ = c.Error(ierr.NewError("unauthorized request").
		WithHint(hint).
		Mark(ierr.ErrUnauthorized))
	c.Abort()
}
