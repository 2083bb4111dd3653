package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the claims in a JWT token. The subject carries the
// user id and Name the display name recorded in audit fields.
type TokenClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// UserID returns the subject claim
func (c *TokenClaims) UserID() string {
	return c.Subject
}
