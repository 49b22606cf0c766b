package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/adeyemio/simple-auth-api/internal/user"
)

// Claims is the full claim set embedded in every issued token. The custom
// claim names are part of the public contract: downstream validators key on
// them for route-level access checks.
type Claims struct {
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Roles       []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claim set carries the named role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	GenerateToken(u *user.User, roles []string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
