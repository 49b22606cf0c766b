package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adeyemio/simple-auth-api/internal/user"
)

type jwtService struct {
	secretKey []byte
	issuer    string
	audience  string
	expiry    time.Duration
}

// NewJWTService creates a token service signing with HMAC-SHA-512. The
// secret, issuer, audience and expiry come from process configuration and
// are fixed for the lifetime of the service.
func NewJWTService(secret, issuer, audience string, expiry time.Duration) TokenService {
	return &jwtService{
		secretKey: []byte(secret),
		issuer:    issuer,
		audience:  audience,
		expiry:    expiry,
	}
}

func (s *jwtService) GenerateToken(u *user.User, roles []string) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Roles:       roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.Email,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(s.secretKey)
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validating the algorithm is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
