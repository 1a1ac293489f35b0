package common

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signToken issues a token the way the dashboard auth service does.
func signToken(m *JWTManager, userID, brandID uint, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:  userID,
		BrandID: brandID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "promptly",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
