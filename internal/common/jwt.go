package common

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vanshaj8/Promptly/internal/config"
)

// Claims identifies the brand staff member behind a request.
// Tokens are issued by the dashboard auth service, this package only validates them.
type Claims struct {
	UserID  uint `json:"user_id"`
	BrandID uint `json:"brand_id"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{secret: []byte(cfg.Auth.JWTSecret)}
}

func (m *JWTManager) ValidToken(tokenString string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.BrandID == 0 {
		return nil, errors.New("token carries no brand")
	}
	return claims, nil
}

type claimsKey struct{}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok && claims != nil
}
