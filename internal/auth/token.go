package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers any signature, format, or expiry failure.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity embedded in access and refresh tokens.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Ver   int    `json:"ver"`
	jwt.RegisteredClaims
}

// Sign creates a compact HS256 token for the given claims.
func Sign(claims Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse verifies an HS256 token and returns its claims.
func Parse(tokenStr, secret string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// NewClaims builds claims for a user valid for ttl from now.
func NewClaims(userID, email, role string, ver int, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		Email: email,
		Role:  role,
		Ver:   ver,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
