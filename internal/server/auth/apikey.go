// Package auth issues and checks the API keys consoles present to the
// credential store.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identify the console a key was issued to.
type Claims struct {
	jwt.RegisteredClaims
	ConsoleID string
}

// GenerateAPIKey signs an HS256 key for consoleID. A zero validity issues a
// key that never expires.
func GenerateAPIKey(consoleID string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Subject:  consoleID,
		},
		ConsoleID: consoleID,
	}
	if validity != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// ParseAPIKey validates key and returns the console id it was issued to.
func ParseAPIKey(key string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(key, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.ConsoleID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.ConsoleID, nil
}
