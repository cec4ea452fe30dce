// Package auth issues and checks the short-lived caller tokens vaultctl
// attaches to every request when vaultd runs with a shared secret.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vivault/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CallerSubject identifies tokens minted by the command-line client.
	CallerSubject = "vaultctl"

	DefaultTokenValidity = time.Minute
)

// GenerateToken signs an HS256 token for subject that expires after
// validity.
func GenerateToken(subject string, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken checks the signature and expiry and returns the subject.
// Any failure is reported as common.ErrInvalidToken.
func ValidateToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: expired", common.ErrInvalidToken)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}
