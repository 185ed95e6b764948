// Package jwttoken implements bearer token issuance and verification with
// HMAC-signed JWTs.
package jwttoken

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// Service implements ports.TokenService using HS256-signed JWTs. The subject
// claim carries the user identifier; nothing else about the user is embedded.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the given signing secret and token
// lifetime.
func NewService(secret string, ttl time.Duration) Service {
	return Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token for the subject, expiring after the
// configured lifetime.
func (s Service) Issue(subjectID kernel.UUID) (string, error) {
	if err := subjectID.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the token signature and expiry and returns the embedded
// subject identity.
func (s Service) Validate(tokenString string) (kernel.UUID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return kernel.UUID{}, ports.ErrTokenExpired
		}
		return kernel.UUID{}, ports.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return kernel.UUID{}, ports.ErrTokenInvalid
	}

	subjectID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, ports.ErrTokenInvalid
	}

	return subjectID, nil
}
