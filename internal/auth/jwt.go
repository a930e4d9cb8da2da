// Package auth validates bearer tokens issued by the external identity
// provider and extracts the caller's principal.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWTValidator checks HS256 tokens and returns their subject.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator.
// secret must be at least 32 characters for HS256 security.
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// ValidateToken parses and validates a token. Returns the subject claim,
// which is used verbatim as the caller's principal.
func (v *JWTValidator) ValidateToken(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.New("token is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token claims")
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}
