package service

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusworks/job-board/internal/core/domain"
)

// TokenVerifier resolves a bearer token into a Principal. It is the single
// boundary where the credential provider's verification result is consumed;
// every request re-verifies, nothing is cached.
type TokenVerifier struct {
	secret string
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: secret}
}

func (v *TokenVerifier) Verify(_ context.Context, token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(v.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !tkn.Valid {
		return nil, fmt.Errorf("verify token: %w", jwt.ErrTokenUnverifiable)
	}

	id, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" {
		return nil, fmt.Errorf("verify token: missing subject claim")
	}

	return &domain.Principal{ID: id, Email: email, Role: role}, nil
}
