package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusworks/job-board/internal/core/domain"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestTokenVerifier_Valid(t *testing.T) {
	v := NewTokenVerifier("secret")
	tok := signToken(t, "secret", jwt.MapClaims{
		"sub":   "u1",
		"email": "emp@example.com",
		"role":  domain.RoleEmployer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	p, err := v.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if p.ID != "u1" || p.Email != "emp@example.com" || p.Role != domain.RoleEmployer {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestTokenVerifier_WrongSecret(t *testing.T) {
	v := NewTokenVerifier("secret")
	tok := signToken(t, "other-secret", jwt.MapClaims{"sub": "u1"})

	if _, err := v.Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected verification failure")
	}
}

func TestTokenVerifier_Expired(t *testing.T) {
	v := NewTokenVerifier("secret")
	tok := signToken(t, "secret", jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := v.Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestTokenVerifier_MissingSubject(t *testing.T) {
	v := NewTokenVerifier("secret")
	tok := signToken(t, "secret", jwt.MapClaims{"email": "x@example.com"})

	if _, err := v.Verify(context.Background(), tok); err == nil {
		t.Fatalf("expected token without subject to fail")
	}
}
