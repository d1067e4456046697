package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestLoginRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	svc := NewAuthService(hash, "test-secret", zap.NewNop())
	token, expires, err := svc.Login("correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || expires.IsZero() {
		t.Fatal("login returned empty token or expiry")
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	svc := NewAuthService(hash, "test-secret", zap.NewNop())
	if _, _, err := svc.Login("battery-staple"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnconfigured(t *testing.T) {
	svc := NewAuthService("", "test-secret", zap.NewNop())
	if _, _, err := svc.Login("anything"); !errors.Is(err, ErrAdminNotConfigured) {
		t.Fatalf("want ErrAdminNotConfigured, got %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService("unused", "test-secret", zap.NewNop())
	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	hash, _ := HashPassword("pw")
	issuer := NewAuthService(hash, "secret-a", zap.NewNop())
	token, _, err := issuer.Login("pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	verifier := NewAuthService(hash, "secret-b", zap.NewNop())
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
