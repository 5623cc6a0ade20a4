package auth

import (
	"errors"
	"testing"
	"time"
)

func TestSignAndParseRoundTrip(t *testing.T) {
	claims := NewClaims("user-1", "ada@example.com", "admin", 3, time.Minute)

	token, err := Sign(claims, "secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := Parse(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Subject != "user-1" || parsed.Email != "ada@example.com" || parsed.Role != "admin" || parsed.Ver != 3 {
		t.Fatalf("claims mangled in transit: %+v", parsed)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign(NewClaims("user-1", "", "", 0, time.Minute), "secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse(token, "other-secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign(NewClaims("user-1", "", "", 0, -time.Minute), "secret")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Parse(token, "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
