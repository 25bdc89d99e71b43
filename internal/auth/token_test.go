package auth

import (
	"errors"
	"testing"
	"time"
)

const secret = "test-secret"

func TestSignAndParse(t *testing.T) {
	token, err := Sign(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	id, err := Parse(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected user id 42, got %d", id)
	}
}

func TestParseExpired(t *testing.T) {
	token, err := Sign(7, secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(token, secret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign(7, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(token, "other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseTampered(t *testing.T) {
	token, err := Sign(7, secret, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := Parse(tampered, secret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not-a-token", secret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
