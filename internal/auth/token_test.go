package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundtrip(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("unit-test-secret", 60)
	token, expiresAt, err := tm.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatal("expiry must be in the future")
	}

	subject, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if subject != "user@example.com" {
		t.Fatalf("subject = %q, want user@example.com", subject)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("unit-test-secret", 60)
	token, _, err := tm.GenerateTokenWithTTL("user@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateTokenWithTTL: %v", err)
	}

	if _, err := tm.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret-a", 60)
	other := NewTokenManager("secret-b", 60)

	token, _, err := tm.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token: err = %v, want ErrInvalidToken", err)
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("unit-test-secret", 60)
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.ParseToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("token %q: err = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestWrongSigningMethodRejected(t *testing.T) {
	t.Parallel()

	// A token signed with "none" must never validate, even with a
	// matching subject.
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tm := NewTokenManager("unit-test-secret", 60)
	if _, err := tm.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("none-signed token: err = %v, want ErrInvalidToken", err)
	}
}

func TestEmptySubjectRejected(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("unit-test-secret", 60)
	token, _, err := tm.GenerateToken("")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := tm.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty subject: err = %v, want ErrInvalidToken", err)
	}
}

func TestDefaultTTLApplied(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("unit-test-secret", 0)
	_, expiresAt, err := tm.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	// Zero minutes falls back to the 24h default.
	if remaining := time.Until(expiresAt); remaining < 23*time.Hour {
		t.Fatalf("default TTL too short: %v", remaining)
	}
}
