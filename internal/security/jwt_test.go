package security

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "abcdefghijklmnopqrstuvwxyz123456"

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestSignAndParseAccessToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mgr := NewJWTManager("lost-and-found", testSecret, 2*time.Hour).WithClock(fixedClock(&now))

	token, expiresAt, err := mgr.SignAccessToken(7, "a@b.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if !expiresAt.Equal(now.Add(2 * time.Hour)) {
		t.Fatalf("expected expiry %v, got %v", now.Add(2*time.Hour), expiresAt)
	}

	claims, err := mgr.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@b.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("expected jti")
	}
	if claims.Issuer != "lost-and-found" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 2*time.Hour {
		t.Fatalf("expected exp-iat of 2h, got %v", got)
	}
}

func TestParseAccessTokenExpiryBoundary(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mgr := NewJWTManager("lost-and-found", testSecret, 2*time.Hour).WithClock(fixedClock(&now))
	token, _, err := mgr.SignAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	issued := now
	now = issued.Add(2*time.Hour - time.Second)
	if _, err := mgr.ParseAccessToken(token); err != nil {
		t.Fatalf("expected token valid one second before expiry: %v", err)
	}

	now = issued.Add(2*time.Hour + time.Second)
	if _, err := mgr.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken one second after expiry, got %v", err)
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	signer := NewJWTManager("lost-and-found", testSecret, time.Hour)
	verifier := NewJWTManager("lost-and-found", "another-secret-another-secret-xx", time.Hour)
	token, _, err := signer.SignAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifier.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseAccessTokenRejectsTamperedToken(t *testing.T) {
	mgr := NewJWTManager("lost-and-found", testSecret, time.Hour)
	token, _, err := mgr.SignAccessToken(1, "a@b.com")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := mgr.ParseAccessToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestParseAccessTokenRejectsOtherAlgorithms(t *testing.T) {
	mgr := NewJWTManager("lost-and-found", testSecret, time.Hour)
	claims := Claims{
		UserID: 1,
		Email:  "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "lost-and-found",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := mgr.ParseAccessToken(hs512); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := mgr.ParseAccessToken(none); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	signer := NewJWTManager("someone-else", testSecret, time.Hour)
	verifier := NewJWTManager("lost-and-found", testSecret, time.Hour)
	token, _, _ := signer.SignAccessToken(1, "a@b.com")
	if _, err := verifier.ParseAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign issuer, got %v", err)
	}
}

func TestParseAccessTokenEmptyIsMissing(t *testing.T) {
	mgr := NewJWTManager("lost-and-found", testSecret, time.Hour)
	if _, err := mgr.ParseAccessToken("   "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := mgr.ParseAccessToken("not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
