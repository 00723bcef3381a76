package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/v4health/clinic-api/internal/core/domain"
)

func TestBcryptHasher_CostFloor(t *testing.T) {
	if got := NewBcryptHasher(4).Cost(); got != MinBcryptCost {
		t.Errorf("expected cost raised to %d, got %d", MinBcryptCost, got)
	}
	if got := NewBcryptHasher(12).Cost(); got != 12 {
		t.Errorf("expected cost 12, got %d", got)
	}
}

func TestBcryptHasher_FreshSalt(t *testing.T) {
	a, err := testHasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := testHasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password must differ")
	}
	if err := testHasher.Compare(a, "s3cret"); err != nil {
		t.Errorf("compare a: %v", err)
	}
	if err := testHasher.Compare(b, "wrong"); err == nil {
		t.Error("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := testHasher.Hash(string(long)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJWTIssuer_Expiry(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	issuer := NewJWTIssuer(domain.KindStaff, "staff-secret", time.Hour).WithClock(func() time.Time { return now })

	token, exp, err := issuer.Issue(domain.Identity{ID: 1, Username: "jdoe"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(start.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", start.Add(time.Hour), exp)
	}

	now = start.Add(59 * time.Minute)
	if _, err := issuer.Verify(token); err != nil {
		t.Errorf("token should be valid before expiry: %v", err)
	}

	now = start.Add(time.Hour + time.Second)
	if _, err := issuer.Verify(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTIssuer_KindIsolation(t *testing.T) {
	staffIssuer := NewJWTIssuer(domain.KindStaff, "staff-secret", time.Hour)
	doctorIssuer := NewJWTIssuer(domain.KindDoctor, "doctor-secret", time.Hour)
	sameSecret := NewJWTIssuer(domain.KindPatient, "staff-secret", time.Hour)

	token, _, err := staffIssuer.Issue(domain.Identity{ID: 1, Username: "jdoe"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := doctorIssuer.Verify(token); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error for doctor verifier, got %v", err)
	}
	if _, err := sameSecret.Verify(token); err == nil {
		t.Error("token for one kind must not verify as another even with a shared secret")
	}
}

func TestJWTIssuer_EmptySecret(t *testing.T) {
	if _, _, err := NewJWTIssuer(domain.KindStaff, "", time.Hour).Issue(domain.Identity{Username: "x"}); err == nil {
		t.Error("expected error for empty secret")
	}
}
