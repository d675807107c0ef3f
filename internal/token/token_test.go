package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"escena/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:          7,
		DisplayName: "Laura Prueba",
		Email:       "laura@example.com",
		Role:        domain.RoleAdmin,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("unit-test-secret")
	signed, err := c.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := c.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID() != 7 {
		t.Errorf("expected subject id 7, got %d", claims.UserID())
	}
	if claims.DisplayName != "Laura Prueba" || claims.Email != "laura@example.com" || claims.Role != domain.RoleAdmin {
		t.Errorf("claims do not match input: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected iat and exp to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("expected 1h lifetime, got %v", got)
	}
}

func TestCodec_IssueProducesDistinctTokens(t *testing.T) {
	c := NewCodec("unit-test-secret")
	a, err := c.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	b, err := c.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if a == b {
		t.Error("two issued tokens should not be identical")
	}
}

func TestCodec_Expired(t *testing.T) {
	c := NewCodec("unit-test-secret")
	signed, err := c.Issue(testUser(), -time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = c.Verify(signed)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := NewCodec("unit-test-secret")
	signed, err := c.Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = c.Verify(tampered)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	signed, err := NewCodec("secret-one").Issue(testUser(), time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = NewCodec("secret-two").Verify(signed)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := NewCodec("unit-test-secret")
	for _, s := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := c.Verify(s); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q): expected ErrMalformed, got %v", s, err)
		}
	}
}

func TestCodec_DecodeUnsafe_IgnoresExpiryAndSignature(t *testing.T) {
	c := NewCodec("unit-test-secret")
	signed, err := c.Issue(testUser(), -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := NewCodec("a-completely-different-secret").DecodeUnsafe(signed)
	if err != nil {
		t.Fatalf("decode unsafe: %v", err)
	}
	if claims.UserID() != 7 {
		t.Errorf("expected subject id 7, got %d", claims.UserID())
	}

	if _, err := c.DecodeUnsafe("garbage"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed for garbage, got %v", err)
	}
}
