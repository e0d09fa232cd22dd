package token

import (
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewService("test-secret", -1*time.Minute)

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Verify(tok); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := svc.Verify(tampered); err == nil {
		t.Fatalf("expected tampered token to fail verification")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tok, err := NewService("secret-a", time.Hour).Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewService("secret-b", time.Hour).Verify(tok); err == nil {
		t.Fatalf("expected verification under a different secret to fail")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Fatalf("expected %q to fail verification", tok)
		}
	}
}
