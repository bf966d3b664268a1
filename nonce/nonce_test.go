// ABOUTME: Tests for nonce issue and verification.
// ABOUTME: Covers action/user binding, tick windows, and malformed tokens.

package nonce

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	s := New([]byte("test-secret"))

	token := s.Issue("orders-delete-42", "admin")
	if !s.Verify(token, "orders-delete-42", "admin") {
		t.Error("freshly issued token should verify")
	}
}

func TestVerifyRejectsWrongContext(t *testing.T) {
	s := New([]byte("test-secret"))
	token := s.Issue("orders-delete-42", "admin")

	tests := []struct {
		name   string
		token  string
		action string
		user   string
	}{
		{"wrong action", token, "orders-delete-43", "admin"},
		{"wrong user", token, "orders-delete-42", "intruder"},
		{"empty token", "", "orders-delete-42", "admin"},
		{"garbage token", "ffffffffffff", "orders-delete-42", "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.Verify(tt.token, tt.action, tt.user) {
				t.Error("token should not verify")
			}
		})
	}
}

func TestVerifyAcceptsPreviousTick(t *testing.T) {
	half := DefaultLifetime / 2

	// Pin the clock to the start of a tick so the window math is exact.
	base := time.Unix(1700000000, 0)
	base = base.Truncate(half)

	s := New([]byte("test-secret"))
	s.now = func() time.Time { return base }

	token := s.Issue("orders-delete-42", "admin")

	// One tick later: the token is from the previous tick and verifies.
	s.now = func() time.Time { return base.Add(half + time.Minute) }
	if !s.Verify(token, "orders-delete-42", "admin") {
		t.Error("token from the previous tick should verify")
	}

	// Two ticks later: expired.
	s.now = func() time.Time { return base.Add(2*half + time.Minute) }
	if s.Verify(token, "orders-delete-42", "admin") {
		t.Error("expired token should not verify")
	}
}

func TestSecretsAreIndependent(t *testing.T) {
	a := New([]byte("secret-a"))
	b := New([]byte("secret-b"))

	token := a.Issue("orders-delete-42", "admin")
	if b.Verify(token, "orders-delete-42", "admin") {
		t.Error("token must not verify against a different secret")
	}
}

func TestRandomSecretByDefault(t *testing.T) {
	a := New(nil)
	b := New(nil)

	token := a.Issue("x", "y")
	if b.Verify(token, "x", "y") {
		t.Error("two default services should not share a secret")
	}
}
