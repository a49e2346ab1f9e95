package scope_test

import (
	"errors"
	"testing"
	"time"

	"skylift/pkg/scope"
)

func TestIssueAndVerify(t *testing.T) {
	m := scope.NewManager("test-secret", time.Hour)

	t.Run("Round Trip", func(t *testing.T) {
		token, err := m.Issue(scope.Payload{UserID: "u-1", Email: "dev@example.com"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		p, err := m.Verify(token)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if p.UserID != "u-1" || p.Email != "dev@example.com" {
			t.Errorf("unexpected payload: %+v", p)
		}
	})

	t.Run("Empty Token", func(t *testing.T) {
		_, err := m.Verify("")
		if !errors.Is(err, scope.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := scope.NewManager("other-secret", time.Hour)
		token, _ := other.Issue(scope.Payload{UserID: "u-1"})

		_, err := m.Verify(token)
		if !errors.Is(err, scope.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		short := scope.NewManager("test-secret", -time.Minute)
		token, _ := short.Issue(scope.Payload{UserID: "u-1"})

		_, err := m.Verify(token)
		if !errors.Is(err, scope.ErrTokenExpired) {
			t.Errorf("expected ErrTokenExpired, got %v", err)
		}
	})
}
