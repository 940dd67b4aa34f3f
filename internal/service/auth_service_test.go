package service

import (
	"context"
	"testing"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg"

	"golang.org/x/crypto/bcrypt"
)

type sessionStub struct {
	tokens  map[string]string
	deletes []string
}

func newSessionStub() *sessionStub {
	return &sessionStub{tokens: map[string]string{}}
}

func (s *sessionStub) AddToken(adminID, token string) error {
	s.tokens[adminID] = token
	return nil
}

func (s *sessionStub) DeleteToken(adminID string) error {
	s.deletes = append(s.deletes, adminID)
	delete(s.tokens, adminID)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *memStore, *sessionStub) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	store := newMemStore()
	store.users["a1"] = model.User{ID: "a1", Name: "Root", Email: "root@example.com", Password: string(hash), Role: model.RoleAdmin, Status: model.StatusActive}
	store.users["u1"] = model.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Password: string(hash), Role: model.RoleUser, Status: model.StatusActive}

	sessions := newSessionStub()
	return &AuthService{users: store, sessions: sessions}, store, sessions
}

func TestAuthLogin(t *testing.T) {
	t.Run("admin with valid credentials is admitted", func(t *testing.T) {
		svc, _, sessions := newAuthFixture(t)

		outcome, err := svc.Login(context.Background(), "root@example.com", "hunter2")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if !outcome.Admitted || outcome.Tokens == nil {
			t.Fatalf("expected admission, got %+v", outcome)
		}

		claims, err := pkg.ParseAccess(outcome.Tokens.AccessToken)
		if err != nil {
			t.Fatalf("issued token does not parse: %v", err)
		}
		if claims.UserID != "a1" || claims.Role != model.RoleAdmin {
			t.Fatalf("unexpected claims %+v", claims)
		}
		if sessions.tokens["a1"] != outcome.Tokens.AccessToken {
			t.Fatal("session not stored")
		}
	})

	t.Run("non-admin never receives tokens", func(t *testing.T) {
		svc, _, sessions := newAuthFixture(t)

		outcome, err := svc.Login(context.Background(), "alice@example.com", "hunter2")
		if err != nil {
			t.Fatalf("login errored: %v", err)
		}
		if outcome.Admitted || outcome.Tokens != nil {
			t.Fatalf("ordinary user admitted: %+v", outcome)
		}
		if len(sessions.tokens) != 0 {
			t.Fatal("session stored for denied login")
		}
	})

	t.Run("wrong password is denied without detail", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		outcome, err := svc.Login(context.Background(), "root@example.com", "wrong")
		if err != nil {
			t.Fatalf("login errored: %v", err)
		}
		if outcome.Admitted {
			t.Fatal("wrong password admitted")
		}
	})

	t.Run("unknown email is denied with the same reason as wrong password", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)

		badUser, _ := svc.Login(context.Background(), "ghost@example.com", "hunter2")
		badPass, _ := svc.Login(context.Background(), "root@example.com", "wrong")
		if badUser.Reason != badPass.Reason {
			t.Fatalf("reasons differ: %q vs %q", badUser.Reason, badPass.Reason)
		}
	})
}

func TestAuthRefresh(t *testing.T) {
	t.Run("demoted admin loses the session on refresh", func(t *testing.T) {
		svc, store, sessions := newAuthFixture(t)

		outcome, err := svc.Login(context.Background(), "root@example.com", "hunter2")
		if err != nil || !outcome.Admitted {
			t.Fatalf("login failed: %v %+v", err, outcome)
		}

		u := store.users["a1"]
		u.Role = model.RoleUser
		store.users["a1"] = u

		if _, err := svc.Refresh(context.Background(), outcome.Tokens.RefreshToken); err == nil {
			t.Fatal("refresh succeeded for demoted admin")
		}
		if len(sessions.deletes) == 0 {
			t.Fatal("session was not revoked")
		}
	})

	t.Run("refresh rotates the stored access token", func(t *testing.T) {
		svc, _, sessions := newAuthFixture(t)

		outcome, _ := svc.Login(context.Background(), "root@example.com", "hunter2")
		tokens, err := svc.Refresh(context.Background(), outcome.Tokens.RefreshToken)
		if err != nil {
			t.Fatalf("refresh failed: %v", err)
		}
		if sessions.tokens["a1"] != tokens.AccessToken {
			t.Fatal("stored session not rotated to the new access token")
		}
	})
}
