package services

import (
	"context"
	"testing"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/repository"

	"github.com/asaskevich/EventBus"
)

func newSessionService(t *testing.T, kv *memKV) *SessionService {
	t.Helper()
	s, err := NewSessionService(repository.NewSessionRepository(kv), EventBus.New())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func strptr(s string) *string { return &s }

func TestSessionSignInReplacesExisting(t *testing.T) {
	s := newSessionService(t, newMemKV())
	ctx := context.Background()

	first, err := s.SignIn(ctx, "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.SignIn(ctx, "Sam", "sam@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if first.ID == second.ID {
		t.Fatal("sign-in must issue a fresh opaque id")
	}
	current := s.Current()
	if current == nil || current.ID != second.ID || current.Email != "sam@example.com" {
		t.Fatalf("last sign-in must win, got %+v", current)
	}
}

func TestSessionSignInRejectsBadEmail(t *testing.T) {
	s := newSessionService(t, newMemKV())
	if _, err := s.SignIn(context.Background(), "Alex", "not-an-email"); err == nil {
		t.Fatal("want validation error")
	}
	if s.Current() != nil {
		t.Fatal("failed sign-in must not create a session")
	}
}

func TestSessionSignOutClears(t *testing.T) {
	kv := newMemKV()
	s := newSessionService(t, kv)
	ctx := context.Background()

	if _, err := s.SignIn(ctx, "Alex", "alex@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := s.SignOut(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Current() != nil {
		t.Fatal("session must be cleared")
	}

	// cleared durably too
	reopened := newSessionService(t, kv)
	if reopened.Current() != nil {
		t.Fatal("session record must be gone from storage")
	}
}

func TestSessionUpdateWithoutSessionIsNoop(t *testing.T) {
	s := newSessionService(t, newMemKV())
	got, err := s.Update(context.Background(), model.ProfileUpdate{Name: strptr("Sam")})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("update without session must be a no-op, got %+v", got)
	}
}

func TestSessionUpdateMergesOnlyGivenFields(t *testing.T) {
	s := newSessionService(t, newMemKV())
	ctx := context.Background()

	signed, err := s.SignIn(ctx, "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.Update(ctx, model.ProfileUpdate{Name: strptr("Sam")})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Sam" {
		t.Fatalf("name not updated: %+v", got)
	}
	if got.Email != "alex@example.com" {
		t.Fatalf("email must be untouched: %+v", got)
	}
	if got.ID != signed.ID || !got.CreatedAt.Equal(signed.CreatedAt) {
		t.Fatalf("id and creation time are immutable: %+v", got)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	kv := newMemKV()
	s := newSessionService(t, kv)

	signed, err := s.SignIn(context.Background(), "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}

	reopened := newSessionService(t, kv)
	current := reopened.Current()
	if current == nil || current.ID != signed.ID {
		t.Fatalf("session lost across restart: %+v", current)
	}
}
