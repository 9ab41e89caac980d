package services

import (
	"context"
	"testing"

	"GameVaultAPI/internal/repository"

	"github.com/asaskevich/EventBus"
)

func newWishlistService(t *testing.T, kv *memKV) *WishlistService {
	t.Helper()
	s, err := NewWishlistService(repository.NewWishlistRepository(kv), EventBus.New())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	s := newWishlistService(t, newMemKV())
	ctx := context.Background()

	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}

	if got := s.IDs(); len(got) != 1 || got[0] != "1" {
		t.Fatalf("want [1], got %v", got)
	}
}

func TestWishlistToggleIsInvolution(t *testing.T) {
	s := newWishlistService(t, newMemKV())
	ctx := context.Background()

	before := s.Contains("1")
	in, err := s.Toggle(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if in == before {
		t.Fatal("toggle must flip membership")
	}
	if _, err := s.Toggle(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if s.Contains("1") != before {
		t.Fatal("double toggle must restore original membership")
	}
}

func TestWishlistRemoveAbsentIsNoop(t *testing.T) {
	s := newWishlistService(t, newMemKV())
	if err := s.Remove(context.Background(), "404"); err != nil {
		t.Fatalf("remove of absent id must be a no-op, got %v", err)
	}
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	s := newWishlistService(t, newMemKV())
	ctx := context.Background()

	for _, id := range []string{"3", "1", "2"} {
		if err := s.Add(ctx, id); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Remove(ctx, "1"); err != nil {
		t.Fatal(err)
	}

	got := s.IDs()
	if len(got) != 2 || got[0] != "3" || got[1] != "2" {
		t.Fatalf("want [3 2], got %v", got)
	}
}

func TestWishlistFailedWriteKeepsState(t *testing.T) {
	kv := newMemKV()
	s := newWishlistService(t, kv)
	ctx := context.Background()

	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}

	kv.failPuts = true
	if err := s.Add(ctx, "2"); err == nil {
		t.Fatal("want error from failed durable write")
	}
	if got := s.IDs(); len(got) != 1 {
		t.Fatalf("state changed despite failed write: %v", got)
	}
}
