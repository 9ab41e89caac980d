package repository

import (
	"context"
	"testing"
	"time"

	"GameVaultAPI/internal/model"
)

type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(key string) ([]byte, error) {
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *fakeKV) Put(key string, value []byte) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func TestSessionRepoEmptyLoadsNil(t *testing.T) {
	r := NewSessionRepository(newFakeKV())
	got, err := r.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("want nil profile, got %+v", got)
	}
}

func TestSessionRepoSaveLoadClear(t *testing.T) {
	r := NewSessionRepository(newFakeKV())
	ctx := context.Background()

	profile := model.UserProfile{
		ID:        "abc",
		Email:     "alex@example.com",
		Name:      "Alex",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := r.Save(ctx, profile); err != nil {
		t.Fatal(err)
	}

	got, err := r.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != "abc" || got.Email != "alex@example.com" {
		t.Fatalf("round trip failed: %+v", got)
	}

	if err := r.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	got, err = r.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("want nil after clear, got %+v", got)
	}
}

func TestCartRepoEmptyLoadsEmptySlice(t *testing.T) {
	r := NewCartRepository(newFakeKV())
	got, err := r.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty cart, got %v", got)
	}
}

func TestWishlistRepoEmptyLoadsEmptySlice(t *testing.T) {
	r := NewWishlistRepository(newFakeKV())
	got, err := r.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty wishlist, got %v", got)
	}
}
