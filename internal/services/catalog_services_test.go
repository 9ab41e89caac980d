package services

import (
	"context"
	"errors"
	"testing"

	"GameVaultAPI/internal/model"
)

type fakeSource struct {
	games []model.Game
	err   error
}

func (f *fakeSource) Fetch(ctx context.Context) ([]model.Game, error) {
	return f.games, f.err
}

func TestCatalogLookups(t *testing.T) {
	src := &fakeSource{games: []model.Game{
		{ID: "1", Slug: "first", Genre: []string{"Action", "RPG"}},
		{ID: "2", Slug: "second", Genre: []string{"RPG", "Puzzle"}},
	}}
	s := NewCatalogService(src)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if g := s.BySlug("second"); g == nil || g.ID != "2" {
		t.Fatalf("BySlug failed: %+v", g)
	}
	if g := s.BySlug("missing"); g != nil {
		t.Fatalf("missing slug must yield nil, got %+v", g)
	}
	if g := s.ByID("1"); g == nil || g.Slug != "first" {
		t.Fatalf("ByID failed: %+v", g)
	}
	if g := s.ByID("404"); g != nil {
		t.Fatalf("missing id must yield nil, got %+v", g)
	}
}

func TestCatalogGenresFirstSeenOrder(t *testing.T) {
	src := &fakeSource{games: []model.Game{
		{ID: "1", Genre: []string{"Action", "RPG"}},
		{ID: "2", Genre: []string{"RPG", "Puzzle"}},
	}}
	s := NewCatalogService(src)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := s.Genres()
	want := []string{"Action", "RPG", "Puzzle"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestCatalogRefreshFailureKeepsSnapshot(t *testing.T) {
	src := &fakeSource{games: []model.Game{{ID: "1"}}}
	s := NewCatalogService(src)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	src.err = errors.New("upstream unavailable")
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("want refresh error")
	}
	if len(s.Games()) != 1 {
		t.Fatal("failed refresh must keep the previous snapshot")
	}
}
