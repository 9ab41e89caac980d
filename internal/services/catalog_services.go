package services

import (
	"context"
	"sync"

	"GameVaultAPI/internal/model"

	"go.uber.org/zap"
)

// CatalogSource supplies the canonical catalog, either from the static list
// or from an external catalog API.
type CatalogSource interface {
	Fetch(ctx context.Context) ([]model.Game, error)
}

// CatalogService owns the in-memory catalog snapshot. Games are read-shared;
// nothing mutates them through this service.
type CatalogService struct {
	source CatalogSource

	mu    sync.RWMutex
	games []model.Game
}

func NewCatalogService(source CatalogSource) *CatalogService {
	return &CatalogService{source: source}
}

// Refresh replaces the snapshot from the source. On failure the previous
// snapshot is kept and the error is returned to the caller; the core keeps
// operating on whatever catalog it last had.
func (s *CatalogService) Refresh(ctx context.Context) error {
	games, err := s.source.Fetch(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.games = games
	s.mu.Unlock()
	zap.S().Infow("catalog refreshed", "games", len(games))
	return nil
}

// Games returns a copy of the current catalog snapshot.
func (s *CatalogService) Games() []model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Game, len(s.games))
	copy(out, s.games)
	return out
}

// ByID returns the game with the given id, or nil when absent.
func (s *CatalogService) ByID(id string) *model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.games {
		if s.games[i].ID == id {
			g := s.games[i]
			return &g
		}
	}
	return nil
}

// BySlug returns the game with the given slug, or nil when absent.
func (s *CatalogService) BySlug(slug string) *model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.games {
		if s.games[i].Slug == slug {
			g := s.games[i]
			return &g
		}
	}
	return nil
}

// Genres lists every genre in the catalog, first-seen order preserved.
func (s *CatalogService) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var genres []string
	for _, g := range s.games {
		for _, genre := range g.Genre {
			if !seen[genre] {
				seen[genre] = true
				genres = append(genres, genre)
			}
		}
	}
	return genres
}

// Browse runs the filter/sort engine over the current snapshot.
func (s *CatalogService) Browse(q model.BrowseQuery) []model.Game {
	return FilterSort(s.Games(), q)
}
