package services

import (
	"context"
	"sync"

	"GameVaultAPI/internal/repository"

	"github.com/asaskevich/EventBus"
)

// WishlistService is the durable, observable wishlist store: an ordered set
// of game ids (insertion order, no duplicates).
type WishlistService struct {
	Repo *repository.WishlistRepository
	Bus  EventBus.Bus

	mu  sync.Mutex
	ids []string
}

func NewWishlistService(r *repository.WishlistRepository, bus EventBus.Bus) (*WishlistService, error) {
	ids, err := r.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return &WishlistService{Repo: r, Bus: bus, ids: ids}, nil
}

// Add appends the id if absent. Adding an id already present is a no-op.
func (s *WishlistService) Add(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containsLocked(gameID) {
		return nil
	}
	next := append(s.copyLocked(), gameID)
	return s.commitLocked(ctx, next)
}

// Remove drops the id if present; absent ids are a no-op.
func (s *WishlistService) Remove(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.containsLocked(gameID) {
		return nil
	}
	next := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if id != gameID {
			next = append(next, id)
		}
	}
	return s.commitLocked(ctx, next)
}

// Toggle flips membership: exactly one state change per call. It reports
// whether the id is in the wishlist afterwards.
func (s *WishlistService) Toggle(ctx context.Context, gameID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(gameID) {
		next := make([]string, 0, len(s.ids))
		for _, id := range s.ids {
			if id != gameID {
				next = append(next, id)
			}
		}
		return false, s.commitLocked(ctx, next)
	}
	next := append(s.copyLocked(), gameID)
	return true, s.commitLocked(ctx, next)
}

// Contains is a pure membership query.
func (s *WishlistService) Contains(gameID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(gameID)
}

// IDs returns a copy of the wishlist in insertion order.
func (s *WishlistService) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *WishlistService) containsLocked(gameID string) bool {
	for _, id := range s.ids {
		if id == gameID {
			return true
		}
	}
	return false
}

func (s *WishlistService) commitLocked(ctx context.Context, next []string) error {
	if err := s.Repo.Save(ctx, next); err != nil {
		return err
	}
	s.ids = next
	s.Bus.Publish(TopicWishlistUpdated, s.copyLocked())
	return nil
}

func (s *WishlistService) copyLocked() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
