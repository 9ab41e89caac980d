package services

import (
	"context"
	"sync"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/repository"

	"github.com/asaskevich/EventBus"
)

// CartService is the durable, observable cart store. Every mutation writes
// the full snapshot to storage first and publishes to observers only after
// the write succeeded; a failed write leaves the in-memory state untouched.
type CartService struct {
	Repo *repository.CartRepository
	Bus  EventBus.Bus

	mu    sync.Mutex
	items []model.CartItem
}

// NewCartService loads the persisted cart so state survives restarts.
func NewCartService(r *repository.CartRepository, bus EventBus.Bus) (*CartService, error) {
	items, err := r.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return &CartService{Repo: r, Bus: bus, items: items}, nil
}

// Add puts the game in the cart, or bumps its quantity by 1 when already
// present. Duplicate adds are the defined merge behavior, not an error.
func (s *CartService) Add(ctx context.Context, game model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.copyLocked()
	found := false
	for i := range next {
		if next[i].Game.ID == game.ID {
			next[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		next = append(next, model.CartItem{Game: game, Quantity: 1})
	}
	return s.commitLocked(ctx, next)
}

// Remove drops the entry with the given id; absent ids are a no-op.
func (s *CartService) Remove(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, gameID)
}

// UpdateQuantity sets (not increments) the quantity for an entry. A quantity
// of zero or less removes the entry; absent ids are a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, gameID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, gameID)
	}

	next := s.copyLocked()
	changed := false
	for i := range next {
		if next[i].Game.ID == gameID {
			next[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}
	return s.commitLocked(ctx, next)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(ctx, []model.CartItem{})
}

// Items returns a copy of the current cart snapshot.
func (s *CartService) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Total is the sum of price x quantity over all entries, tax excluded.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.Game.Price * float64(it.Quantity)
	}
	return total
}

// Count is the sum of quantities over all entries.
func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

// Get returns the cart (items + derived aggregates).
func (s *CartService) Get(ctx context.Context) *model.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := &model.CartResponse{Items: s.copyLocked()}
	for _, it := range s.items {
		resp.Total += it.Game.Price * float64(it.Quantity)
		resp.Count += it.Quantity
	}
	return resp
}

func (s *CartService) removeLocked(ctx context.Context, gameID string) error {
	next := make([]model.CartItem, 0, len(s.items))
	for _, it := range s.items {
		if it.Game.ID != gameID {
			next = append(next, it)
		}
	}
	if len(next) == len(s.items) {
		return nil
	}
	return s.commitLocked(ctx, next)
}

// commitLocked is the single write path: durable write, then snapshot swap,
// then synchronous publish.
func (s *CartService) commitLocked(ctx context.Context, next []model.CartItem) error {
	if err := s.Repo.Save(ctx, next); err != nil {
		return err
	}
	s.items = next
	s.Bus.Publish(TopicCartUpdated, s.copyLocked())
	return nil
}

func (s *CartService) copyLocked() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}
