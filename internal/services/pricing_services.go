package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"GameVaultAPI/internal/model"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

const (
	selectProbability   = 0.10
	discountProbability = 0.60
	maxDiscountWindow   = 7 * 24 * time.Hour
)

var saleDiscounts = []float64{0.15, 0.25, 0.30, 0.40, 0.50}

// PricingService simulates live discount activity over its own copy of the
// catalog. It stands in for a real pricing push channel and never touches
// the persistent stores: each pass replaces games copy-on-write and
// publishes the changes on the bus.
type PricingService struct {
	Bus      EventBus.Bus
	interval time.Duration

	mu         sync.Mutex
	games      []model.Game
	rng        *rand.Rand
	lastUpdate time.Time
}

func NewPricingService(bus EventBus.Bus, games []model.Game, interval time.Duration) *PricingService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	snapshot := make([]model.Game, len(games))
	copy(snapshot, games)
	return &PricingService{
		Bus:      bus,
		interval: interval,
		games:    snapshot,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Start runs the ticker until the context is cancelled.
func (s *PricingService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(time.Now().UTC())
			}
		}
	}()
}

// tick evaluates every game once. Non-free games are selected with a small
// probability; a selected game either gains a discount (when it has none)
// or returns to full price (when it has one). The pass keeps the invariant
// that an original price is always strictly above the current price and
// always carries an expiry.
func (s *PricingService) tick(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Game, len(s.games))
	copy(next, s.games)

	var updates []model.PriceUpdate
	for i := range next {
		g := next[i]
		if g.IsFree {
			continue
		}
		if s.rng.Float64() >= selectProbability {
			continue
		}

		discount := s.rng.Float64() < discountProbability
		switch {
		case discount && g.OriginalPrice == nil:
			pct := saleDiscounts[s.rng.Intn(len(saleDiscounts))]
			orig := g.Price
			g.OriginalPrice = &orig
			g.Price = math.Round(orig*(1-pct)*100) / 100
			ends := now.Add(time.Duration(s.rng.Float64() * float64(maxDiscountWindow)))
			g.DiscountEndsAt = &ends
		case !discount && g.OriginalPrice != nil:
			g.Price = *g.OriginalPrice
			g.OriginalPrice = nil
			g.DiscountEndsAt = nil
		default:
			continue
		}

		next[i] = g
		updates = append(updates, model.PriceUpdate{
			ID:             g.ID,
			Price:          g.Price,
			OriginalPrice:  g.OriginalPrice,
			DiscountEndsAt: g.DiscountEndsAt,
		})
	}

	if len(updates) == 0 {
		return
	}

	s.games = next
	s.lastUpdate = now
	zap.S().Debugw("pricing tick", "updates", len(updates))
	s.Bus.Publish(TopicPricingUpdated, model.PricingEvent{UpdatedAt: now, Updates: updates})
}

// Games returns a copy of the current priced catalog snapshot.
func (s *PricingService) Games() []model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Game, len(s.games))
	copy(out, s.games)
	return out
}

// LastUpdate is the time of the last pass that changed something.
func (s *PricingService) LastUpdate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUpdate
}

// FormatCountdown renders the time left until a discount expires, the way
// the storefront displays it.
func FormatCountdown(endsAt, now time.Time) string {
	left := endsAt.Sub(now)
	if left <= 0 {
		return "Sale ended"
	}

	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh left", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm left", hours, minutes)
	}
	return fmt.Sprintf("%dm left", minutes)
}
