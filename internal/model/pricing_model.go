package model

import "time"

// PriceUpdate describes one game whose pricing changed during a ticker pass.
type PriceUpdate struct {
	ID             string     `json:"id"`
	Price          float64    `json:"price"`
	OriginalPrice  *float64   `json:"originalPrice,omitempty"`
	DiscountEndsAt *time.Time `json:"discountEndsAt,omitempty"`
}

// PricingEvent is published after every ticker pass that changed at least
// one game.
type PricingEvent struct {
	UpdatedAt time.Time     `json:"updatedAt"`
	Updates   []PriceUpdate `json:"updates"`
}
