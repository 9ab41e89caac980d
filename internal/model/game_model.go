package model

import "time"

// Game is the canonical catalog entity. Catalog slices are read-shared;
// the pricing ticker replaces games copy-on-write and never mutates one
// in place.
type Game struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	CoverImage     string     `json:"coverImage"`
	Screenshots    []string   `json:"screenshots"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	OriginalPrice  *float64   `json:"originalPrice,omitempty"`
	Rating         float64    `json:"rating"`
	Genre          []string   `json:"genre"`
	Developer      string     `json:"developer"`
	Publisher      string     `json:"publisher"`
	ReleaseDate    time.Time  `json:"releaseDate"`
	IsFeatured     bool       `json:"isFeatured"`
	IsTrending     bool       `json:"isTrending"`
	IsFree         bool       `json:"isFree"`
	Platforms      []string   `json:"platforms"`
	DiscountEndsAt *time.Time `json:"discountEndsAt,omitempty"`
	Metacritic     *int       `json:"metacritic,omitempty"`
}

// PriceBracket is a named price range filter.
type PriceBracket string

const (
	BracketAll     PriceBracket = "all"
	BracketFree    PriceBracket = "free"
	BracketUnder20 PriceBracket = "under20"
	BracketUnder40 PriceBracket = "under40"
	BracketAbove40 PriceBracket = "above40"
)

// SortKey selects the ordering of browse results.
type SortKey string

const (
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
)

// BrowseQuery narrows and orders a catalog slice for display.
type BrowseQuery struct {
	Text         string
	Genre        string
	Bracket      PriceBracket
	Sort         SortKey
	FeaturedOnly bool
	TrendingOnly bool
}
