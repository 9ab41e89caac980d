package rawg

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"GameVaultAPI/internal/model"
)

// Pricing carries storefront pricing for upstream sources that have it
// natively.
type Pricing struct {
	Price          float64
	OriginalPrice  *float64
	IsFree         bool
	DiscountEndsAt *time.Time
}

// Record is the tagged union of external game representations: Pricing is
// nil for unpriced sources (the RAWG API itself), set for priced feeds.
// ConvertRecord is the single place that resolves the two cases.
type Record struct {
	Game    Game
	Pricing *Pricing
}

// ConvertRecord maps an external record into the canonical Game shape,
// synthesizing pricing deterministically when the source has none.
func ConvertRecord(rec Record) model.Game {
	g := rec.Game

	var (
		price  float64
		orig   *float64
		isFree bool
		endsAt *time.Time
	)
	if rec.Pricing != nil {
		price = rec.Pricing.Price
		orig = rec.Pricing.OriginalPrice
		isFree = rec.Pricing.IsFree
		endsAt = rec.Pricing.DiscountEndsAt
	} else {
		price = synthesizePrice(g)
		orig = synthesizeOriginalPrice(g)
		isFree = price == 0
		if orig != nil {
			// keep the discount invariant: an original price always comes
			// with an expiry
			e := time.Now().UTC().Add(time.Duration(g.ID%7+1) * 24 * time.Hour)
			endsAt = &e
		}
	}

	cover := g.BackgroundImage
	if cover == "" {
		cover = "/placeholder.svg"
	}

	description := g.DescriptionRaw
	if description == "" {
		description = fmt.Sprintf("%s is an exciting game.", g.Name)
	}

	screenshots := make([]string, 0, len(g.ShortScreenshots))
	for _, s := range g.ShortScreenshots {
		screenshots = append(screenshots, s.Image)
	}

	genres := make([]string, 0, len(g.Genres))
	for _, genre := range g.Genres {
		genres = append(genres, genre.Name)
	}

	platforms := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}

	developer := "Unknown Developer"
	if len(g.Developers) > 0 {
		developer = g.Developers[0].Name
	}
	publisher := "Unknown Publisher"
	if len(g.Publishers) > 0 {
		publisher = g.Publishers[0].Name
	}

	var released time.Time
	if t, err := time.Parse("2006-01-02", g.Released); err == nil {
		released = t
	}

	var metacritic *int
	if g.Metacritic > 0 {
		mc := g.Metacritic
		metacritic = &mc
	}

	return model.Game{
		ID:             strconv.Itoa(g.ID),
		Title:          g.Name,
		Slug:           g.Slug,
		CoverImage:     cover,
		Screenshots:    screenshots,
		Description:    description,
		Price:          price,
		OriginalPrice:  orig,
		Rating:         g.Rating,
		Genre:          genres,
		Developer:      developer,
		Publisher:      publisher,
		ReleaseDate:    released,
		IsFeatured:     g.Metacritic >= 85,
		IsTrending:     g.RatingsCount > 1000,
		IsFree:         isFree,
		Platforms:      platforms,
		DiscountEndsAt: endsAt,
		Metacritic:     metacritic,
	}
}

// synthesizePrice derives a price from rating/metacritic for sources with no
// native pricing.
func synthesizePrice(g Game) float64 {
	switch {
	case g.Metacritic == 0 && g.Rating < 3:
		return 0
	case g.Metacritic >= 90:
		return 59.99
	case g.Metacritic >= 85:
		return 49.99
	case g.Metacritic >= 75:
		return 39.99
	case g.Metacritic >= 60:
		return 29.99
	case g.Rating >= 4:
		return 24.99
	case g.Rating >= 3:
		return 19.99
	default:
		return 9.99
	}
}

var discountPercents = []float64{0.15, 0.25, 0.30, 0.40, 0.50}

// synthesizeOriginalPrice puts roughly a third of paid games on a discount,
// keyed off the upstream id so the result is stable across fetches.
func synthesizeOriginalPrice(g Game) *float64 {
	price := synthesizePrice(g)
	if price == 0 {
		return nil
	}
	if g.ID%3 != 0 {
		return nil
	}
	pct := discountPercents[g.ID%len(discountPercents)]
	orig := math.Round(price/(1-pct)*100) / 100
	return &orig
}
