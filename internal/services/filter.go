package services

import (
	"sort"
	"strings"

	"GameVaultAPI/internal/model"
)

// FilterSort narrows and orders a catalog slice for display. It is pure:
// the input slice is never mutated and equal inputs give equal outputs.
// Ties keep the input order.
func FilterSort(games []model.Game, q model.BrowseQuery) []model.Game {
	result := make([]model.Game, 0, len(games))

	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, g := range games {
		if text != "" && !matchesText(g, text) {
			continue
		}
		if q.Genre != "" && q.Genre != "All" && !hasGenre(g, q.Genre) {
			continue
		}
		if !matchesBracket(g, q.Bracket) {
			continue
		}
		if q.FeaturedOnly && !g.IsFeatured {
			continue
		}
		if q.TrendingOnly && !g.IsTrending {
			continue
		}
		result = append(result, g)
	}

	switch q.Sort {
	case model.SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case model.SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case model.SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	case model.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ReleaseDate.After(result[j].ReleaseDate)
		})
	default:
		// popular
		sort.SliceStable(result, func(i, j int) bool {
			return popularScore(result[i]) > popularScore(result[j])
		})
	}

	return result
}

// matchesText checks title, any genre entry and developer. Publisher and
// description are deliberately not searched.
func matchesText(g model.Game, text string) bool {
	if strings.Contains(strings.ToLower(g.Title), text) {
		return true
	}
	for _, genre := range g.Genre {
		if strings.Contains(strings.ToLower(genre), text) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(g.Developer), text)
}

func hasGenre(g model.Game, genre string) bool {
	for _, entry := range g.Genre {
		if entry == genre {
			return true
		}
	}
	return false
}

func matchesBracket(g model.Game, bracket model.PriceBracket) bool {
	switch bracket {
	case model.BracketFree:
		return g.IsFree
	case model.BracketUnder20:
		return !g.IsFree && g.Price < 20
	case model.BracketUnder40:
		return !g.IsFree && g.Price < 40
	case model.BracketAbove40:
		return g.Price >= 40
	default:
		return true
	}
}

func popularScore(g model.Game) float64 {
	score := g.Rating
	if g.IsFeatured {
		score *= 1.5
	}
	if g.IsTrending {
		score *= 1.3
	}
	return score
}
