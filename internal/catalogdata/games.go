package catalogdata

import (
	"context"
	"time"

	"GameVaultAPI/internal/model"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Games returns the built-in static catalog. Each call returns a fresh
// slice so callers can hand it to the pricing ticker without sharing.
func Games() []model.Game {
	saleEnds := time.Now().UTC().Add(5 * 24 * time.Hour)

	return []model.Game{
		{
			ID:         "1",
			Title:      "Cosmic Odyssey",
			Slug:       "cosmic-odyssey",
			CoverImage: "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=1200&h=675&fit=crop",
				"https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=1200&h=675&fit=crop",
			},
			Description:    "Embark on an epic journey through the cosmos in this stunning space exploration game. Discover new planets, encounter alien civilizations, and uncover the mysteries of the universe.",
			Price:          49.99,
			OriginalPrice:  fptr(59.99),
			Rating:         4.8,
			Genre:          []string{"Adventure", "Sci-Fi", "Open World"},
			Developer:      "Stellar Games",
			Publisher:      "Galaxy Entertainment",
			ReleaseDate:    date("2025-03-15"),
			IsFeatured:     true,
			IsTrending:     true,
			Platforms:      []string{"PC", "PlayStation", "Xbox"},
			DiscountEndsAt: &saleEnds,
			Metacritic:     iptr(94),
		},
		{
			ID:         "2",
			Title:      "Dragon's Fury",
			Slug:       "dragons-fury",
			CoverImage: "https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=1200&h=675&fit=crop",
			},
			Description: "Enter a world of magic and dragons in this action-packed RPG. Battle fierce creatures, master powerful spells, and forge your destiny as the chosen hero.",
			Price:       39.99,
			Rating:      4.6,
			Genre:       []string{"RPG", "Fantasy", "Action"},
			Developer:   "Mythic Studios",
			Publisher:   "Legend Interactive",
			ReleaseDate: date("2024-11-20"),
			IsFeatured:  true,
			IsTrending:  true,
			Platforms:   []string{"PC", "PlayStation", "Xbox", "Switch"},
		},
		{
			ID:         "3",
			Title:      "Speed Racers X",
			Slug:       "speed-racers-x",
			CoverImage: "https://images.unsplash.com/photo-1511882150382-421056c89033?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1511882150382-421056c89033?w=1200&h=675&fit=crop",
			},
			Description: "Feel the adrenaline rush in the most realistic racing simulation ever created. With over 200 licensed vehicles and 50 real-world tracks, Speed Racers X delivers unparalleled racing excitement.",
			Price:       59.99,
			Rating:      4.5,
			Genre:       []string{"Racing", "Sports", "Simulation"},
			Developer:   "Turbo Games",
			Publisher:   "Racing World Inc",
			ReleaseDate: date("2025-01-10"),
			IsFeatured:  true,
			Platforms:   []string{"PC", "PlayStation", "Xbox"},
		},
		{
			ID:         "4",
			Title:      "Puzzle Kingdom",
			Slug:       "puzzle-kingdom",
			CoverImage: "https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1606092195730-5d7b9af1efc5?w=1200&h=675&fit=crop",
			},
			Description: "Challenge your mind with over 1000 unique puzzles in this enchanting puzzle adventure. Perfect for puzzle enthusiasts of all ages!",
			Price:       0,
			Rating:      4.4,
			Genre:       []string{"Puzzle", "Casual", "Family"},
			Developer:   "Brain Games Co",
			Publisher:   "Fun Factory",
			ReleaseDate: date("2024-08-05"),
			IsTrending:  true,
			IsFree:      true,
			Platforms:   []string{"PC", "Mobile", "Switch"},
		},
		{
			ID:         "5",
			Title:      "Shadow Warrior: Legends",
			Slug:       "shadow-warrior-legends",
			CoverImage: "https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1509198397868-475647b2a1e5?w=1200&h=675&fit=crop",
			},
			Description:    "Become the ultimate shadow warrior in this intense stealth action game. Master the way of the blade and strike from the darkness.",
			Price:          34.99,
			OriginalPrice:  fptr(44.99),
			Rating:         4.7,
			Genre:          []string{"Action", "Adventure", "Stealth"},
			Developer:      "Ninja Arts Studio",
			Publisher:      "Eastern Games",
			ReleaseDate:    date("2024-09-30"),
			IsTrending:     true,
			Platforms:      []string{"PC", "PlayStation", "Xbox"},
			DiscountEndsAt: &saleEnds,
			Metacritic:     iptr(88),
		},
		{
			ID:         "6",
			Title:      "Farm Life Simulator",
			Slug:       "farm-life-simulator",
			CoverImage: "https://images.unsplash.com/photo-1500937386664-56d1dfef3854?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1500937386664-56d1dfef3854?w=1200&h=675&fit=crop",
			},
			Description: "Build and manage your dream farm in this relaxing simulation. Grow crops, raise animals, and become part of a charming village community.",
			Price:       0,
			Rating:      4.3,
			Genre:       []string{"Simulation", "Casual", "Strategy"},
			Developer:   "Harvest Games",
			Publisher:   "Country Living Studios",
			ReleaseDate: date("2024-06-15"),
			IsFree:      true,
			Platforms:   []string{"PC", "Mobile"},
		},
		{
			ID:         "7",
			Title:      "Battle Royale Legends",
			Slug:       "battle-royale-legends",
			CoverImage: "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1542751371-adc38448a05e?w=1200&h=675&fit=crop",
			},
			Description: "Drop into the arena and fight to be the last one standing. Fast-paced battle royale action with a massive arsenal and ever-shrinking zones.",
			Price:       0,
			Rating:      4.5,
			Genre:       []string{"Shooter", "Battle Royale", "Multiplayer"},
			Developer:   "Victory Games",
			Publisher:   "Arena Entertainment",
			ReleaseDate: date("2024-02-28"),
			IsFeatured:  true,
			IsTrending:  true,
			IsFree:      true,
			Platforms:   []string{"PC", "PlayStation", "Xbox", "Mobile"},
		},
		{
			ID:         "8",
			Title:      "Medieval Conquest",
			Slug:       "medieval-conquest",
			CoverImage: "https://images.unsplash.com/photo-1519074069444-1ba4fff66d16?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1519074069444-1ba4fff66d16?w=1200&h=675&fit=crop",
			},
			Description: "Command armies, besiege castles and rewrite history in this grand strategy epic set across medieval Europe.",
			Price:       44.99,
			Rating:      4.6,
			Genre:       []string{"Strategy", "War", "Historical"},
			Developer:   "Empire Studios",
			Publisher:   "Kingdom Games",
			ReleaseDate: date("2025-02-01"),
			IsTrending:  true,
			Platforms:   []string{"PC"},
		},
		{
			ID:         "9",
			Title:      "Neon City Nights",
			Slug:       "neon-city-nights",
			CoverImage: "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=1200&h=675&fit=crop",
			},
			Description: "Dive into a rain-soaked cyberpunk metropolis where every choice matters. Hack, fight and talk your way through a branching neon-lit story.",
			Price:       54.99,
			Rating:      4.9,
			Genre:       []string{"RPG", "Cyberpunk", "Action"},
			Developer:   "Future Vision Games",
			Publisher:   "Digital Dreams",
			ReleaseDate: date("2025-04-20"),
			IsFeatured:  true,
			Platforms:   []string{"PC", "PlayStation", "Xbox"},
		},
		{
			ID:         "10",
			Title:      "Ocean Explorer",
			Slug:       "ocean-explorer",
			CoverImage: "https://images.unsplash.com/photo-1439405326854-014607f694d7?w=600&h=400&fit=crop",
			Screenshots: []string{
				"https://images.unsplash.com/photo-1439405326854-014607f694d7?w=1200&h=675&fit=crop",
			},
			Description: "Chart the depths of a vast living ocean. Discover shipwrecks, photograph rare creatures and unravel the sea's oldest secrets.",
			Price:       19.99,
			Rating:      4.2,
			Genre:       []string{"Adventure", "Exploration", "Casual"},
			Developer:   "Deep Blue Studios",
			Publisher:   "Aquatic Games",
			ReleaseDate: date("2024-07-12"),
			Platforms:   []string{"PC", "Switch"},
		},
	}
}

// Source adapts the static catalog to the catalog source contract.
type Source struct{}

func (Source) Fetch(ctx context.Context) ([]model.Game, error) {
	return Games(), nil
}
