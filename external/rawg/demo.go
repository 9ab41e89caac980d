package rawg

// demoRecords serves a small fixed catalog when no API key is configured,
// so the storefront stays browsable out of the box.
func demoRecords() []Record {
	games := []Game{
		{
			ID:              1,
			Slug:            "elden-ring",
			Name:            "Elden Ring",
			Released:        "2022-02-25",
			BackgroundImage: "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?w=800&h=450&fit=crop",
			Rating:          4.4,
			RatingsCount:    5000,
			Metacritic:      96,
			Genres:          []Named{{ID: 1, Name: "Action", Slug: "action"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 1, Name: "PC", Slug: "pc"}}},
			Developers:      []Named{{ID: 1, Name: "FromSoftware", Slug: "fromsoftware"}},
			Publishers:      []Named{{ID: 1, Name: "Bandai Namco", Slug: "bandai-namco"}},
		},
		{
			ID:              2,
			Slug:            "baldurs-gate-3",
			Name:            "Baldur's Gate 3",
			Released:        "2023-08-03",
			BackgroundImage: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?w=800&h=450&fit=crop",
			Rating:          4.6,
			RatingsCount:    4500,
			Metacritic:      95,
			Genres:          []Named{{ID: 2, Name: "RPG", Slug: "role-playing-games-rpg"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 1, Name: "PC", Slug: "pc"}}},
			Developers:      []Named{{ID: 2, Name: "Larian Studios", Slug: "larian-studios"}},
			Publishers:      []Named{{ID: 2, Name: "Larian Studios", Slug: "larian-studios"}},
		},
		{
			ID:              3,
			Slug:            "starfield",
			Name:            "Starfield",
			Released:        "2023-09-06",
			BackgroundImage: "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=800&h=450&fit=crop",
			Rating:          4.0,
			RatingsCount:    3000,
			Metacritic:      83,
			Genres:          []Named{{ID: 2, Name: "RPG", Slug: "role-playing-games-rpg"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 1, Name: "PC", Slug: "pc"}}},
			Developers:      []Named{{ID: 3, Name: "Bethesda Game Studios", Slug: "bethesda"}},
			Publishers:      []Named{{ID: 3, Name: "Bethesda Softworks", Slug: "bethesda-softworks"}},
		},
		{
			ID:              4,
			Slug:            "cyberpunk-2077",
			Name:            "Cyberpunk 2077",
			Released:        "2020-12-10",
			BackgroundImage: "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&h=450&fit=crop",
			Rating:          3.8,
			RatingsCount:    2500,
			Metacritic:      78,
			Genres:          []Named{{ID: 1, Name: "Action", Slug: "action"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 1, Name: "PC", Slug: "pc"}}},
			Developers:      []Named{{ID: 4, Name: "CD Projekt Red", Slug: "cd-projekt-red"}},
			Publishers:      []Named{{ID: 4, Name: "CD Projekt", Slug: "cd-projekt"}},
		},
		{
			ID:              5,
			Slug:            "the-legend-of-zelda-tears-of-the-kingdom",
			Name:            "The Legend of Zelda: Tears of the Kingdom",
			Released:        "2023-05-12",
			BackgroundImage: "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800&h=450&fit=crop",
			Rating:          4.5,
			RatingsCount:    3500,
			Metacritic:      96,
			Genres:          []Named{{ID: 2, Name: "RPG", Slug: "role-playing-games-rpg"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 2, Name: "Nintendo Switch", Slug: "nintendo-switch"}}},
			Developers:      []Named{{ID: 5, Name: "Nintendo EPD", Slug: "nintendo-epd"}},
			Publishers:      []Named{{ID: 5, Name: "Nintendo", Slug: "nintendo"}},
		},
		{
			ID:              6,
			Slug:            "helldivers-2",
			Name:            "Helldivers 2",
			Released:        "2024-02-08",
			BackgroundImage: "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=800&h=450&fit=crop",
			Rating:          4.2,
			RatingsCount:    2000,
			Metacritic:      82,
			Genres:          []Named{{ID: 3, Name: "Shooter", Slug: "shooter"}},
			Platforms:       []PlatformEntry{{Platform: Named{ID: 1, Name: "PC", Slug: "pc"}}},
			Developers:      []Named{{ID: 6, Name: "Arrowhead Game Studios", Slug: "arrowhead"}},
			Publishers:      []Named{{ID: 6, Name: "Sony Interactive Entertainment", Slug: "sony"}},
		},
	}

	records := make([]Record, 0, len(games))
	for _, g := range games {
		records = append(records, Record{Game: g})
	}
	return records
}
