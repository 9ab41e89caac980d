package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"GameVaultAPI/internal/model"
)

const defaultPageSize = 40

// Client fetches the game catalog from the RAWG API. Without an API key it
// serves the built-in demo records instead of calling out.
type Client struct {
	apiKey   string
	client   *http.Client
	baseURL  string
	pageSize int
}

func NewClient(apiKey string, pageSize int) *Client {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  "https://api.rawg.io/api",
		pageSize: pageSize,
	}
}

// Available reports whether a real upstream call can be made.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type listResponse struct {
	Count   int    `json:"count"`
	Results []Game `json:"results"`
}

// Named is the id/name/slug triple RAWG uses for genres, developers and
// publishers.
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PlatformEntry struct {
	Platform Named `json:"platform"`
}

type Screenshot struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Game is the raw RAWG game representation.
type Game struct {
	ID               int             `json:"id"`
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	Released         string          `json:"released"`
	BackgroundImage  string          `json:"background_image"`
	Rating           float64         `json:"rating"`
	RatingsCount     int             `json:"ratings_count"`
	Metacritic       int             `json:"metacritic"`
	DescriptionRaw   string          `json:"description_raw"`
	Genres           []Named         `json:"genres"`
	Platforms        []PlatformEntry `json:"platforms"`
	Developers       []Named         `json:"developers"`
	Publishers       []Named         `json:"publishers"`
	ShortScreenshots []Screenshot    `json:"short_screenshots"`
}

// FetchRecords pulls one top-rated page of games, or the demo records when
// no API key is configured.
func (c *Client) FetchRecords(ctx context.Context) ([]Record, error) {
	if !c.Available() {
		return demoRecords(), nil
	}

	u, err := url.Parse(c.baseURL + "/games")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("page_size", fmt.Sprintf("%d", c.pageSize))
	q.Set("ordering", "-rating")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rawg: unexpected status %s", resp.Status)
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(out.Results))
	for _, g := range out.Results {
		// RAWG carries no native pricing
		records = append(records, Record{Game: g})
	}
	return records, nil
}

// Fetch returns the catalog already converted to the canonical shape.
func (c *Client) Fetch(ctx context.Context) ([]model.Game, error) {
	records, err := c.FetchRecords(ctx)
	if err != nil {
		return nil, err
	}
	games := make([]model.Game, 0, len(records))
	for _, rec := range records {
		games = append(games, ConvertRecord(rec))
	}
	return games, nil
}
