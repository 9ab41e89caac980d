package model

// CartItem is one cart line, keyed by Game.ID (unique per cart; repeated
// adds accumulate quantity instead of creating duplicates).
type CartItem struct {
	Game     Game `json:"game"`
	Quantity int  `json:"quantity"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}
