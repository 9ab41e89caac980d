package repository

import (
	"context"
	"encoding/json"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/storage"
)

// CartRepository persists the full cart snapshot as JSON under one fixed key.
type CartRepository struct {
	KV storage.KV
}

func NewCartRepository(kv storage.KV) *CartRepository {
	return &CartRepository{KV: kv}
}

// Load returns the persisted cart, or an empty cart when nothing was stored.
func (r *CartRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	raw, err := r.KV.Get(storage.KeyCart)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.CartItem{}, nil
	}
	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// Save replaces the persisted cart with the given snapshot.
func (r *CartRepository) Save(ctx context.Context, items []model.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.KV.Put(storage.KeyCart, raw)
}
