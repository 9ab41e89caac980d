package repository

import (
	"context"
	"encoding/json"

	"GameVaultAPI/internal/storage"
)

// WishlistRepository persists the ordered wishlist id list as JSON.
type WishlistRepository struct {
	KV storage.KV
}

func NewWishlistRepository(kv storage.KV) *WishlistRepository {
	return &WishlistRepository{KV: kv}
}

func (r *WishlistRepository) Load(ctx context.Context) ([]string, error) {
	raw, err := r.KV.Get(storage.KeyWishlist)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (r *WishlistRepository) Save(ctx context.Context, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return r.KV.Put(storage.KeyWishlist, raw)
}
