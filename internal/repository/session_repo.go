package repository

import (
	"context"
	"encoding/json"

	"GameVaultAPI/internal/model"
	"GameVaultAPI/internal/storage"
)

// SessionRepository persists the single local session record.
type SessionRepository struct {
	KV storage.KV
}

func NewSessionRepository(kv storage.KV) *SessionRepository {
	return &SessionRepository{KV: kv}
}

// Load returns the persisted profile, or nil when no session exists.
func (r *SessionRepository) Load(ctx context.Context) (*model.UserProfile, error) {
	raw, err := r.KV.Get(storage.KeySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var profile model.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save replaces any existing session record.
func (r *SessionRepository) Save(ctx context.Context, profile model.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.KV.Put(storage.KeySession, raw)
}

// Clear removes the session record entirely.
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.KV.Delete(storage.KeySession)
}
