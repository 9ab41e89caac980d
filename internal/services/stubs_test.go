package services

import (
	"errors"

	"GameVaultAPI/internal/model"
)

// memKV is an in-memory stand-in for the durable store. With failPuts set
// every write fails, for pinning the write-failure policy.
type memKV struct {
	data     map[string][]byte
	failPuts bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (m *memKV) Put(key string, value []byte) error {
	if m.failPuts {
		return errors.New("write failed")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(key string) error {
	if m.failPuts {
		return errors.New("delete failed")
	}
	delete(m.data, key)
	return nil
}

func paidGame(id string, price float64) model.Game {
	return model.Game{
		ID:    id,
		Title: "Game " + id,
		Slug:  "game-" + id,
		Price: price,
	}
}

func freeGame(id string) model.Game {
	return model.Game{
		ID:     id,
		Title:  "Game " + id,
		Slug:   "game-" + id,
		IsFree: true,
	}
}
