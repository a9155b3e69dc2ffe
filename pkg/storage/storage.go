// Package storage defines the key/value contract the to-do core persists
// through, plus the in-memory and file backends.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"suite/pkg/utils"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("store is closed")

// Store is a durable string key/value store scoped to one profile.
type Store interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// LoadJSON decodes the payload stored under key into v. It returns false
// when the key is absent, unreadable or malformed; the last two cases are
// logged and v is left untouched so the caller keeps its default.
func LoadJSON(s Store, key string, v any) bool {
	raw, ok, err := s.Get(key)
	if err != nil {
		utils.Warn("failed to read key", "key", key, "error", err)
		return false
	}
	if !ok || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		utils.Warn("failed to parse stored value", "key", key, "error", err)
		return false
	}
	return true
}

// SaveJSON encodes v and writes it under key.
func SaveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
