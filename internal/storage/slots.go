package storage

import (
	"context"
	"encoding/json"
)

// ReadSlot loads and decodes the JSON document stored under key. A missing
// slot, or one whose content does not decode into T, yields fallback; only
// store I/O failures are returned as errors.
func ReadSlot[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if raw == nil {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback, nil
	}
	return v, nil
}

// WriteSlot encodes v and stores it under key, replacing any previous value.
func WriteSlot[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
