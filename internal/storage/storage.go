// Package storage implements the durable slot store backing the account
// manager: named slots each holding one JSON document. The store is the
// source of truth; callers re-read it on every operation instead of caching.
package storage

import "context"

// Store describes access to named slots.
//
// Contract:
//   - Get returns (nil, nil) when the slot is absent.
//   - Set replaces the slot value wholesale.
//   - Delete removes the slot and is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
