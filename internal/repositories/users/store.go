package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
)

const slotKey = "users"

// StoreRepository keeps the directory as one JSON array in a storage slot.
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// LoadAll reads the directory slot. Missing, malformed, or non-array content
// yields an empty directory.
func (r *StoreRepository) LoadAll(ctx context.Context) ([]models.User, error) {
	all, err := storage.ReadSlot(ctx, r.store, slotKey, []models.User{})
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if all == nil {
		all = []models.User{}
	}
	return all, nil
}

func (r *StoreRepository) SaveAll(ctx context.Context, users []models.User) error {
	if err := storage.WriteSlot(ctx, r.store, slotKey, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
