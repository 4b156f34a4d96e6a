package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
)

const slotKey = "current_user"

// StoreRepository keeps the session snapshot as one JSON object in a storage
// slot.
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

// Current reads the session slot. Missing or malformed content yields nil.
func (r *StoreRepository) Current(ctx context.Context) (*models.User, error) {
	user, err := storage.ReadSlot[*models.User](ctx, r.store, slotKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return user, nil
}

func (r *StoreRepository) Set(ctx context.Context, user *models.User) error {
	if user == nil {
		if err := r.store.Delete(ctx, slotKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}
	if err := storage.WriteSlot(ctx, r.store, slotKey, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
