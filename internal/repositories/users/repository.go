// Package users persists the registered-user directory.
package users

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
)

// Repository describes access to the user directory. The directory is read
// and written wholesale: SaveAll replaces the entire stored collection.
// Concurrent writers race and the last write wins; that is a documented
// limitation, not something the repository guards against.
type Repository interface {
	// LoadAll returns every registered user in registration order.
	LoadAll(ctx context.Context) ([]models.User, error)

	// SaveAll replaces the stored directory with users.
	SaveAll(ctx context.Context, users []models.User) error
}
