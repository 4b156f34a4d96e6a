// Package session persists the current-user pointer, independently of the
// directory so it survives reloads and directory edits.
package session

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
)

// Repository describes access to the session slot. The slot holds a full
// snapshot of the signed-in user, not a reference: after any mutation of the
// underlying directory record the caller must Set the session again or the
// snapshot goes stale.
type Repository interface {
	// Current returns the session snapshot, or nil when signed out.
	Current(ctx context.Context) (*models.User, error)

	// Set stores a snapshot of user. A nil user clears the session.
	Set(ctx context.Context, user *models.User) error
}
