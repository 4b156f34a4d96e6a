// Package accountkeeper exposes the embeddable account surface: read the
// current session, record activity against it, and sign out. Host features
// are expected to call only this package; registration and sign-in stay with
// the interactive front end.
package accountkeeper

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/session"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/users"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
)

// Activity is a tracked event: a required type, optional label and details.
// The timestamp is stamped at record time.
type Activity = models.Activity

// User is a registered account record.
type User = models.User

// Manager is the embeddable account manager over a local slot store.
type Manager struct {
	account services.AccountService
	db      *sql.DB
}

// Open opens (creating if necessary) the account store at dsn and returns a
// Manager over it, using the plain password scheme. A nil log disables
// structured output.
func Open(ctx context.Context, dsn string, log *logrus.Logger) (*Manager, error) {
	if log == nil {
		log = logrus.New()
	}

	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}

	store := storage.NewSQLiteStore(db)
	account := services.NewAccountService(
		users.NewStoreRepository(store),
		session.NewStoreRepository(store),
		services.PlainScheme{},
		log,
	)

	return &Manager{account: account, db: db}, nil
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	return m.db.Close()
}

// CurrentUser returns the signed-in user snapshot, or nil.
func (m *Manager) CurrentUser(ctx context.Context) (*User, error) {
	return m.account.CurrentUser(ctx)
}

// RecordActivity appends a stamped activity to the signed-in user's log.
// It is silently ignored while signed out or when the type is empty.
func (m *Manager) RecordActivity(ctx context.Context, a Activity) error {
	return m.account.RecordActivity(ctx, a)
}

// SignOut clears the session.
func (m *Manager) SignOut(ctx context.Context) error {
	return m.account.SignOut(ctx)
}

// defaultManager backs the package-level convenience hook.
var defaultManager *Manager

// SetDefault installs the Manager used by RecordUserActivity.
func SetDefault(m *Manager) { defaultManager = m }

// RecordUserActivity records an activity on the default Manager. It is a
// no-op when no default has been installed.
func RecordUserActivity(ctx context.Context, a Activity) error {
	if defaultManager == nil {
		return nil
	}
	return defaultManager.RecordActivity(ctx, a)
}
