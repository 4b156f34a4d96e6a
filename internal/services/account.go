// Package services contains the application service for the account manager:
// registration, credential matching, session handling, and activity tracking.
package services

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/session"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/users"
)

// emailShape is the shape check applied to sign-in/sign-up e-mails. It is a
// loose local@domain.tld test, not RFC validation.
var emailShape = regexp.MustCompile(`.+@.+\..+`)

const minPasswordLen = 6

// AccountService defines the operations the UI and embedders drive.
//
// Contract:
//   - SignIn: authenticate against the directory and set the session.
//   - SignUp: register a new account, persist it, and set the session.
//   - SignOut: clear the session; a no-op when already signed out.
//   - CurrentUser: the session snapshot, or nil when signed out.
//   - RecordActivity: append a stamped activity to the signed-in user's log,
//     capped at models.ActivityLimit entries.
type AccountService interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, name, email, password string) (*models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	RecordActivity(ctx context.Context, activity models.Activity) error
}

// accountService is the concrete AccountService over the directory and
// session repositories. The store is the source of truth: every operation
// re-reads it rather than trusting an in-memory copy.
type accountService struct {
	users   users.Repository
	session session.Repository
	scheme  PasswordScheme
	log     *logrus.Logger
	now     func() time.Time
}

// NewAccountService constructs an AccountService bound to the given
// repositories and password scheme.
func NewAccountService(u users.Repository, s session.Repository, scheme PasswordScheme, log *logrus.Logger) AccountService {
	return &accountService{users: u, session: s, scheme: scheme, log: log, now: time.Now}
}

// SignIn normalizes the e-mail, validates the input shape, and looks for a
// directory entry matching both the normalized e-mail and the password under
// the configured scheme. On success the session is set to a snapshot of the
// matched record.
func (a *accountService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if !emailShape.MatchString(email) || password == "" {
		return nil, ErrValidation
	}

	all, err := a.users.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if models.NormalizeEmail(all[i].Email) == email && a.scheme.Match(all[i].Password, password) {
			user := all[i]
			if err := a.session.Set(ctx, &user); err != nil {
				return nil, err
			}
			a.log.WithField("email", email).Debug("sign-in successful")
			return &user, nil
		}
	}

	a.log.WithField("email", email).Debug("sign-in rejected")
	return nil, ErrInvalidCredentials
}

// SignUp validates the input, rejects duplicate e-mails case-insensitively,
// appends the new user to the directory (registration order is preserved),
// persists the whole directory, and signs the new user in.
func (a *accountService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)
	if name == "" || !emailShape.MatchString(email) || utf8.RuneCountInString(password) < minPasswordLen {
		return nil, ErrValidation
	}

	all, err := a.users.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if models.NormalizeEmail(all[i].Email) == email {
			return nil, ErrEmailTaken
		}
	}

	stored, err := a.scheme.Hash(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: name, Email: email, Password: stored, Activities: []models.Activity{}}
	all = append(all, user)

	if err := a.users.SaveAll(ctx, all); err != nil {
		return nil, err
	}
	if err := a.session.Set(ctx, &user); err != nil {
		return nil, err
	}

	a.log.WithField("email", email).Debug("account registered")
	return &user, nil
}

// SignOut clears the session. Calling it while signed out is a no-op.
func (a *accountService) SignOut(ctx context.Context) error {
	return a.session.Set(ctx, nil)
}

// CurrentUser returns the session snapshot, or nil when signed out.
func (a *accountService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.session.Current(ctx)
}

// RecordActivity stamps the activity with the current time and appends it to
// the signed-in user's log, keeping the newest models.ActivityLimit entries.
// It silently ignores activities without a type, calls made while signed
// out, and sessions whose record has vanished from the directory.
func (a *accountService) RecordActivity(ctx context.Context, activity models.Activity) error {
	if activity.Type == "" {
		return nil
	}

	current, err := a.session.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	all, err := a.users.LoadAll(ctx)
	if err != nil {
		return err
	}

	email := models.NormalizeEmail(current.Email)
	idx := -1
	for i := range all {
		if models.NormalizeEmail(all[i].Email) == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		// The session can outlive its directory record; tracking is dropped
		// rather than resurrecting the account.
		return nil
	}

	activity.Timestamp = a.now().UTC().Format(time.RFC3339)
	all[idx].AppendActivity(activity)

	if err := a.users.SaveAll(ctx, all); err != nil {
		return err
	}

	// Keep the session snapshot in step with the directory record.
	return a.session.Set(ctx, &all[idx])
}
