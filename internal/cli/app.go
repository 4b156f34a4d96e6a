package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/dmitrijs2005/accountkeeper/internal/config"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/session"
	"github.com/dmitrijs2005/accountkeeper/internal/repositories/users"
	"github.com/dmitrijs2005/accountkeeper/internal/services"
	"github.com/dmitrijs2005/accountkeeper/internal/storage"
)

// App wires the account service to the interactive dialog.
type App struct {
	config  *config.Config
	account services.AccountService
	users   users.Repository
	db      *sql.DB
	state   DialogState
	reader  *bufio.Reader
	log     *logrus.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	scheme, err := services.SchemeByName(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Error("failed to open account store")
		return nil, err
	}

	store := storage.NewSQLiteStore(db)
	userRepo := users.NewStoreRepository(store)
	account := services.NewAccountService(userRepo, session.NewStoreRepository(store), scheme, log)

	return &App{
		config:  cfg,
		account: account,
		users:   userRepo,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		log:     log,
	}, nil
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.log.Info("account manager started")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// status is the prompt decoration: the trigger label for the current session.
func (a *App) status(ctx context.Context) string {
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		return ""
	}
	return TriggerLabel(user)
}

func (a *App) isSignedIn(ctx context.Context) bool {
	user, err := a.account.CurrentUser(ctx)
	return err == nil && user != nil
}

// renderDialog prints the dialog for the current state and session.
func (a *App) renderDialog(ctx context.Context) {
	if !a.state.Open {
		return
	}
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to read session")
		return
	}
	printlnFn(Render(a.state, user))
}

// Open handles a trigger click: the dialog opens on the requested form, or
// on the summary when a session exists.
func (a *App) Open(ctx context.Context, mode string) error {
	a.state = OpenDialog(a.state, Mode(mode), a.isSignedIn(ctx))
	a.renderDialog(ctx)
	return nil
}

// Tab switches between the sign-in and sign-up forms.
func (a *App) Tab(ctx context.Context, mode string) error {
	a.state = SwitchTab(a.state, Mode(mode))
	a.renderDialog(ctx)
	return nil
}

// Dismiss closes the dialog without changing any data. It backs every close
// affordance the page had: backdrop click, close button, Escape.
func (a *App) Dismiss(ctx context.Context) error {
	a.state = CloseDialog(a.state)
	return nil
}
