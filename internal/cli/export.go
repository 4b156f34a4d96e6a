package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
)

// backup is the on-disk export document: both persisted slots in one file.
type backup struct {
	Users       []models.User `json:"users"`
	CurrentUser *models.User  `json:"currentUser,omitempty"`
}

// Export writes the directory and session to a JSON file. With no argument,
// a unique file name is generated.
func (a *App) Export(ctx context.Context, args []string) error {
	all, err := a.users.LoadAll(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to load users for export")
		return err
	}
	current, err := a.account.CurrentUser(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to read session for export")
		return err
	}

	path := fmt.Sprintf("accounts-%v.json", uuid.New())
	if len(args) > 0 {
		path = args[0]
	}

	data, err := json.MarshalIndent(backup{Users: all, CurrentUser: current}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		a.log.WithError(err).Error("failed to write export file")
		return err
	}

	printlnFn("Exported to " + path)
	return nil
}
