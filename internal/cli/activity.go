package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
)

// Whoami prints the signed-in account, if any.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to read session")
		return err
	}
	if user == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", user.Name, user.Email))
	return nil
}

// Track records an activity for the current session. Tracking while signed
// out is silently ignored, as on the page.
func (a *App) Track(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: track <type> [label] [details...]")
		return nil
	}

	activity := models.Activity{Type: args[0]}
	if len(args) > 1 {
		activity.Label = args[1]
	}
	if len(args) > 2 {
		activity.Details = strings.Join(args[2:], " ")
	}

	if err := a.account.RecordActivity(ctx, activity); err != nil {
		a.log.WithError(err).Error("failed to record activity")
		return err
	}

	// An open summary re-renders its activity list.
	a.renderDialog(ctx)
	return nil
}

// Activities prints the recent activity log, newest first.
func (a *App) Activities(ctx context.Context) error {
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to read session")
		return err
	}
	printlnFn(RenderActivityList(user))
	return nil
}
