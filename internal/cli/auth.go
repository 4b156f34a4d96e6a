package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Inline dialog messages, matching the page this CLI fronts for.
const (
	msgSignInValidation = "Please enter a valid email and password."
	msgSignInRejected   = "Invalid email or password. Try again or create a new account."
	msgSignUpValidation = "Please fill all fields (password must be at least 6 characters)."
	msgEmailTaken       = "An account with this email already exists."
)

// SignIn opens the dialog on the sign-in form (or the summary when already
// signed in), prompts for credentials, and submits them. Validation and
// credential failures become inline dialog messages; on success the dialog
// closes.
func (a *App) SignIn(ctx context.Context) error {
	a.state = OpenDialog(a.state, ModeSignIn, a.isSignedIn(ctx))
	if a.state.Panel == PanelSummary {
		a.renderDialog(ctx)
		return nil
	}

	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.account.SignIn(ctx, email, string(password))
	switch {
	case errors.Is(err, services.ErrValidation):
		a.state = WithMessage(a.state, msgSignInValidation)
		a.renderDialog(ctx)
	case errors.Is(err, services.ErrInvalidCredentials):
		a.state = WithMessage(a.state, msgSignInRejected)
		a.renderDialog(ctx)
	case err != nil:
		a.log.WithError(err).Error("sign-in failed")
		return err
	default:
		printlnFn(fmt.Sprintf("Welcome back, %s!", user.Name))
		a.state = CloseDialog(a.state)
	}
	return nil
}

// SignUp opens the dialog on the sign-up form (or the summary when already
// signed in), prompts for the account fields, and submits them. On success
// the new account is signed in and the dialog closes.
func (a *App) SignUp(ctx context.Context) error {
	a.state = OpenDialog(a.state, ModeSignUp, a.isSignedIn(ctx))
	if a.state.Panel == PanelSummary {
		a.renderDialog(ctx)
		return nil
	}

	name, err := getSimpleText(a.reader, "Full Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.account.SignUp(ctx, name, email, string(password))
	switch {
	case errors.Is(err, services.ErrValidation):
		a.state = WithMessage(a.state, msgSignUpValidation)
		a.renderDialog(ctx)
	case errors.Is(err, services.ErrEmailTaken):
		a.state = WithMessage(a.state, msgEmailTaken)
		a.renderDialog(ctx)
	case err != nil:
		a.log.WithError(err).Error("sign-up failed")
		return err
	default:
		printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
		a.state = CloseDialog(a.state)
	}
	return nil
}

// SignOut clears the session and closes the dialog. Signing out while
// already signed out is a no-op.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.account.SignOut(ctx); err != nil {
		a.log.WithError(err).Error("sign-out failed")
		return err
	}
	a.state = CloseDialog(a.state)
	printlnFn("Signed out.")
	return nil
}
