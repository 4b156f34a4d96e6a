package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/models"
)

// TriggerLabel is the navigation trigger text: the visitor's first name when
// signed in, a sign-in call to action otherwise.
func TriggerLabel(user *models.User) string {
	if user != nil {
		return fmt.Sprintf("Hi, %s", user.FirstName())
	}
	return "Sign In"
}

// Render produces the textual account dialog for the given state. A session
// forces the summary view regardless of the panel the state carries.
func Render(s DialogState, user *models.User) string {
	if !s.Open {
		return ""
	}

	var b strings.Builder
	if user != nil {
		renderSummary(&b, user)
	} else {
		renderForms(&b, s)
	}
	return b.String()
}

func renderForms(b *strings.Builder, s DialogState) {
	if s.Panel == PanelSignUp {
		b.WriteString("[ Sign In ] [*Create Account*]\n")
		b.WriteString("Create your account\n")
		b.WriteString("Sign up to store your favourites and checkout faster.\n")
		b.WriteString("Fields: Full Name, Email, Password (minimum 6 characters)\n")
	} else {
		b.WriteString("[*Sign In*] [ Create Account ]\n")
		b.WriteString("Welcome back\n")
		b.WriteString("Sign in to sync your activity across the site.\n")
		b.WriteString("Fields: Email, Password\n")
	}
	if s.Message != "" {
		fmt.Fprintf(b, "! %s\n", s.Message)
	}
}

func renderSummary(b *strings.Builder, user *models.User) {
	fmt.Fprintf(b, "Welcome back, %s!\n", user.Name)
	b.WriteString("You are signed in and your activity is being tracked.\n")
	fmt.Fprintf(b, "Email: %s\n", user.Email)
	b.WriteString("Your recent activity:\n")
	b.WriteString(RenderActivityList(user))
}

// RenderActivityList lists the user's activities newest first, one per line,
// with local-time stamps.
func RenderActivityList(user *models.User) string {
	if user == nil || len(user.Activities) == 0 {
		return "No activity tracked yet.\n"
	}

	var b strings.Builder
	for i := len(user.Activities) - 1; i >= 0; i-- {
		a := user.Activities[i]
		line := a.Type
		if a.Label != "" {
			line += " " + a.Label
		}
		if a.Details != "" {
			line += " (" + a.Details + ")"
		}
		if t := a.Time(); !t.IsZero() {
			line += " " + t.Local().Format("02 Jan 2006 15:04")
		}
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}
