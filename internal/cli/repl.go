package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn(ctx context.Context) bool
	Open(ctx context.Context, mode string) error
	Tab(ctx context.Context, mode string) error
	Dismiss(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	SignOut(ctx context.Context) error
	Whoami(ctx context.Context) error
	Track(ctx context.Context, args []string) error
	Activities(ctx context.Context) error
	Export(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the account manager.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current session status (from statusFn) and accepts:
//
//	Signed out:
//	  - help                       — show available commands
//	  - open [signin|signup]       — open the account dialog
//	  - tab [signin|signup]        — switch dialog tab
//	  - signin | signup            — fill and submit the form
//	  - close                      — dismiss the dialog
//	  - exit | quit                — leave the program
//
//	Signed in:
//	  - whoami                     — show the signed-in account
//	  - track <type> [label] [details...]
//	  - activities                 — list the recent activity log
//	  - export [file]              — write a JSON backup
//	  - signout                    — sign out
//	  - open / close / help / exit — as above
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak (%s) > ", statusFn(ctx)))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		mode := "signin"
		if len(args) > 0 {
			mode = args[0]
		}

		switch cmd {
		case "help":
			if a.isSignedIn(ctx) {
				printlnFn("Available commands: whoami, track, activities, export, signout, open, close, exit")
			} else {
				printlnFn("Available commands: signin, signup, open, tab, close, exit")
			}

		case "open":
			_ = a.Open(ctx, mode)

		case "tab":
			_ = a.Tab(ctx, mode)

		case "close", "esc":
			_ = a.Dismiss(ctx)

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "signout", "logout":
			_ = a.SignOut(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "track":
			_ = a.Track(ctx, args)

		case "l", "activities":
			_ = a.Activities(ctx)

		case "export":
			_ = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
