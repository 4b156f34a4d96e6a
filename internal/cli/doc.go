// Package cli provides the interactive account manager front end.
//
// It wires configuration, the local slot store, and the account service to a
// REPL that drives the account dialog: a closed/open state machine with a
// sign-in form, a sign-up form, and a signed-in summary panel, mirroring the
// modal the original page showed. Rendering is a pure function of the dialog
// state and the current session, so transitions are testable without any
// terminal I/O.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
