package services

import "errors"

var (
	// ErrValidation reports malformed or missing form input.
	ErrValidation = errors.New("validation error")

	// ErrInvalidCredentials reports a sign-in with no matching account. It is
	// deliberately identical for unknown e-mails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken reports a sign-up with an already registered e-mail.
	ErrEmailTaken = errors.New("account already exists")
)
