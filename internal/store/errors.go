package store

import "errors"

// ErrNotFound is returned when no task matches both the id and the owner.
// A task belonging to another owner is indistinguishable from a missing one.
var ErrNotFound = errors.New("task not found")

// ErrEmailTaken is returned when signing up with an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")

// ErrBadCredentials is returned when login fails. It does not say whether
// the email or the password was wrong.
var ErrBadCredentials = errors.New("invalid email or password")

// ValidationError reports rejected input. The message is safe to show to
// the client.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
