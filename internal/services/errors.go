package services

import "errors"

// Error kinds. Every user-facing error unwraps to exactly one of them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a user-facing failure: its message is safe to return to clients.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Auth errors.
var (
	ErrPasswordTooShort        = newError(ErrValidation, "Password is too short")
	ErrUsernameTooShort        = newError(ErrValidation, "Username is too short")
	ErrUsernameTooLong         = newError(ErrValidation, "Username is too long")
	ErrUsernameNotAlphanumeric = newError(ErrValidation, "Username should be alphanumeric, also no spaces")
	ErrEmailInvalid            = newError(ErrValidation, "Email is not valid")
	ErrEmailTooLong            = newError(ErrValidation, "Email is too long")
	ErrEmailTaken              = newError(ErrConflict, "Email is taken")
	ErrUsernameTaken           = newError(ErrConflict, "Username is taken")
	ErrInvalidCredentials      = newError(ErrUnauthorized, "Wrong credentials")
	ErrInvalidToken            = newError(ErrUnauthorized, "Invalid or expired token")
)

// Bookmark errors.
var (
	ErrURLInvalid       = newError(ErrValidation, "Enter a valid url")
	ErrURLExists        = newError(ErrConflict, "URL already exists")
	ErrBodyInvalid      = newError(ErrValidation, "Body must not contain NUL characters")
	ErrInvalidPage      = newError(ErrValidation, "Page and per_page must be positive integers")
	ErrPageNotFound     = newError(ErrNotFound, "Page not found")
	ErrBookmarkNotFound = newError(ErrNotFound, "Item not found")
	ErrShortURLNotFound = newError(ErrNotFound, "Not found")
)
