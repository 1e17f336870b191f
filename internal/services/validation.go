package services

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRegistration checks the fields in a fixed order; the first failure wins.
func validateRegistration(username, email, password string) error {
	if validate.Var(password, "min=6") != nil {
		return ErrPasswordTooShort
	}
	if validate.Var(username, "min=3") != nil {
		return ErrUsernameTooShort
	}
	if validate.Var(username, "max=32") != nil {
		return ErrUsernameTooLong
	}
	if validate.Var(username, "alphanum") != nil {
		return ErrUsernameNotAlphanumeric
	}
	if validate.Var(email, "max=120") != nil {
		return ErrEmailTooLong
	}
	if validate.Var(email, "required,email") != nil {
		return ErrEmailInvalid
	}
	return nil
}

// validateURL accepts absolute http and https URLs with a host.
func validateURL(url string) error {
	if validate.Var(url, "required,http_url") != nil {
		return ErrURLInvalid
	}
	return nil
}

// validateBody rejects NUL characters, which PostgreSQL text cannot store.
func validateBody(body string) error {
	if validate.Var(body, "excludesrune=\x00") != nil {
		return ErrBodyInvalid
	}
	return nil
}
