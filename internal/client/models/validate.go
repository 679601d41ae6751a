package models

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials is the registration input. The only client-side rules are
// a well-formed email and a minimum secret length; everything else is the
// backend's call.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// LoginCredentials is the login input. Only presence is checked: an
// existing account may predate the current registration rules, so the
// backend gets the final word on anything beyond non-emptiness.
type LoginCredentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// Validate runs struct-tag validation on any of the input models.
func Validate(v any) error {
	return validate.Struct(v)
}
