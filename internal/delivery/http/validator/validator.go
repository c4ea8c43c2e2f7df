// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "localia/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the application's
// VALIDATION_FAILED error with the validator's explanation attached.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
