// Package validator plugs go-playground/validator into Echo.
package validator

import (
	domainerrors "directorio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance so Echo can call it on bound
// request payloads.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the Echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error middleware renders a consistent envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
