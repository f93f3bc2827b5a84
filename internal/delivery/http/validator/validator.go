// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "pluvio/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(),
	}
}

// Validate runs struct tag validation and maps failures to the API's
// missing-fields error.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage(err.Error())
	}

	return nil
}
