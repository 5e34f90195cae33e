// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
