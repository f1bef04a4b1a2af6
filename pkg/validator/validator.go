package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts go-playground/validator to echo.Validator
type EchoValidator struct {
	v *validator.Validate
}

// New creates a new EchoValidator instance
func New() *EchoValidator {
	return &EchoValidator{v: validator.New()}
}

// Validate performs struct validation
func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.v.Struct(i)
}
