package utils

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's
// e.Validator hook so handlers can call c.Validate on bound requests.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request structs
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
