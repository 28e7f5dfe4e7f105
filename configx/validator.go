package configx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidatorOption configures the validator.
type ValidatorOption func(*validator.Validate)

// WithRule registers a custom validation tag backed by fn, which
// receives the field's string value.
func WithRule(tag string, fn func(string) bool) ValidatorOption {
	return func(v *validator.Validate) {
		// RegisterValidation only fails on an empty tag or nil func.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
}

// WithTagNameFrom reports field names using the given struct tag (e.g. "yaml")
// instead of the Go field name.
func WithTagNameFrom(tag string) ValidatorOption {
	return func(v *validator.Validate) {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	}
}

// NewValidator creates a new validator instance.
func NewValidator(opts ...ValidatorOption) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateStruct validates a struct using validator tags.
func ValidateStruct(v *validator.Validate, target any) error {
	if v == nil {
		v = NewValidator()
	}

	if err := v.Struct(target); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
