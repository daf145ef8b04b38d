package solo

import (
	"context"

	"github.com/go-playground/validator/v10"
)

type OptionKey string

const ValidatorOptionKey OptionKey = "validator_options"

var defaultValidator = validator.New(validator.WithRequiredStructEnabled())

// WithValidator makes ValidateStruct use v for calls made with the returned context.
func WithValidator(ctx context.Context, v *validator.Validate) context.Context {
	return context.WithValue(ctx, ValidatorOptionKey, v)
}

// GetValidator returns the validator carried by ctx or the package default.
func GetValidator(ctx context.Context) *validator.Validate {
	v, ok := ctx.Value(ValidatorOptionKey).(*validator.Validate)
	if ok && v != nil {
		return v
	}
	return defaultValidator
}
