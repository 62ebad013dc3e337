// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// Besides the built-in tags it registers "secp256k1pub", which accepts a hex
// encoded uncompressed secp256k1 public key (64 bytes, or 65 with the 04 prefix,
// optionally 0x-prefixed). The validator is built on first use or by an explicit
// call to Init.
package validator

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidation is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidation = errors.New("validation error")

var (
	// validator is the singleton instance of the go-playground validator.
	validator *gvalidator.Validate

	// initValidatorOnce guards the singleton construction.
	initValidatorOnce sync.Once
)

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the validator instance and registers the custom tags.
// It is safe to call Init multiple times; only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		v.RegisterValidation("secp256k1pub", isSecp256k1PublicKey)
		validator = v
	})
}

// isSecp256k1PublicKey reports whether the field is a hex uncompressed public key.
func isSecp256k1PublicKey(fl gvalidator.FieldLevel) bool {
	s := strings.TrimPrefix(strings.TrimPrefix(fl.Field().String(), "0x"), "0X")

	raw, err := hex.DecodeString(s)
	if err != nil {
		return false
	}

	switch len(raw) {
	case 64:
		return true
	case 65:
		return raw[0] == 0x04
	default:
		return false
	}
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidation as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidation and one formatted message for each field that failed validation.
func Validate(v any) error {
	Init()

	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
