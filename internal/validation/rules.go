// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"
	"golang.org/x/text/width"

	apperrors "github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/mynumber/domain"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Narrow maps full-width characters to their ASCII forms and trims surrounding whitespace,
// so "６１４１" becomes "6141". Input typed with a Japanese IME often arrives full-width.
func Narrow(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}

// IsNumeric reports whether s is non-empty and made only of ASCII digits.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Numeric validates that a string holds only ASCII digits.
var Numeric = validation.NewStringRuleWithError(
	IsNumeric,
	validation.NewError("validation_numeric", "needs to be numeric"),
)

// FormatMode validates a My Number format mode (N, S, H or G).
var FormatMode = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_format_mode_type", "must be a string")
	}
	if err := domain.FormatMode(s).Validate(); err != nil {
		return validation.NewError("validation_format_mode", "must be one of N, S, H, G")
	}
	return nil
})

// RangeMode validates a range enumeration mode (numerical or sequential).
var RangeMode = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_range_mode_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if err := domain.RangeMode(s).Validate(); err != nil {
		return validation.NewError("validation_range_mode", "must be numerical or sequential")
	}
	return nil
})
