package domain

import (
	"github.com/allisson/mynumber/internal/errors"
)

var (
	// ErrMalformedInput indicates a digit sequence of the wrong length or with a digit outside 0-9.
	ErrMalformedInput = errors.Wrap(errors.ErrInvalidInput, "malformed sequence")

	// ErrInvalidCheckDigit indicates a 12-digit sequence whose last digit is not its check digit.
	ErrInvalidCheckDigit = errors.Wrap(ErrMalformedInput, "check digit mismatch")

	// ErrInvalidFormat indicates a string that does not parse into a valid My Number.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid my number format")

	// ErrUnsupportedFormat indicates an unknown format mode.
	ErrUnsupportedFormat = errors.Wrap(errors.ErrInvalidInput, "unsupported format mode")

	// ErrInvalidRange indicates range bounds that fail the enumeration preconditions.
	ErrInvalidRange = errors.Wrap(errors.ErrInvalidInput, "invalid range")

	// ErrInvalidCount indicates a non-positive number of values to generate.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "invalid count")
)
