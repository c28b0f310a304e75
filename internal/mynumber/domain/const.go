// Package domain defines the My Number value type and its check digit algorithm.
// A My Number is 12 decimal digits whose last digit is a weighted modulo-11 check digit
// computed from the first 11.
package domain

import (
	"errors"
)

// Digit counts.
const (
	// NumberLength is the number of digits in a complete My Number.
	NumberLength = 12

	// BaseLength is the number of data digits the check digit is computed from.
	BaseLength = NumberLength - 1
)

// FormatMode selects how a Number is rendered as text.
type FormatMode string

const (
	// FormatPlain renders the 12 digits without separators. It is the default.
	FormatPlain FormatMode = "N"
	// FormatSpaced renders 4-4-4 groups separated by spaces.
	FormatSpaced FormatMode = "S"
	// FormatHyphenated renders 4-4-4 groups separated by hyphens.
	FormatHyphenated FormatMode = "H"
	// FormatGrouped renders 4-4-3-1 groups separated by hyphens, isolating the check digit.
	FormatGrouped FormatMode = "G"
)

// Validate checks if the format mode is supported. The empty mode is accepted as FormatPlain.
func (m FormatMode) Validate() error {
	switch m {
	case "", FormatPlain, FormatSpaced, FormatHyphenated, FormatGrouped:
		return nil
	default:
		return errors.New("invalid format mode")
	}
}

// String returns the string representation of the format mode.
func (m FormatMode) String() string {
	return string(m)
}

// RangeMode selects how a range of My Numbers is enumerated.
type RangeMode string

const (
	// RangeNumerical walks every 12-digit value between the bounds and keeps the valid ones.
	RangeNumerical RangeMode = "numerical"
	// RangeSequential walks every 11-digit base between the bounds and appends its check digit.
	RangeSequential RangeMode = "sequential"
)

// Width returns the number of digits a range bound has in this mode, or 0 for an unknown mode.
func (m RangeMode) Width() int {
	switch m {
	case RangeNumerical:
		return NumberLength
	case RangeSequential:
		return BaseLength
	default:
		return 0
	}
}

// Validate checks if the range mode is supported.
func (m RangeMode) Validate() error {
	if m.Width() == 0 {
		return errors.New("invalid range mode")
	}
	return nil
}

// String returns the string representation of the range mode.
func (m RangeMode) String() string {
	return string(m)
}
