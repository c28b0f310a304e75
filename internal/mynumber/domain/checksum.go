package domain

import (
	"github.com/allisson/mynumber/internal/errors"
)

// CalculateCheckDigit computes the check digit for the first 11 digits of a My Number.
// digits[0] is the most significant digit. Returns ErrMalformedInput if digits is nil,
// is not exactly 11 long or holds a value outside 0-9.
func CalculateCheckDigit(digits []int) (int, error) {
	if err := validateDigits(digits, BaseLength); err != nil {
		return 0, err
	}
	return checkDigit(digits), nil
}

// VerifyNumber reports whether the last of the 12 digits is the check digit of the first 11.
// Returns ErrMalformedInput if digits is nil, is not exactly 12 long or holds a value outside 0-9.
func VerifyNumber(digits []int) (bool, error) {
	if err := validateDigits(digits, NumberLength); err != nil {
		return false, err
	}
	return digits[BaseLength] == checkDigit(digits[:BaseLength]), nil
}

// checkDigit assumes digits holds exactly BaseLength values in 0-9.
// The n-th digit from the end weighs n+1 for n in 1..6 and n-5 for n in 7..11.
func checkDigit(digits []int) int {
	sum := 0
	for n := 1; n <= BaseLength; n++ {
		weight := n + 1
		if n > 6 {
			weight = n - 5
		}
		sum += weight * digits[BaseLength-n]
	}

	// Remainders 0 and 1 both map to 0.
	remainder := sum % 11
	if remainder <= 1 {
		return 0
	}
	return 11 - remainder
}

// validateDigits checks length and digit range before any arithmetic runs.
func validateDigits(digits []int, length int) error {
	if digits == nil {
		return errors.Wrap(ErrMalformedInput, "sequence is required")
	}
	if len(digits) != length {
		return errors.Wrapf(ErrMalformedInput, "must be %d digits, got %d", length, len(digits))
	}
	for i, d := range digits {
		if d < 0 || d > 9 {
			return errors.Wrapf(ErrMalformedInput, "digit %d at position %d is outside 0-9", d, i)
		}
	}
	return nil
}
