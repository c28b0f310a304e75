// Package service provides the algorithms built on top of the My Number domain type.
package service

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/mynumber/domain"
)

// RangeEnumerator walks an inclusive range of counters in numeric order. In numerical mode
// the counters are 12-digit candidates and only those with a valid check digit are yielded.
// In sequential mode the counters are 11-digit bases and every base is yielded with its
// check digit appended.
type RangeEnumerator struct {
	mode domain.RangeMode
	min  []int
	max  []int
}

// NewRangeEnumerator validates the bounds and prepares an enumerator. Both bounds must be
// non-empty decimal strings no longer than the mode width, and min must not exceed max.
// Returns ErrInvalidRange otherwise.
func NewRangeEnumerator(minValue, maxValue string, mode domain.RangeMode) (*RangeEnumerator, error) {
	width := mode.Width()
	if width == 0 {
		return nil, errors.Wrapf(domain.ErrInvalidRange, "unknown mode %q", mode)
	}
	if err := validateBound("min", minValue, width); err != nil {
		return nil, err
	}
	if err := validateBound("max", maxValue, width); err != nil {
		return nil, err
	}

	// Equal-width decimal strings order the same way as their values.
	minFilled := fill(minValue, width)
	maxFilled := fill(maxValue, width)
	if minFilled > maxFilled {
		return nil, errors.Wrap(domain.ErrInvalidRange, "max value must be larger than min")
	}

	return &RangeEnumerator{
		mode: mode,
		min:  toDigits(minFilled),
		max:  toDigits(maxFilled),
	}, nil
}

// Bounds returns the zero-padded bounds.
func (e *RangeEnumerator) Bounds() (string, string) {
	return toString(e.min), toString(e.max)
}

// Count returns how many counters the range covers, including both bounds. In numerical
// mode this is an upper bound on the number of values yielded.
func (e *RangeEnumerator) Count() uint64 {
	minStr, maxStr := e.Bounds()
	// Bounds are at most 12 digits, well within uint64.
	lo, _ := strconv.ParseUint(minStr, 10, 64)
	hi, _ := strconv.ParseUint(maxStr, 10, 64)
	return hi - lo + 1
}

// All returns a lazy sequence over the range. Every call starts again from min.
func (e *RangeEnumerator) All() iter.Seq[domain.Number] {
	return func(yield func(domain.Number) bool) {
		current := slices.Clone(e.min)
		for {
			if n, ok := e.emit(current); ok {
				if !yield(n) {
					return
				}
			}
			if compare(current, e.max) {
				return
			}
			if !increment(current) {
				return
			}
		}
	}
}

// emit turns the counter into a Number, reporting false when numerical mode filters it out.
func (e *RangeEnumerator) emit(current []int) (domain.Number, bool) {
	if e.mode == domain.RangeSequential {
		n, err := domain.FromFirstElevenDigits(current)
		return n, err == nil
	}

	valid, err := domain.VerifyNumber(current)
	if err != nil || !valid {
		return domain.Number{}, false
	}
	n, err := domain.NewNumber(current)
	return n, err == nil
}

// validateBound checks a single range bound against the mode width.
func validateBound(name, bound string, width int) error {
	if bound == "" {
		return errors.Wrapf(domain.ErrInvalidRange, "%s value is required", name)
	}
	for i := 0; i < len(bound); i++ {
		if bound[i] < '0' || bound[i] > '9' {
			return errors.Wrapf(domain.ErrInvalidRange, "%s value needs to be numeric", name)
		}
	}
	if len(bound) > width {
		return errors.Wrapf(domain.ErrInvalidRange, "%s value too large, at most %d digits", name, width)
	}
	return nil
}

// fill left-pads input with zeros up to width.
func fill(input string, width int) string {
	if len(input) >= width {
		return input
	}
	return strings.Repeat("0", width-len(input)) + input
}

// compare reports whether two counters hold the same digits.
func compare(first, second []int) bool {
	return slices.Equal(first, second)
}

// increment adds one to the counter in place; index 0 is the most significant digit.
// It reports false when the carry runs past index 0, leaving the counter at all zeros.
func increment(counter []int) bool {
	for i := len(counter) - 1; i >= 0; i-- {
		if counter[i] < 9 {
			counter[i]++
			return true
		}
		counter[i] = 0
	}
	return false
}

func toDigits(s string) []int {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		digits[i] = int(s[i] - '0')
	}
	return digits
}

func toString(digits []int) string {
	b := make([]byte, len(digits))
	for i, d := range digits {
		b[i] = byte('0' + d)
	}
	return string(b)
}
