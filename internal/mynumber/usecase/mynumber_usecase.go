package usecase

import (
	"context"
	"iter"

	"github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/service"
)

// myNumberUseCase implements MyNumberUseCase on top of the domain and service packages.
type myNumberUseCase struct {
	random func() domain.Number
}

// NewMyNumberUseCase creates a MyNumberUseCase backed by the process-wide random source.
func NewMyNumberUseCase() MyNumberUseCase {
	return &myNumberUseCase{random: domain.GenerateRandom}
}

// Verify reports whether 12 digits carry a correct check digit.
func (m *myNumberUseCase) Verify(ctx context.Context, digits []int) (bool, error) {
	return domain.VerifyNumber(digits)
}

// CheckDigit computes the check digit for 11 data digits.
func (m *myNumberUseCase) CheckDigit(ctx context.Context, digits []int) (int, error) {
	return domain.CalculateCheckDigit(digits)
}

// Complete appends the check digit to 11 data digits.
func (m *myNumberUseCase) Complete(ctx context.Context, digits []int) (domain.Number, error) {
	return domain.FromFirstElevenDigits(digits)
}

// Generate validates count and returns a lazy sequence of random valid numbers. Numbers are
// drawn one at a time as the caller pulls them; the sequence stops once ctx is done.
func (m *myNumberUseCase) Generate(ctx context.Context, count int) (iter.Seq[domain.Number], error) {
	if count < 1 {
		return nil, errors.Wrapf(domain.ErrInvalidCount, "count must be at least 1, got %d", count)
	}

	return func(yield func(domain.Number) bool) {
		for range count {
			if ctx.Err() != nil {
				return
			}
			if !yield(m.random()) {
				return
			}
		}
	}, nil
}

// Parse accepts the plain, spaced, hyphenated and grouped forms.
func (m *myNumberUseCase) Parse(ctx context.Context, value string) (domain.Number, error) {
	return domain.Parse(value)
}

// Format parses value and renders it in the given mode. The mode is checked first so an
// unknown mode is reported even for an unparsable value.
func (m *myNumberUseCase) Format(ctx context.Context, value string, mode domain.FormatMode) (string, error) {
	if err := mode.Validate(); err != nil {
		return "", errors.Wrapf(domain.ErrUnsupportedFormat, "mode %q", mode)
	}

	n, err := domain.Parse(value)
	if err != nil {
		return "", err
	}
	return n.Format(mode)
}

// Range validates the bounds and returns a lazy sequence that stops once ctx is done,
// together with the candidate count of the bounds.
func (m *myNumberUseCase) Range(
	ctx context.Context,
	minValue, maxValue string,
	mode domain.RangeMode,
) (iter.Seq[domain.Number], uint64, error) {
	enumerator, err := service.NewRangeEnumerator(minValue, maxValue, mode)
	if err != nil {
		return nil, 0, err
	}

	return func(yield func(domain.Number) bool) {
		for n := range enumerator.All() {
			if ctx.Err() != nil {
				return
			}
			if !yield(n) {
				return
			}
		}
	}, enumerator.Count(), nil
}
