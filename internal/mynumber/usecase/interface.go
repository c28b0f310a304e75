// Package usecase defines interfaces and implementations for My Number use cases.
// Exposes check digit computation, validation, parsing, formatting, generation and
// range enumeration to the HTTP and CLI collaborators.
package usecase

import (
	"context"
	"iter"

	"github.com/allisson/mynumber/internal/mynumber/domain"
)

// MyNumberUseCase defines the operations offered over My Numbers.
type MyNumberUseCase interface {
	// Verify reports whether 12 digits carry a correct check digit.
	Verify(ctx context.Context, digits []int) (bool, error)

	// CheckDigit computes the check digit for 11 data digits.
	CheckDigit(ctx context.Context, digits []int) (int, error)

	// Complete appends the check digit to 11 data digits.
	Complete(ctx context.Context, digits []int) (domain.Number, error)

	// Generate returns a lazy sequence of count random valid numbers. Returns
	// ErrInvalidCount when count < 1. The sequence stops early once ctx is done.
	Generate(ctx context.Context, count int) (iter.Seq[domain.Number], error)

	// Parse accepts the plain, spaced, hyphenated and grouped forms.
	Parse(ctx context.Context, value string) (domain.Number, error)

	// Format parses value and renders it in the given mode.
	Format(ctx context.Context, value string, mode domain.FormatMode) (string, error)

	// Range validates the bounds and returns a lazy sequence over them along with the
	// number of candidates the bounds cover. The sequence stops early once ctx is done.
	Range(
		ctx context.Context,
		minValue, maxValue string,
		mode domain.RangeMode,
	) (iter.Seq[domain.Number], uint64, error)
}
