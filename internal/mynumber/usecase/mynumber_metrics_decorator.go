package usecase

import (
	"context"
	"iter"
	"time"

	"github.com/allisson/mynumber/internal/metrics"
	"github.com/allisson/mynumber/internal/mynumber/domain"
)

const metricsDomain = "mynumber"

// rangeOperation keeps the operation label set fixed whatever mode the caller passed.
func rangeOperation(mode domain.RangeMode) string {
	if mode.Validate() != nil {
		return "range_unknown"
	}
	return "range_" + mode.String()
}

// myNumberUseCaseWithMetrics decorates MyNumberUseCase with metrics instrumentation.
type myNumberUseCaseWithMetrics struct {
	next    MyNumberUseCase
	metrics metrics.BusinessMetrics
}

// NewMyNumberUseCaseWithMetrics wraps a MyNumberUseCase with metrics recording.
func NewMyNumberUseCaseWithMetrics(useCase MyNumberUseCase, m metrics.BusinessMetrics) MyNumberUseCase {
	return &myNumberUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *myNumberUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	d.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	d.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Verify records metrics for verification.
func (d *myNumberUseCaseWithMetrics) Verify(ctx context.Context, digits []int) (bool, error) {
	start := time.Now()
	valid, err := d.next.Verify(ctx, digits)
	d.record(ctx, "verify", start, err)
	return valid, err
}

// CheckDigit records metrics for check digit computation.
func (d *myNumberUseCaseWithMetrics) CheckDigit(ctx context.Context, digits []int) (int, error) {
	start := time.Now()
	cd, err := d.next.CheckDigit(ctx, digits)
	d.record(ctx, "check_digit", start, err)
	return cd, err
}

// Complete records metrics for completion.
func (d *myNumberUseCaseWithMetrics) Complete(ctx context.Context, digits []int) (domain.Number, error) {
	start := time.Now()
	n, err := d.next.Complete(ctx, digits)
	d.record(ctx, "complete", start, err)
	return n, err
}

// Generate records metrics for generation setup. Drawing the numbers is not timed since the
// sequence is consumed lazily by the caller.
func (d *myNumberUseCaseWithMetrics) Generate(ctx context.Context, count int) (iter.Seq[domain.Number], error) {
	start := time.Now()
	seq, err := d.next.Generate(ctx, count)
	d.record(ctx, "generate", start, err)
	return seq, err
}

// Parse records metrics for parsing.
func (d *myNumberUseCaseWithMetrics) Parse(ctx context.Context, value string) (domain.Number, error) {
	start := time.Now()
	n, err := d.next.Parse(ctx, value)
	d.record(ctx, "parse", start, err)
	return n, err
}

// Format records metrics for formatting.
func (d *myNumberUseCaseWithMetrics) Format(
	ctx context.Context,
	value string,
	mode domain.FormatMode,
) (string, error) {
	start := time.Now()
	formatted, err := d.next.Format(ctx, value, mode)
	d.record(ctx, "format", start, err)
	return formatted, err
}

// Range records metrics for range setup. Iteration itself is not timed since the
// sequence is consumed lazily by the caller.
func (d *myNumberUseCaseWithMetrics) Range(
	ctx context.Context,
	minValue, maxValue string,
	mode domain.RangeMode,
) (iter.Seq[domain.Number], uint64, error) {
	start := time.Now()
	seq, candidates, err := d.next.Range(ctx, minValue, maxValue, mode)
	d.record(ctx, rangeOperation(mode), start, err)
	return seq, candidates, err
}
