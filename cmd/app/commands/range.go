package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/usecase"
)

// RunRange prints every number of the inclusive range [minArg, maxArg] in mode. Text output
// is streamed as the range is walked.
func RunRange(
	ctx context.Context,
	useCase usecase.MyNumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	minArg, maxArg string,
	mode domain.RangeMode,
	format string,
) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}
	if minArg == "" || maxArg == "" {
		return usagef("Supply two numbers for range.")
	}

	minValue, err := numericArg(minArg)
	if err != nil {
		logger.Warn("invalid argument for range: not numeric", slog.String("mode", string(mode)))
		return err
	}
	maxValue, err := numericArg(maxArg)
	if err != nil {
		logger.Warn("invalid argument for range: not numeric", slog.String("mode", string(mode)))
		return err
	}

	seq, candidates, err := useCase.Range(ctx, minValue, maxValue, mode)
	if err != nil {
		logger.Warn("invalid range", slog.String("mode", string(mode)), slog.Any("error", err))
		return usageFrom(err)
	}

	logger.Info("generating range",
		slog.String("mode", string(mode)),
		slog.String("min", minValue),
		slog.String("max", maxValue),
		slog.Uint64("candidates", candidates),
	)

	count, err := writeNumbers(writer, format, seq)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Info("range completed", slog.String("mode", string(mode)), slog.Int("count", count))
	return nil
}
