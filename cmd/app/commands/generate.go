package commands

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/allisson/mynumber/internal/mynumber/usecase"
)

// RunGenerate prints countArg random valid numbers. An empty countArg generates one. Text
// output is streamed as numbers are drawn, so any count fitting an int is accepted.
func RunGenerate(
	ctx context.Context,
	useCase usecase.MyNumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	countArg string,
	format string,
) error {
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	count := 1
	if countArg != "" {
		value, err := numericArg(countArg)
		if err != nil {
			logger.Warn("invalid argument for generate: not numeric", slog.String("count", countArg))
			return err
		}
		count, err = strconv.Atoi(value)
		if err != nil {
			return usagef("count %s is out of range", value)
		}
	}

	logger.Info("generating numbers", slog.Int("count", count))

	seq, err := useCase.Generate(ctx, count)
	if err != nil {
		return usageFrom(err)
	}

	written, err := writeNumbers(writer, format, seq)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		logger.Warn("generate interrupted", slog.Int("written", written), slog.Any("error", err))
		return err
	}
	return nil
}
