package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/mynumber/internal/mynumber/usecase"
)

// RunCheck prints OK when number carries a correct check digit and ERROR otherwise. The
// ERROR case returns ErrCheckFailed.
func RunCheck(
	ctx context.Context,
	useCase usecase.MyNumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
) error {
	if number == "" {
		return usagef("Supply \"My Number\" to check")
	}
	value, err := numericArg(number)
	if err != nil {
		logger.Warn("invalid argument for check: not numeric", slog.String("number", number))
		return err
	}

	valid, err := useCase.Verify(ctx, digitsOf(value))
	if err != nil {
		return usageFrom(err)
	}

	result := "ERROR"
	if valid {
		result = "OK"
	}
	logger.Info("check result", slog.String("number", value), slog.String("result", result))

	if _, err := fmt.Fprintln(writer, result); err != nil {
		return err
	}
	if !valid {
		return ErrCheckFailed
	}
	return nil
}
