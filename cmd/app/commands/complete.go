package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/mynumber/internal/mynumber/usecase"
)

// RunComplete prints the first eleven digits followed by their check digit.
func RunComplete(
	ctx context.Context,
	useCase usecase.MyNumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
) error {
	if number == "" {
		return usagef("Supply the first 11 digits of \"My Number\" to complete")
	}
	value, err := numericArg(number)
	if err != nil {
		logger.Warn("invalid argument for complete: not numeric", slog.String("number", number))
		return err
	}

	n, err := useCase.Complete(ctx, digitsOf(value))
	if err != nil {
		return usageFrom(err)
	}

	logger.Info("completed number", slog.String("number", n.String()))
	_, err = fmt.Fprintln(writer, n.String())
	return err
}
