package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/usecase"
	"github.com/allisson/mynumber/internal/validation"
)

// RunFormat parses number in any accepted layout and prints it in mode.
func RunFormat(
	ctx context.Context,
	useCase usecase.MyNumberUseCase,
	logger *slog.Logger,
	writer io.Writer,
	number string,
	mode string,
) error {
	value := validation.Narrow(number)
	if value == "" {
		return usagef("Supply \"My Number\" to format")
	}

	formatted, err := useCase.Format(ctx, value, domain.FormatMode(mode))
	if err != nil {
		logger.Warn("format failed", slog.String("number", number), slog.Any("error", err))
		return usageFrom(err)
	}

	_, err = fmt.Fprintln(writer, formatted)
	return err
}
