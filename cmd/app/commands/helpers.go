// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/allisson/mynumber/internal/app"
	"github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/validation"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitCheckFailed = 1
	ExitUsage       = -1
)

var (
	// ErrUsage marks bad arguments and core validation failures.
	ErrUsage = errors.New("usage error")

	// ErrCheckFailed is returned by check when the number does not verify.
	ErrCheckFailed = errors.New("check failed")
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrCheckFailed):
		return ExitCheckFailed
	default:
		return ExitUsage
	}
}

// Message returns the text shown to the user for a command error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrCheckFailed):
		return ""
	case errors.Is(err, ErrUsage):
		var usage *usageError
		if errors.As(err, &usage) {
			return usage.message
		}
	}
	return err.Error()
}

// usageError carries the user-facing text of a usage failure.
type usageError struct {
	message string
	cause   error
}

func (e *usageError) Error() string {
	return e.message
}

func (e *usageError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrUsage}
	}
	return []error{ErrUsage, e.cause}
}

func usagef(format string, args ...any) error {
	return &usageError{message: fmt.Sprintf(format, args...)}
}

// usageFrom turns a core error into a usage error keeping it in the chain.
func usageFrom(err error) error {
	return &usageError{message: err.Error(), cause: err}
}

// numericArg narrows full-width characters and requires a non-empty decimal string.
func numericArg(arg string) (string, error) {
	value := validation.Narrow(arg)
	if !validation.IsNumeric(value) {
		return "", usagef("Input needs to be numeric.")
	}
	return value, nil
}

// digitsOf converts a decimal string into its digits.
func digitsOf(value string) []int {
	digits := make([]int, len(value))
	for i := 0; i < len(value); i++ {
		digits[i] = int(value[i] - '0')
	}
	return digits
}

func validateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return usagef("invalid output format %q, expected text, json or yaml", format)
	}
}

// numbersOutput is the structured form of a list of numbers.
type numbersOutput struct {
	Numbers []string `json:"numbers" yaml:"numbers"`
	Count   int      `json:"count"   yaml:"count"`
}

// writeNumbers prints seq one number per line in text format, or collects it into a single
// document for json and yaml.
func writeNumbers(w io.Writer, format string, seq iter.Seq[domain.Number]) (int, error) {
	if format == FormatText {
		count := 0
		for n := range seq {
			if _, err := fmt.Fprintln(w, n.String()); err != nil {
				return count, err
			}
			count++
		}
		return count, nil
	}

	out := numbersOutput{Numbers: []string{}}
	for n := range seq {
		out.Numbers = append(out.Numbers, n.String())
	}
	out.Count = len(out.Numbers)
	return out.Count, writeStructured(w, format, out)
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return encoder.Close()
	default:
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonBytes))
		return err
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
