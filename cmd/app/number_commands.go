package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mynumber/cmd/app/commands"
	"github.com/allisson/mynumber/internal/app"
	"github.com/allisson/mynumber/internal/config"
	"github.com/allisson/mynumber/internal/mynumber/domain"
	"github.com/allisson/mynumber/internal/mynumber/usecase"
)

func outputFormatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text', 'json' or 'yaml'",
	}
}

// withUseCase builds the container for a one-shot command and hands its use case to run.
func withUseCase(
	ctx context.Context,
	run func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error,
) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	useCase, err := container.MyNumberUseCase()
	if err != nil {
		return err
	}
	return run(useCase, container.Logger())
}

func rangeCommand(name, usage string, mode domain.RangeMode) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<min> <max>",
		Flags:     []cli.Flag{outputFormatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withUseCase(ctx, func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error {
				return commands.RunRange(
					ctx,
					useCase,
					logger,
					os.Stdout,
					cmd.Args().Get(0),
					cmd.Args().Get(1),
					mode,
					cmd.String("format"),
				)
			})
		},
	}
}

func getNumberCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "generate",
			Usage:     "Generate random valid My Numbers",
			ArgsUsage: "[count]",
			Flags:     []cli.Flag{outputFormatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error {
					return commands.RunGenerate(
						ctx,
						useCase,
						logger,
						os.Stdout,
						cmd.Args().Get(0),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "check",
			Usage:     "Check a My Number, printing OK or ERROR",
			ArgsUsage: "<number>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error {
					return commands.RunCheck(ctx, useCase, logger, os.Stdout, cmd.Args().Get(0))
				})
			},
		},
		{
			Name:      "complete",
			Usage:     "Append the check digit to the first 11 digits of a My Number",
			ArgsUsage: "<first 11 digits>",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error {
					return commands.RunComplete(ctx, useCase, logger, os.Stdout, cmd.Args().Get(0))
				})
			},
		},
		rangeCommand("rangen", "List valid My Numbers in a numerical range of 12-digit values", domain.RangeNumerical),
		rangeCommand("ranges", "List My Numbers for a sequential range of 11-digit bases", domain.RangeSequential),
		{
			Name:      "format",
			Usage:     "Reformat a My Number",
			ArgsUsage: "<number>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "mode",
					Aliases: []string{"m"},
					Value:   string(domain.FormatPlain),
					Usage:   "Layout: N (plain), S (spaced), H (hyphenated) or G (grouped)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withUseCase(ctx, func(useCase usecase.MyNumberUseCase, logger *slog.Logger) error {
					return commands.RunFormat(
						ctx,
						useCase,
						logger,
						os.Stdout,
						cmd.Args().Get(0),
						cmd.String("mode"),
					)
				})
			},
		},
	}
}
