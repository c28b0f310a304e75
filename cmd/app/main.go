// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mynumber/cmd/app/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "mynumber",
		Usage:    "Validate, complete, generate and enumerate My Numbers",
		Version:  version,
		Commands: getCommands(version),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if msg := commands.Message(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(commands.ExitCode(err))
	}
}
