package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Mosheur-Rahman/gotseb/internal/app"
	"github.com/Mosheur-Rahman/gotseb/internal/cli"
)

// main is the entrypoint for the gotseb binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Programmer errors surface as panics (e.g. duplicate model
// registration), so we recover here to provide a clean exit message.
func run(outW, logW io.Writer, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	gotsebApp := app.NewApp(outW, logW, appConfig)
	return gotsebApp.Run(context.Background())
}
