package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/csvpost/internal/config"
	"github.com/JonMunkholm/csvpost/internal/core"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Execute resolves args, runs the pipeline and returns the exit code.
//
// Response bodies go to stdout; request failures and fatal errors go to
// stderr. Failed requests never change the exit code.
func Execute(ctx context.Context, program string, args []string, cfg *config.Config, stdout, stderr io.Writer) int {
	in, err := Resolve(program, args)
	if errors.Is(err, core.ErrHelp) {
		fmt.Fprintln(stdout, Usage(program))
		return ExitOK
	}
	if err != nil {
		return fail(stderr, err)
	}

	slog.Debug("arguments resolved",
		"csv", in.CSVFile,
		"config", in.ConfigFile,
		"url", in.URL,
	)

	svc := core.NewService(cfg, stdout, stderr)
	if _, err := svc.Run(ctx, in); core.IsFatal(err) {
		return fail(stderr, err)
	}
	return ExitOK
}

func fail(stderr io.Writer, err error) int {
	slog.Debug("run aborted", "error", err, "code", core.MapError(err).Code, "hint", core.FormatUserError(err))
	PrintFatal(stderr, err)
	return ExitFailure
}
