// Command kilosort-fixtures downloads the kilosort test recording fixtures.
//
// Configuration is loaded from flags and environment variables:
//   - KILOSORT_FIXTURES_BASE_URL: Base URL of the fixture bucket (optional)
//   - LOG_LEVEL: trace, debug, info, warn or error (default info)
package main

import (
	"context"
	"errors"
	"os"

	fixtures "github.com/prethora/kilosort-fixtures"
)

// CLI exit codes for standardized error reporting.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitInvalidArgs  = 2
	ExitNetworkError = 5
	ExitRemoteError  = 6
	ExitStorageError = 7
)

func main() {
	logger := newLogger(os.Stderr, os.Getenv("LOG_LEVEL"))

	cmd := fixtures.NewCommand(fixtures.DefaultConfig(), fixtures.WithLogger(logger))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// exitCodeFromError maps error types to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, fixtures.ErrInvalidConfig):
		return ExitInvalidArgs
	case errors.Is(err, fixtures.ErrNetworkError):
		return ExitNetworkError
	case errors.Is(err, fixtures.ErrRemoteError):
		return ExitRemoteError
	case errors.Is(err, fixtures.ErrStorageError):
		return ExitStorageError
	default:
		return ExitGeneralError
	}
}
