// Package errors provides error handling conventions for the romshelf CLI.
//
// It re-exports the [github.com/cockroachdb/errors] helpers used across the
// codebase, defines sentinel errors for common failure conditions, an
// ExitError type for CLI exit code handling, and exit code constants.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, rserrors.ErrUnknownSystem) {
//	    // handle unknown label
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, archive config, etc.)
//   - ExitSystem (2): System-related error (missing paths, I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := rserrors.NewUserError(rserrors.ErrInvalidConfig, "Check config.yaml")
//	var exitErr *rserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
