package config

import (
	"strings"

	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/render"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidColorMode indicates an unrecognized color mode.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !render.ValidMode(render.Mode(cfg.Color)) {
		errs = append(errs, &FieldError{Field: "color", Value: cfg.Color, Err: ErrInvalidColorMode})
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, &FieldError{Field: "log_format", Value: cfg.LogFormat, Err: ErrInvalidLogFormat})
	}

	// Empty means "use the working directory"
	if strings.ContainsRune(cfg.ArchiveRoot, '\x00') {
		errs = append(errs, &FieldError{Field: "archive_root", Value: cfg.ArchiveRoot, Err: ErrInvalidPath})
	}

	return errs
}

// FieldError represents an error for a specific settings field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
