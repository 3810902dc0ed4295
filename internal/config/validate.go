package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/fel4cfg/pkg/fel4"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidProfile indicates an unrecognized default_profile value.
	ErrInvalidProfile = errors.New("invalid default_profile")

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

	if cfg.DefaultProfile != "" {
		if _, err := fel4.ParseBuildProfile(cfg.DefaultProfile); err != nil {
			errs = append(errs, &FieldError{
				Field: "default_profile",
				Value: cfg.DefaultProfile,
				Err:   ErrInvalidProfile,
			})
		}
	}

	if cfg.Manifest != "" {
		if err := validatePath(cfg.Manifest); err != nil {
			errs = append(errs, &FieldError{
				Field: "manifest",
				Value: cfg.Manifest,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents a validation error for a specific config field.
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
