package main

import (
	"errors"
	"os"

	pep2html "github.com/alnah/go-pep2html"
	"github.com/alnah/go-pep2html/internal/config"
)

// Exit codes for pep2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every document converted
	ExitGeneral = 1 // Some documents failed, or an unexpected error
	ExitUsage   = 2 // Invalid flags, config, or settings
	ExitIO      = 3 // No input, file not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-document failures are already reported line by line (exit 1)
	if errors.Is(err, ErrConversionFailed) {
		return ExitGeneral
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pep2html.ErrInvalidURLTemplate) ||
		errors.Is(err, pep2html.ErrInvalidBannerCount) ||
		errors.Is(err, pep2html.ErrInvalidDateFormat) ||
		errors.Is(err, pep2html.ErrStyleNotFound) ||
		errors.Is(err, pep2html.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadStyle) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
