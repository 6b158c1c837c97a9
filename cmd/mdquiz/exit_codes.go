package main

import (
	"errors"
	"os"

	mdquiz "github.com/alnah/go-mdquiz"
	"github.com/alnah/go-mdquiz/internal/config"
	"github.com/alnah/go-mdquiz/internal/logging"
)

// Exit codes for the mdquiz CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All pages built
	ExitGeneral = 1 // General error or at least one page failed
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, mdquiz.ErrAssetUnavailable) ||
		errors.Is(err, mdquiz.ErrStyleNotFound) ||
		errors.Is(err, mdquiz.ErrTemplateSetNotFound) ||
		errors.Is(err, mdquiz.ErrIncompleteTemplateSet) ||
		errors.Is(err, mdquiz.ErrInvalidAssetPath) ||
		errors.Is(err, mdquiz.ErrTemplateParse) {
		return ExitUsage
	}

	return ExitGeneral
}
