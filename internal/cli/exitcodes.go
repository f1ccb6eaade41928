package cli

import (
	"errors"

	"github.com/zaydek/alignment-sanity/internal/configloader"
	"github.com/zaydek/alignment-sanity/pkg/engine"
)

// Exit codes for alignsanity.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitChangesFound indicates check mode found misaligned files.
	ExitChangesFound = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrChangesFound signals that check mode found files needing alignment.
// It carries no message for the user; the reporter already printed one.
var ErrChangesFound = errors.New("alignment changes found")

// ErrInvalidUsage wraps command-line usage errors.
var ErrInvalidUsage = errors.New("invalid usage")

// ErrConfig wraps configuration loading and validation errors.
var ErrConfig = errors.New("configuration error")

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, ErrChangesFound):
		return ExitChangesFound
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, engine.ErrFileNotFound),
		errors.Is(err, engine.ErrPermissionDenied),
		errors.Is(err, engine.ErrWriteFailure):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
