package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/zaydek/alignment-sanity/pkg/fsutil"
)

// Pipeline error categories for errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrWriteFailure     = errors.New("write failure")
)

// CategorizeError wraps filesystem errors with a pipeline category.
func CategorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}
