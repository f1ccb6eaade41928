package pretty

import (
	"fmt"
	"strings"

	"github.com/zaydek/alignment-sanity/pkg/runner"
)

// FormatRunSummary renders end-of-run statistics as a single styled line.
func FormatRunSummary(stats runner.Stats, styles *Styles) string {
	parts := []string{
		fmt.Sprintf("%d %s processed", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files")),
	}

	switch {
	case stats.FilesWritten > 0:
		parts = append(parts, fmt.Sprintf("%d aligned", stats.FilesWritten))
	case stats.FilesChanged > 0:
		parts = append(parts, fmt.Sprintf("%d need alignment", stats.FilesChanged))
	}
	if stats.LinesPadded > 0 {
		parts = append(parts, fmt.Sprintf("%d %s padded", stats.LinesPadded, plural(stats.LinesPadded, "line", "lines")))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", stats.FilesSkipped))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", stats.FilesErrored, plural(stats.FilesErrored, "error", "errors")))
	}

	line := strings.Join(parts, ", ")

	switch {
	case stats.FilesErrored > 0:
		return styles.Failure.Render(line)
	case stats.FilesChanged > 0 && stats.FilesWritten == 0:
		return styles.Changed.Render(line)
	default:
		return styles.Success.Render(line)
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
