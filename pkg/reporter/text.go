package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/zaydek/alignment-sanity/internal/ui/pretty"
	"github.com/zaydek/alignment-sanity/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var changed int

	for _, file := range result.Files {
		path := r.styles.Path.Render(displayPath(file.Path, r.opts.WorkingDir))

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
			continue
		}
		if file.Result == nil {
			continue
		}

		switch {
		case file.Result.Skipped:
			if r.opts.Verbose {
				fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Skipped.Render(file.Result.Summary()))
			}
		case file.Result.Changed:
			changed++
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Changed.Render(file.Result.Summary()))
		default:
			if r.opts.Verbose {
				fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Dim.Render(file.Result.Summary()))
			}
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw, pretty.FormatRunSummary(result.Stats, r.styles))
	}

	return changed, nil
}
