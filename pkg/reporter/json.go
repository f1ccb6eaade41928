package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/zaydek/alignment-sanity/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's result.
type JSONFileResult struct {
	Path          string `json:"path"`
	Language      string `json:"language,omitempty"`
	Changed       bool   `json:"changed"`
	Written       bool   `json:"written,omitempty"`
	BackupCreated bool   `json:"backupCreated,omitempty"`
	LinesPadded   int    `json:"linesPadded,omitempty"`
	Groups        int    `json:"groups,omitempty"`
	SkipReason    string `json:"skipReason,omitempty"`
	Error         string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	LinesPadded     int `json:"linesPadded"`
	Groups          int `json:"groups"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path: displayPath(file.Path, r.opts.WorkingDir),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if file.Result != nil {
			fileResult.Language = file.Result.Language
			fileResult.Changed = file.Result.Changed
			fileResult.Written = file.Result.Written
			fileResult.BackupCreated = file.Result.BackupCreated
			fileResult.LinesPadded = file.Result.Report.LinesPadded
			fileResult.Groups = file.Result.Report.Groups
			fileResult.SkipReason = file.Result.SkipReason
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesChanged:    result.Stats.FilesChanged,
		FilesWritten:    result.Stats.FilesWritten,
		FilesSkipped:    result.Stats.FilesSkipped,
		FilesErrored:    result.Stats.FilesErrored,
		LinesPadded:     result.Stats.LinesPadded,
		Groups:          result.Stats.Groups,
	}

	return output
}
