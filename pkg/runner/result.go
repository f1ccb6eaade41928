package runner

import "github.com/zaydek/alignment-sanity/pkg/engine"

// FileOutcome pairs a path with its pipeline result or error.
type FileOutcome struct {
	Path string

	// Result is nil when Error is set.
	Result *engine.Result

	Error error
}

// Stats aggregates a run.
type Stats struct {
	// FilesDiscovered counts files found during discovery.
	FilesDiscovered int

	// FilesProcessed counts files that ran through the pipeline
	// without error, including skipped ones.
	FilesProcessed int

	// FilesSkipped counts unsupported files and write conflicts.
	FilesSkipped int

	// FilesErrored counts files whose processing failed.
	FilesErrored int

	// FilesChanged counts files whose aligned form differs.
	FilesChanged int

	// FilesWritten counts files rewritten on disk.
	FilesWritten int

	// LinesPadded and Groups sum the per-file format reports.
	LinesPadded int
	Groups      int
}

// Result is the overall outcome of a run. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file needs (or received) alignment.
// Check mode exits non-zero on this.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	res := outcome.Result
	if res.Skipped {
		r.Stats.FilesSkipped++
	}
	if res.Changed {
		r.Stats.FilesChanged++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}
	r.Stats.LinesPadded += res.Report.LinesPadded
	r.Stats.Groups += res.Report.Groups
}
