package engine

import (
	"context"
	"fmt"

	"github.com/zaydek/alignment-sanity/pkg/edit"
	"github.com/zaydek/alignment-sanity/pkg/fsutil"
	"github.com/zaydek/alignment-sanity/pkg/langdetect"
)

// SkipReasonWriteConflict marks files skipped because they changed on
// disk between read and write. A later run can pick them up again.
const SkipReasonWriteConflict = "file modified during processing"

// Options control pipeline behavior for one run.
type Options struct {
	// Write rewrites changed files in place. Without it the pipeline
	// only computes what would change.
	Write bool

	// ShowDiff attaches a unified diff to changed results.
	ShowDiff bool

	// Backups creates a sidecar backup before the first rewrite.
	Backups bool

	// ForceLanguage bypasses detection when non-empty.
	ForceLanguage string

	// QuickConflictCheck relaxes the pre-write conflict check to mod
	// time and size only, skipping the content re-hash.
	QuickConflictCheck bool
}

// Result is the outcome of processing a single file.
type Result struct {
	Path     string
	Language string

	// Skipped means the file was deliberately left alone: unsupported
	// language or a write conflict.
	Skipped    bool
	SkipReason string

	// Changed means the aligned form differs from what was read.
	Changed bool

	// Written and BackupCreated report write-mode side effects.
	Written       bool
	BackupCreated bool

	// Diff is set for changed files when Options.ShowDiff is on.
	Diff *edit.Diff

	Report Report
}

// Summary gives a one-word status for logs and text output.
func (r *Result) Summary() string {
	switch {
	case r.Skipped:
		return "skipped: " + r.SkipReason
	case r.Written:
		if r.BackupCreated {
			return "aligned (backup created)"
		}
		return "aligned"
	case r.Changed:
		return "needs alignment"
	default:
		return "ok"
	}
}

// Pipeline processes files safely: snapshot on read, conflict check
// before write, atomic replace.
type Pipeline struct {
	Engine *Engine
}

// NewPipeline creates a Pipeline over an engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for one file:
//
//  1. Read the file and snapshot its state.
//  2. Detect the language; unsupported files are skipped.
//  3. Compute the aligned form in memory.
//  4. Unchanged content exits early.
//  5. In write mode: verify the file has not changed since the read,
//     create a backup if configured, then replace it atomically.
//
// A file that changed underneath us is reported as skipped with
// SkipReasonWriteConflict rather than failing the run.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts Options) (*Result, error) {
	result := &Result{Path: path}

	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		return nil, CategorizeError(err)
	}

	language := opts.ForceLanguage
	if language == "" {
		language = langdetect.Detect(path, content)
	}
	result.Language = language

	if language == "" || p.Engine.TableFor(language) == nil {
		result.Skipped = true
		result.SkipReason = "unsupported language"
		return result, nil
	}

	formatted, report, err := p.Engine.FormatContent(ctx, language, content)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", path, err)
	}
	result.Report = report

	if string(formatted) == string(content) {
		return result, nil
	}
	result.Changed = true

	if opts.ShowDiff {
		result.Diff = edit.Compute(path, content, formatted)
	}
	if !opts.Write {
		return result, nil
	}

	conflicted, err := p.checkConflict(ctx, snap, opts.QuickConflictCheck)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if conflicted {
		result.Skipped = true
		result.SkipReason = SkipReasonWriteConflict
		return result, nil
	}

	if opts.Backups {
		created, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, formatted, snap.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs detection and formatting on in-memory content,
// for stdin input and tests. No filesystem side effects.
func (p *Pipeline) ProcessContent(ctx context.Context, name string, content []byte, opts Options) (*Result, []byte, error) {
	result := &Result{Path: name}

	language := opts.ForceLanguage
	if language == "" {
		language = langdetect.Detect(name, content)
	}
	if language == "" {
		language = langdetect.DetectByContent(content)
	}
	result.Language = language

	if language == "" || p.Engine.TableFor(language) == nil {
		result.Skipped = true
		result.SkipReason = "unsupported language"
		return result, content, nil
	}

	formatted, report, err := p.Engine.FormatContent(ctx, language, content)
	if err != nil {
		return nil, nil, fmt.Errorf("format %s: %w", name, err)
	}
	result.Report = report
	result.Changed = string(formatted) != string(content)

	if result.Changed && opts.ShowDiff {
		result.Diff = edit.Compute(name, content, formatted)
	}
	return result, formatted, nil
}

func (p *Pipeline) checkConflict(ctx context.Context, snap *fsutil.Snapshot, quick bool) (bool, error) {
	if quick {
		return fsutil.ModifiedQuick(ctx, snap)
	}
	return fsutil.Modified(ctx, snap)
}
