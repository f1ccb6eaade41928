package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zaydek/alignment-sanity/internal/logging"
	"github.com/zaydek/alignment-sanity/pkg/engine"
)

// Runner processes discovered files through an engine.Pipeline.
type Runner struct {
	Pipeline *engine.Pipeline
}

// New creates a Runner over a pipeline.
func New(pipeline *engine.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes them with a
// bounded worker pool. Outcomes come back ordered by path regardless
// of completion order. Per-file failures are recorded in the result
// rather than aborting the run; only discovery failures and context
// cancellation return an error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovery complete", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	pipelineOpts := opts.pipelineOptions()
	outcomes := make([]FileOutcome, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Pipeline.ProcessFile(gctx, path, pipelineOpts)
			if err != nil {
				logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
			} else if res.Skipped {
				logger.Debug("file skipped", logging.FieldPath, path, logging.FieldSkipReason, res.SkipReason)
			}
			outcomes[i] = FileOutcome{Path: path, Result: res, Error: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result, nil
}
