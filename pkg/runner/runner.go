package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

// ErrNoFiles is returned by Run when discovery finds no Markdown files.
var ErrNoFiles = errors.New("no Markdown files found")

// Runner orchestrates multi-file linting using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file processing with safety guarantees.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and processes up to opts.Workers of
// them at a time. Each file's pipeline runs sequentially; outcomes are
// returned in path order regardless of completion order.
//
// A file that fails is recorded in its FileOutcome and does not stop the run.
// When nothing is discovered, Run returns an empty Result and ErrNoFiles.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	started := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, ErrNoFiles
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(files))

	logger.Debug("processing files",
		logging.FieldFilesDiscovered, len(files),
		logging.FieldWorkers, workers)

	pipelineOpts := lint.PipelineOptionsFromConfig(opts.Config)
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			outcome := FileOutcome{Path: path}
			pr, err := r.Pipeline.ProcessFile(groupCtx, path, opts.Config, pipelineOpts)
			if err != nil {
				logger.Debug("file failed", logging.FieldPath, path, logging.FieldError, err)
				outcome.Error = err
			} else {
				outcome.Result = pr
			}
			outcomes[i] = outcome
			return nil
		})
	}

	waitErr := group.Wait()

	for _, outcome := range outcomes {
		if outcome.Path != "" {
			result.accumulate(outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldDuration, time.Since(started))

	if waitErr != nil {
		return result, fmt.Errorf("run cancelled: %w", waitErr)
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}
