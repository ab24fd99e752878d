package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/fix"
	"github.com/yaklabco/cjkspacing/pkg/fsutil"
)

// DefaultMaxFixPasses bounds the fix loop. The spacing transform reaches a
// fixed point in one pass; later passes pick up edits skipped as conflicts.
const DefaultMaxFixPasses = 5

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the engine could not lint the content.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")

	// ErrFileModified indicates the file changed on disk while it was being
	// fixed; the fix was not written.
	ErrFileModified = errors.New("file modified during processing")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains lint diagnostics from the last pass, so after a
	// successful fix only unfixable issues remain.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing (nil for content).
	OriginalInfo *fsutil.FileInfo

	// Modified is true if fixing changed the content.
	Modified bool

	// ModifiedContent is the new content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff, produced in dry-run mode.
	Diff *fix.Diff

	// Skipped is true if the fix was abandoned; SkipReason says why.
	Skipped    bool
	SkipReason string

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of fix passes performed.
	FixPasses int

	// TotalEditsApplied is the total number of edits applied across all passes.
	TotalEditsApplied int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written:
		return "fixed"
	case pr.Modified:
		return "changes pending"
	case pr.FileResult != nil && pr.HasIssues():
		return "issues found"
	default:
		return "ok"
	}
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun produces a diff instead of writing files.
	DryRun bool

	// MaxFixPasses limits the number of fix iterations; 0 uses DefaultMaxFixPasses.
	MaxFixPasses int
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return PipelineOptions{}
	}
	return PipelineOptions{Fix: cfg.Fix, DryRun: cfg.DryRun}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile lints one file and, in fix mode, rewrites it:
//  1. Read and hash the original file.
//  2. Lint and apply edits in memory until no edits remain.
//  3. In dry-run mode, return a diff.
//  4. Otherwise, skip the write if the file changed on disk meanwhile,
//     then write atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	original, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, original, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || opts.DryRun {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		logging.FromContext(ctx).Warn("file changed on disk, fix not written", logging.FieldPath, path)
		result.Skipped = true
		result.SkipReason = ErrFileModified.Error()
		return result, nil
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs the lint/fix loop over in-memory content without
// touching the file system. In dry-run mode it also produces the diff.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	original []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	content := original
	for range maxPasses {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("processing cancelled: %w", err)
		}

		fileResult, err := p.Engine.LintFile(ctx, path, content, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
		}
		result.FileResult = fileResult

		if !opts.Fix || len(fileResult.Edits) == 0 {
			break
		}

		content = fix.ApplyEdits(content, fileResult.Edits)
		result.FixPasses++
		result.TotalEditsApplied += len(fileResult.Edits)
		result.Modified = true
	}

	if !result.Modified {
		return result, nil
	}

	result.ModifiedContent = content
	logging.FromContext(ctx).Debug("fixed content",
		logging.FieldPath, path,
		logging.FieldPasses, result.FixPasses,
		logging.FieldEdits, result.TotalEditsApplied)

	if opts.DryRun {
		diff, err := fix.GenerateDiff(path, original, content)
		if err != nil {
			return nil, err
		}
		result.Diff = diff
	}

	return result, nil
}

// categorizeError wraps an error with the matching pipeline error type.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
