package lint

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/fix"
	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// ErrNoParser is returned when an Engine has no Parser configured.
var ErrNoParser = errors.New("lint engine has no parser")

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *mdast.FileSnapshot

	// Diagnostics contains all issues found.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or fixing was not requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits dropped because they overlap an earlier one.
	SkippedEdits []fix.TextEdit

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for i := range fr.Diagnostics {
		if fr.Diagnostics[i].HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses Markdown and answers the rules' AST queries.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	if e.Parser == nil {
		return nil, ErrNoParser
	}

	logger := logging.FromContext(ctx)
	started := time.Now()

	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range ResolveRules(e.Registry, cfg) {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("linting cancelled: %w", err)
		}

		diags, err := rr.Rule.Apply(NewRuleContext(ctx, snapshot, e.Parser, cfg, rr.Config))
		if err != nil {
			logger.Debug("rule failed",
				logging.FieldRule, rr.Rule.ID(),
				logging.FieldPath, path,
				logging.FieldError, err)
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity
			if diags[i].FilePath == "" {
				diags[i].FilePath = path
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}
			if rr.AutoFix {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	if len(allEdits) > 0 {
		accepted, skipped, err := fix.PrepareEdits(allEdits, len(content))
		if err != nil {
			return nil, fmt.Errorf("prepare edits for %s: %w", path, err)
		}
		result.Edits = accepted
		result.SkippedEdits = skipped
	}

	logger.Debug("linted file",
		logging.FieldPath, path,
		logging.FieldDiagnostics, len(result.Diagnostics),
		logging.FieldEdits, len(result.Edits),
		logging.FieldDuration, time.Since(started))

	return result, nil
}
