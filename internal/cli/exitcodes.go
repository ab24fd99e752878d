package cli

import (
	"errors"

	"github.com/yaklabco/cjkspacing/pkg/runner"
)

// Exit codes for cjkspacing.
const (
	// ExitSuccess indicates the run completed and nothing needs changing.
	ExitSuccess = 0

	// ExitIssues indicates spacing issues were found or would be fixed.
	ExitIssues = 1

	// ExitError indicates invalid usage, a configuration error or a file
	// that could not be processed.
	ExitError = 2
)

// ErrIssuesFound is returned when a run leaves spacing issues behind. It
// only signals the exit code; the issues have already been reported.
var ErrIssuesFound = errors.New("spacing issues found")

// ExitCode maps the error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	default:
		return ExitError
	}
}

// resultHasIssues reports whether result should fail the run: diagnostics
// remain, or a dry run found files it would rewrite.
func resultHasIssues(result *runner.Result) bool {
	if result == nil {
		return false
	}
	return result.HasIssues() || result.Stats.FilesPending > 0 || result.Stats.FilesSkipped > 0
}
