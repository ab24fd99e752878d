package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cjkspacing/internal/ui/pretty"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       3,
		DiagnosticsTotal:      15,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityError: 5, config.SeverityWarning: 10},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files with issues:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Total issues:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Errors:")
	assert.Contains(t, result, "5")
	assert.Contains(t, result, "Warnings:")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        5,
		FilesWithIssues:       0,
		DiagnosticsTotal:      0,
		DiagnosticsBySeverity: map[config.Severity]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Spacing check passed")
	assert.NotContains(t, result, "Files with issues:")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       2,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityError: 2, config.SeverityWarning: 3},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Spacing check failed with errors")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       2,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 5},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Spacing check completed with warnings")
}

func TestFormatSummary_WithModifiedFiles(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       2,
		FilesModified:         2,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 5},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files modified:")
	assert.Contains(t, result, "2")
}

func TestFormatSummary_InfoOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       1,
		DiagnosticsTotal:      3,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityInfo: 3},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Info:")
	assert.Contains(t, result, "3")
	// With only info-level issues, passes
	assert.Contains(t, result, "Spacing check passed")
}

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        5,
		FilesWithIssues:       0,
		DiagnosticsTotal:      0,
		DiagnosticsBySeverity: map[config.Severity]int{},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No issues found")
	assert.Contains(t, result, "5 files checked")
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       3,
		DiagnosticsTotal:      12,
		DiagnosticsFixable:    8,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityError: 4, config.SeverityWarning: 8},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "12 issues")
	assert.Contains(t, result, "4 errors")
	assert.Contains(t, result, "8 warnings")
	assert.Contains(t, result, "in 3 files")
	assert.Contains(t, result, "8 fixable")
}

func TestFormatSummaryOneLine_SingleIssue(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        1,
		FilesWithIssues:       1,
		DiagnosticsTotal:      1,
		DiagnosticsFixable:    1,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 1},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 issue")
	assert.Contains(t, result, "in 1 file")
	assert.Contains(t, result, "1 fixable")
}

func TestFormatSummaryOneLine_WithModified(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWithIssues:       3,
		FilesModified:         2,
		DiagnosticsFixed:      7,
		DiagnosticsTotal:      5,
		DiagnosticsFixable:    5,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 5},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "5 issues")
	assert.Contains(t, result, "7 fixed in 2 files")
}

func TestFormatSummaryOneLine_NoFixable(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        5,
		FilesWithIssues:       2,
		DiagnosticsTotal:      3,
		DiagnosticsFixable:    0,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityError: 3},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "3 issues")
	assert.Contains(t, result, "3 errors")
	assert.NotContains(t, result, "fixable")
}

func TestFormatSummaryOneLine_Pending(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        4,
		FilesWithIssues:       2,
		FilesPending:          2,
		DiagnosticsTotal:      3,
		DiagnosticsFixable:    3,
		DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 3},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Equal(t, "3 issues (3 warnings), in 2 files, 3 fixable, 2 files would be reformatted\n", result)
}

func TestFormatSummary_SkippedAndErrored(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        3,
		FilesSkipped:          1,
		FilesErrored:          1,
		DiagnosticsBySeverity: map[config.Severity]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files skipped:     1")
	assert.Contains(t, result, "Files with errors: 1")
}
