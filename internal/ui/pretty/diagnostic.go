package pretty

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/lint"
)

// tabWidth is the number of cells a tab occupies in source context.
const tabWidth = 4

// FormatDiagnostic formats a single diagnostic for terminal output.
func (s *Styles) FormatDiagnostic(
	diag *lint.Diagnostic,
	showContext bool,
	sourceLine string,
	ruleFormat config.RuleFormat,
) string {
	var builder strings.Builder

	// path:line:col
	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(diag.FilePath),
		diag.StartLine,
		diag.StartColumn,
	)

	ruleDisplay := s.RuleID.Render("(" + config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName) + ")")

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		ruleDisplay,
	)

	if showContext && sourceLine != "" {
		endColumn := diag.StartColumn
		if diag.EndLine == diag.StartLine {
			endColumn = diag.EndColumn
		}
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.StartColumn, endColumn))
	}

	if diag.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(diag.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with carets under the
// character columns [startCol, endCol). Columns count characters, and the
// carets are placed by display width, so wide CJK characters shift them
// by two cells. An empty span (an insertion point) gets a single caret.
func (s *Styles) FormatSourceContext(line string, startCol, endCol int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(expandTabs(line)) + "\n")

	if startCol <= 0 {
		return builder.String()
	}

	runes := []rune(line)
	start := min(startCol-1, len(runes))
	end := min(max(endCol-1, start), len(runes))

	padding := displayWidth(string(runes[:start]))
	carets := max(displayWidth(string(runes[start:end])), 1)

	builder.WriteString(indent + strings.Repeat(" ", padding) + s.Caret.Render(strings.Repeat("^", carets)) + "\n")

	return builder.String()
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func displayWidth(s string) int {
	return uniseg.StringWidth(expandTabs(s))
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case issueCount == 1:
		header += s.Dim.Render(" (1 issue)")
	case issueCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
