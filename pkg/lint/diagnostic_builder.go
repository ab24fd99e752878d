package lint

import (
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/fix"
	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnosticAt starts building a diagnostic covering r in file.
func NewDiagnosticAt(rule Rule, file *mdast.FileSnapshot, r mdast.SourceRange, message string) *DiagnosticBuilder {
	var path string
	var pos mdast.SourcePosition
	if file != nil {
		path = file.Path
		pos = file.Position(r)
	}

	return &DiagnosticBuilder{
		diag: Diagnostic{
			RuleID:      rule.ID(),
			RuleName:    rule.Name(),
			Message:     message,
			Severity:    rule.DefaultSeverity(),
			FilePath:    path,
			StartLine:   pos.StartLine,
			StartColumn: pos.StartColumn,
			EndLine:     pos.EndLine,
			EndColumn:   pos.EndColumn,
		},
	}
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *DiagnosticBuilder) WithSuggestion(s string) *DiagnosticBuilder {
	b.diag.Suggestion = s
	return b
}

// WithEdit adds a single fix edit.
func (b *DiagnosticBuilder) WithEdit(edit fix.TextEdit) *DiagnosticBuilder {
	b.diag.FixEdits = append(b.diag.FixEdits, edit)
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
