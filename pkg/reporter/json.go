package reporter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	jsonpretty "github.com/tidwall/pretty"

	"github.com/yaklabco/cjkspacing/internal/ui/pretty"
	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/runner"
)

// jsonSchemaVersion versions the JSON output layout.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Modified    bool             `json:"modified,omitempty"`
	Pending     bool             `json:"pending,omitempty"`
	Skipped     string           `json:"skipped,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID      string    `json:"ruleId"`
	RuleName    string    `json:"ruleName"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	StartLine   int       `json:"startLine"`
	StartColumn int       `json:"startColumn"`
	EndLine     int       `json:"endLine"`
	EndColumn   int       `json:"endColumn"`
	Suggestion  string    `json:"suggestion,omitempty"`
	Fixable     bool      `json:"fixable"`
	Fixes       []JSONFix `json:"fixes,omitempty"`
}

// JSONFix is a proposed edit, in byte offsets into the file.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int                     `json:"filesChecked"`
	FilesWithIssues int                     `json:"filesWithIssues"`
	FilesModified   int                     `json:"filesModified"`
	FilesPending    int                     `json:"filesPending"`
	FilesErrored    int                     `json:"filesErrored"`
	TotalIssues     int                     `json:"totalIssues"`
	Fixable         int                     `json:"fixable"`
	BySeverity      map[config.Severity]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON. Output is indented unless Compact
// is set, and syntax-highlighted when color is enabled.
type JSONReporter struct {
	opts  Options
	color bool
	bw    *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts:  opts,
		color: pretty.IsColorEnabled(opts.Color, opts.Writer),
		bw:    bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	raw := buf.Bytes()
	if r.opts.Compact {
		raw = jsonpretty.Ugly(raw)
		raw = append(raw, '\n')
	} else {
		raw = jsonpretty.PrettyOptions(raw, &jsonpretty.Options{Width: 80, Indent: "  "})
	}
	if r.color {
		raw = jsonpretty.Color(raw, nil)
	}

	if _, err := r.bw.Write(raw); err != nil {
		return 0, fmt.Errorf("write JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[config.Severity]int),
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        displayPath(file.Path, r.opts.WorkingDir),
			Diagnostics: make([]JSONDiagnostic, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if pr := file.Result; pr != nil {
			fileResult.Modified = pr.Written
			fileResult.Pending = pr.Modified && !pr.Written && !pr.Skipped
			if pr.Skipped {
				fileResult.Skipped = pr.SkipReason
			}

			if pr.FileResult != nil {
				for _, diag := range pr.Diagnostics {
					jsonDiag := JSONDiagnostic{
						RuleID:      diag.RuleID,
						RuleName:    diag.RuleName,
						Severity:    string(diag.Severity),
						Message:     diag.Message,
						StartLine:   diag.StartLine,
						StartColumn: diag.StartColumn,
						EndLine:     diag.EndLine,
						EndColumn:   diag.EndColumn,
						Suggestion:  diag.Suggestion,
						Fixable:     diag.HasFix(),
					}
					for _, edit := range diag.FixEdits {
						jsonDiag.Fixes = append(jsonDiag.Fixes, JSONFix{
							StartOffset: edit.StartOffset,
							EndOffset:   edit.EndOffset,
							NewText:     edit.NewText,
						})
					}

					fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiag)
					output.Summary.TotalIssues++
					if jsonDiag.Fixable {
						output.Summary.Fixable++
					}

					severity := diag.Severity
					if severity == "" {
						severity = config.SeverityWarning
					}
					output.Summary.BySeverity[severity]++
				}
			}
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}
		if fileResult.Pending {
			output.Summary.FilesPending++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
