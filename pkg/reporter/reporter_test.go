package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/pkg/config"
	"github.com/yaklabco/cjkspacing/pkg/fix"
	"github.com/yaklabco/cjkspacing/pkg/lint"
	"github.com/yaklabco/cjkspacing/pkg/mdast"
	"github.com/yaklabco/cjkspacing/pkg/reporter"
	"github.com/yaklabco/cjkspacing/pkg/runner"
)

const sample = "# 标题\n\n中文English\n"

func sampleResult(t *testing.T) *runner.Result {
	t.Helper()

	diff, err := fix.GenerateDiff("/work/docs/a.md", []byte(sample), []byte("# 标题\n\n中文 English\n"))
	require.NoError(t, err)

	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/docs/a.md",
				Result: &lint.PipelineResult{
					Modified: true,
					Diff:     diff,
					FileResult: &lint.FileResult{
						Snapshot: mdast.NewFileSnapshot("/work/docs/a.md", []byte(sample)),
						Diagnostics: []lint.Diagnostic{{
							RuleID:      "CJK001",
							RuleName:    "space-between-cjk-and-latin",
							Message:     "Missing space between CJK and Latin text",
							Severity:    config.SeverityWarning,
							FilePath:    "/work/docs/a.md",
							StartLine:   3,
							StartColumn: 3,
							EndLine:     3,
							EndColumn:   3,
							Suggestion:  "Insert a space",
							FixEdits:    []fix.TextEdit{{StartOffset: 16, EndOffset: 16, NewText: " "}},
						}},
					},
				},
			},
			{Path: "/work/docs/b.md", Result: &lint.PipelineResult{FileResult: &lint.FileResult{}}},
		},
		Stats: runner.Stats{
			FilesDiscovered:       2,
			FilesProcessed:        2,
			FilesWithIssues:       1,
			FilesPending:          1,
			DiagnosticsTotal:      1,
			DiagnosticsFixable:    1,
			DiagnosticsBySeverity: map[config.Severity]int{config.SeverityWarning: 1},
		},
	}
}

func newReporter(t *testing.T, opts reporter.Options) (reporter.Reporter, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = "never"
	opts.WorkingDir = "/work"

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	return rep, &buf
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "diff", want: reporter.FormatDiff},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		got, err := reporter.ParseFormat(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.True(t, got.IsValid())
	}

	assert.False(t, reporter.Format("table").IsValid())
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{
		Format:      reporter.FormatText,
		ShowContext: true,
		ShowSummary: true,
		RuleFormat:  config.RuleFormatCombined,
	})

	count, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	out := buf.String()
	assert.Contains(t, out, "docs/a.md (1 issue)\n")
	assert.Contains(t, out, "  docs/a.md:3:3  warning  Missing space between CJK and Latin text  (CJK001/space-between-cjk-and-latin)\n")
	assert.Contains(t, out, "        中文English\n            ^\n")
	assert.Contains(t, out, "Suggestion: Insert a space")
	assert.NotContains(t, out, "docs/b.md")
	assert.Contains(t, out, "1 file would be reformatted")
}

func TestTextReporter_Statistics(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatText, Statistics: true})

	_, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Files checked:")
	assert.Contains(t, buf.String(), "Spacing check completed with warnings")
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatText, ShowSummary: true})

	count, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatJSON})

	count, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Files, 2)
	assert.Equal(t, "docs/a.md", out.Files[0].Path)
	assert.True(t, out.Files[0].Pending)
	require.Len(t, out.Files[0].Diagnostics, 1)

	diag := out.Files[0].Diagnostics[0]
	assert.Equal(t, "CJK001", diag.RuleID)
	assert.Equal(t, "space-between-cjk-and-latin", diag.RuleName)
	assert.True(t, diag.Fixable)
	assert.Equal(t, []reporter.JSONFix{{StartOffset: 16, EndOffset: 16, NewText: " "}}, diag.Fixes)

	assert.Equal(t, 2, out.Summary.FilesChecked)
	assert.Equal(t, 1, out.Summary.FilesWithIssues)
	assert.Equal(t, 1, out.Summary.FilesPending)
	assert.Equal(t, 1, out.Summary.Fixable)
	assert.Equal(t, 1, out.Summary.BySeverity[config.SeverityWarning])

	assert.Contains(t, buf.String(), "\n  \"files\": [", "output is indented")
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatJSON, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t,
		`{"version":"1","files":[],"summary":{"filesChecked":0,"filesWithIssues":0,"filesModified":0,`+
			`"filesPending":0,"filesErrored":0,"totalIssues":0,"fixable":0,"bySeverity":{}}}`+"\n",
		buf.String())
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatDiff, ShowSummary: true})

	count, err := rep.Report(context.Background(), sampleResult(t))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "diff --git a/docs/a.md b/docs/a.md", lines[0])
	assert.Equal(t, "--- a/docs/a.md", lines[1])
	assert.Equal(t, "+++ b/docs/a.md", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "@@"))
	assert.Contains(t, lines, "-中文English")
	assert.Contains(t, lines, "+中文 English")
	assert.Contains(t, buf.String(), "1 file changed, 1 insertion(+), 1 deletion(-)\n")
}

func TestDiffReporter_NoDiffs(t *testing.T) {
	t.Parallel()

	rep, buf := newReporter(t, reporter.Options{Format: reporter.FormatDiff, ShowSummary: true})

	count, err := rep.Report(context.Background(), &runner.Result{
		Files: []runner.FileOutcome{{Path: "/work/a.md", Result: &lint.PipelineResult{}}},
	})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, buf.String())
}
