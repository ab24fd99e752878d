package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/cjkspacing/internal/ui/pretty"
	"github.com/yaklabco/cjkspacing/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		total += r.reportFile(file)
	}

	switch {
	case r.opts.Statistics:
		fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats))
	case r.opts.ShowSummary:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := displayPath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	if file.Result == nil {
		return 0
	}
	if file.Result.Skipped {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Warning.Render(file.Result.Summary()),
		)
	}
	if file.Result.FileResult == nil || len(file.Result.Diagnostics) == 0 {
		return 0
	}

	diagnostics := file.Result.Diagnostics
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

	for i := range diagnostics {
		diag := diagnostics[i]
		diag.FilePath = path

		var sourceLine string
		if r.opts.ShowContext && file.Result.Snapshot != nil {
			sourceLine = string(file.Result.Snapshot.LineContent(diag.StartLine))
		}

		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine, r.opts.RuleFormat))
	}

	fmt.Fprintln(r.bw)

	return len(diagnostics)
}
