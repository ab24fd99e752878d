package pretty_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/internal/ui/pretty"
)

func TestIsColorEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	file, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	tests := []struct {
		name   string
		mode   string
		writer io.Writer
		want   bool
	}{
		{"always forces color", "always", &bytes.Buffer{}, true},
		{"never disables color", "never", os.Stdout, false},
		{"auto on a buffer", "auto", &bytes.Buffer{}, false},
		{"auto on a regular file", "auto", file, false},
		{"empty mode behaves as auto", "", &bytes.Buffer{}, false},
		{"unknown mode behaves as auto", "rainbow", &bytes.Buffer{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pretty.IsColorEnabled(tt.mode, tt.writer))
		})
	}
}

func TestIsColorEnabled_NoColorWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
	assert.True(t, pretty.IsColorEnabled("always", os.Stdout), "an explicit mode ignores NO_COLOR")
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, pretty.IsTerminal(&bytes.Buffer{}))
	assert.False(t, pretty.IsTerminal("stdout"))

	file, err := os.Create(filepath.Join(t.TempDir(), "report.txt"))
	require.NoError(t, err)
	defer file.Close()
	assert.False(t, pretty.IsTerminal(file))
}

// styleSet lists every style so a new field cannot be left uninitialized.
func styleSet(styles *pretty.Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Error":        styles.Error,
		"Warning":      styles.Warning,
		"Info":         styles.Info,
		"FilePath":     styles.FilePath,
		"Location":     styles.Location,
		"RuleID":       styles.RuleID,
		"Message":      styles.Message,
		"Suggestion":   styles.Suggestion,
		"SourceLine":   styles.SourceLine,
		"Caret":        styles.Caret,
		"DiffHeader":   styles.DiffHeader,
		"DiffHunk":     styles.DiffHunk,
		"DiffAdd":      styles.DiffAdd,
		"DiffRemove":   styles.DiffRemove,
		"DiffContext":  styles.DiffContext,
		"SummaryTitle": styles.SummaryTitle,
		"SummaryValue": styles.SummaryValue,
		"Success":      styles.Success,
		"Failure":      styles.Failure,
		"Dim":          styles.Dim,
		"Bold":         styles.Bold,
	}
}

func TestNewStyles_PlainKeepsCJKText(t *testing.T) {
	t.Parallel()

	const line = "使用 Go 语言，中文English混排。"

	for name, style := range styleSet(pretty.NewStyles(false)) {
		rendered := style.Render(line)
		assert.Equal(t, line, rendered, name)
		assert.Equal(t, uniseg.StringWidth(line), uniseg.StringWidth(rendered), name)
	}
}

func TestNewStyles_ColorKeepsText(t *testing.T) {
	t.Parallel()

	for name, style := range styleSet(pretty.NewStyles(true)) {
		assert.Contains(t, style.Render("中文"), "中文", name)
	}
}
