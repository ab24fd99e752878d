package cjk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/pkg/cjk"
	"github.com/yaklabco/cjkspacing/pkg/mdast"
	"github.com/yaklabco/cjkspacing/pkg/parser/goldmark"
)

// stubLocator returns fixed ranges per kind regardless of text.
type stubLocator map[mdast.NodeKind][]mdast.SourceRange

func (s stubLocator) EmphasisRanges(_ string, kind mdast.NodeKind) []mdast.SourceRange {
	return s[kind]
}

func TestIsolate(t *testing.T) {
	t.Parallel()

	text := "前**粗体**中*斜体*后"
	masked, reps := cjk.Isolate(text, nil)

	require.Len(t, reps, 2)
	assert.Equal(t, "**粗体**", reps[0].Value)
	assert.Equal(t, "*斜体*", reps[1].Value)
	assert.NotEqual(t, reps[0].Placeholder, reps[1].Placeholder)
	assert.Equal(t, "前"+reps[0].Placeholder+"中"+reps[1].Placeholder+"后", masked)
	assert.NotContains(t, masked, "*")
}

func TestIsolate_UnderscoreFromLocator(t *testing.T) {
	t.Parallel()

	text := "a __b__ _c_ d"
	locator := stubLocator{
		mdast.NodeStrong:   {{StartOffset: 2, EndOffset: 7}},
		mdast.NodeEmphasis: {{StartOffset: 8, EndOffset: 11}},
	}

	// The italic pass runs on the output of the bold pass, so its stub
	// offsets no longer line up and the range is rejected.
	masked, reps := cjk.Isolate(text, locator)
	require.Len(t, reps, 1)
	assert.Equal(t, "__b__", reps[0].Value)
	assert.Contains(t, masked, "_c_")
}

func TestIsolate_RejectsRangesNotBoundedByUnderscores(t *testing.T) {
	t.Parallel()

	text := "x **b** y"
	locator := stubLocator{mdast.NodeStrong: {{StartOffset: 2, EndOffset: 7}}}

	// Asterisk bold is isolated by the scanner; the locator's range then
	// points at placeholder text that is not bounded by "__".
	_, reps := cjk.Isolate(text, locator)
	require.Len(t, reps, 1)
	assert.Equal(t, "**b**", reps[0].Value)

	_, reps = cjk.Isolate("x ___b___ y", stubLocator{mdast.NodeStrong: {{StartOffset: 3, EndOffset: 8}}})
	assert.Empty(t, reps)
}

func TestIsolateRestore_RoundTrip(t *testing.T) {
	t.Parallel()

	parser := goldmark.New(goldmark.FlavorGFM)
	inputs := []string{
		"",
		"纯文本",
		"前**粗体**中*斜体*后__下划线__与_斜_",
		"**bold *with* italics**",
		"2.  **利用**\n    * 很多**可视化**\n    * 既然**性能**做到",
		`\*not\* **but *this***`,
		"**unclosed and *also",
		"a**\n\n- **b**",
	}

	for _, input := range inputs {
		masked, reps := cjk.Isolate(input, parser)
		assert.Equal(t, input, cjk.Restore(masked, reps), "round trip of %q", input)
	}
}

func TestRestore_NestedPlaceholders(t *testing.T) {
	t.Parallel()

	// The italic range between two list bullets swallows the bold
	// placeholder recorded before it.
	text := "* 一**粗**\n* 二"
	masked, reps := cjk.Isolate(text, nil)
	require.Len(t, reps, 2)
	assert.True(t, strings.Contains(reps[1].Value, reps[0].Placeholder))
	assert.Equal(t, text, cjk.Restore(masked, reps))
}

func TestContainsPlaceholder(t *testing.T) {
	t.Parallel()

	masked, _ := cjk.Isolate("**x**", nil)
	assert.True(t, cjk.ContainsPlaceholder(masked))
	assert.False(t, cjk.ContainsPlaceholder("{notaplaceholder}"))
}
