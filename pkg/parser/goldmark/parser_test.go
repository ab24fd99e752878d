package goldmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
	"github.com/yaklabco/cjkspacing/pkg/parser/goldmark"
)

func TestParser_New(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flavor     string
		wantFlavor string
	}{
		{"commonmark", goldmark.FlavorCommonMark, goldmark.FlavorCommonMark},
		{"gfm", goldmark.FlavorGFM, goldmark.FlavorGFM},
		{"invalid defaults to commonmark", "invalid", goldmark.FlavorCommonMark},
		{"empty defaults to commonmark", "", goldmark.FlavorCommonMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantFlavor, goldmark.New(tt.flavor).Flavor())
		})
	}
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	content := []byte("# 标题\n\n正文")
	snapshot, err := goldmark.New(goldmark.FlavorGFM).Parse(context.Background(), "test.md", content)
	require.NoError(t, err)

	assert.Equal(t, "test.md", snapshot.Path)
	assert.Equal(t, content, snapshot.Content)
	assert.NotSame(t, &content[0], &snapshot.Content[0])
	assert.Len(t, snapshot.Lines, 3)
}

func TestParser_Parse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := goldmark.New(goldmark.FlavorGFM).Parse(ctx, "test.md", []byte("x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParser_EmphasisRanges(t *testing.T) {
	t.Parallel()

	parser := goldmark.New(goldmark.FlavorGFM)

	tests := []struct {
		name string
		text string
		kind mdast.NodeKind
		want []string
	}{
		{
			name: "asterisk italic",
			text: "前*这是english*后",
			kind: mdast.NodeEmphasis,
			want: []string{"*这是english*"},
		},
		{
			name: "underscore italic",
			text: "_这是一个数学公式_",
			kind: mdast.NodeEmphasis,
			want: []string{"_这是一个数学公式_"},
		},
		{
			name: "bold of both markers",
			text: "a **one** b __two__ c",
			kind: mdast.NodeStrong,
			want: []string{"**one**", "__two__"},
		},
		{
			name: "italic nested in bold",
			text: "**bold *with* italics**",
			kind: mdast.NodeEmphasis,
			want: []string{"*with*"},
		},
		{
			name: "bold around italic",
			text: "**bold *with* italics**",
			kind: mdast.NodeStrong,
			want: []string{"**bold *with* italics**"},
		},
		{
			name: "bold across a soft line break",
			text: "中文**教学\n与English**中文。",
			kind: mdast.NodeStrong,
			want: []string{"**教学\n与English**"},
		},
		{
			name: "intraword underscore is not emphasis",
			text: "foo_bar_baz",
			kind: mdast.NodeEmphasis,
			want: nil,
		},
		{
			name: "non emphasis kind",
			text: "*x*",
			kind: mdast.NodeCodeSpan,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			for _, r := range parser.EmphasisRanges(tt.text, tt.kind) {
				got = append(got, tt.text[r.StartOffset:r.EndOffset])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Regions(t *testing.T) {
	t.Parallel()

	src := "中文`code`中文\n\n<div>\n块\n</div>\n\n文字<u>下划线</u>\n\n    indented\n"
	regions := goldmark.New(goldmark.FlavorGFM).Regions([]byte(src))

	type found struct {
		kind mdast.NodeKind
		text string
	}
	var got []found
	for _, region := range regions {
		got = append(got, found{region.Kind, src[region.Range.StartOffset:region.Range.EndOffset]})
	}

	require.Len(t, got, 5)
	assert.Equal(t, []found{
		{mdast.NodeCodeSpan, "`code`"},
		{mdast.NodeHTMLBlock, "<div>\n块\n</div>"},
		{mdast.NodeHTMLInline, "<u>"},
		{mdast.NodeHTMLInline, "</u>"},
	}, got[:4])
	assert.Equal(t, mdast.NodeCodeBlock, got[4].kind)
	assert.Contains(t, got[4].text, "indented")
	assert.NotContains(t, got[4].text, "\n")
}

func TestParser_FencedRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"closed", "前\n\n```go\nx := 1\n```\n\n后\n", "```go\nx := 1\n```"},
		{"info string", "```js 示例abc\n代码\n```", "```js 示例abc\n代码\n```"},
		{"empty", "```\n```\n", "```\n```"},
		{"unclosed", "~~~\n中文abc\n", "~~~\n中文abc"},
		{"indented fence", "  ```\n  x\n  ```\n", "```\n  x\n  ```"},
		{"blockquote", "> ```\n> 中文\n> ```\n", "```\n> 中文\n> ```"},
	}

	parser := goldmark.New(goldmark.FlavorGFM)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			regions := parser.Regions([]byte(tt.src))
			require.Len(t, regions, 1)
			assert.Equal(t, mdast.NodeCodeBlock, regions[0].Kind)
			assert.Equal(t, tt.want, tt.src[regions[0].Range.StartOffset:regions[0].Range.EndOffset])
		})
	}
}
