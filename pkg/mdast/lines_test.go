package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []mdast.LineInfo
	}{
		{
			name:    "empty",
			content: "",
			want:    []mdast.LineInfo{},
		},
		{
			name:    "cjk without newline",
			content: "中文",
			want:    []mdast.LineInfo{{StartOffset: 0, NewlineStart: 6, EndOffset: 6}},
		},
		{
			name:    "trailing LF adds an empty line",
			content: "中文\n",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 6, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "CRLF",
			content: "中文\r\nabc",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 6, EndOffset: 8},
				{StartOffset: 8, NewlineStart: 11, EndOffset: 11},
			},
		},
		{
			name:    "mixed endings",
			content: "甲\r\n乙\n丙",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 8, EndOffset: 9},
				{StartOffset: 9, NewlineStart: 12, EndOffset: 12},
			},
		},
		{
			name:    "lone CR is text",
			content: "a\rb\n",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 3, EndOffset: 4},
				{StartOffset: 4, NewlineStart: 4, EndOffset: 4},
			},
		},
		{
			name:    "blank lines",
			content: "\n\r\n",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 3, EndOffset: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdast.BuildLines([]byte(tt.content)))
		})
	}
}

// crlfDoc is "中文" CRLF "英文abc": 6+2 bytes, then 6+3 bytes.
const crlfDoc = "中文\r\n英文abc"

func TestFileSnapshot_LineAt(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("doc.md", []byte(crlfDoc))

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{6, 1, 7},
		{8, 2, 1},
		{14, 2, 7},
		{17, 2, 10},
		{-1, 0, 0},
	}

	for _, tt := range tests {
		line, col := snapshot.LineAt(tt.offset)
		assert.Equal(t, tt.wantLine, line, "line of offset %d", tt.offset)
		assert.Equal(t, tt.wantCol, col, "byte column of offset %d", tt.offset)
	}

	line, col := mdast.NewFileSnapshot("empty.md", nil).LineAt(0)
	assert.Zero(t, line)
	assert.Zero(t, col)
}

func TestFileSnapshot_PositionCountsCharacters(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("doc.md", []byte(crlfDoc))

	tests := []struct {
		name string
		r    mdast.SourceRange
		want mdast.SourcePosition
	}{
		{
			name: "latin after cjk on the second line",
			r:    mdast.SourceRange{StartOffset: 14, EndOffset: 17},
			want: mdast.SourcePosition{StartLine: 2, StartColumn: 3, EndLine: 2, EndColumn: 6},
		},
		{
			name: "range over the CRLF ending",
			r:    mdast.SourceRange{StartOffset: 6, EndOffset: 8},
			want: mdast.SourcePosition{StartLine: 1, StartColumn: 3, EndLine: 2, EndColumn: 1},
		},
		{
			name: "negative offsets",
			r:    mdast.SourceRange{StartOffset: -1, EndOffset: -1},
			want: mdast.SourcePosition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, snapshot.Position(tt.r))
		})
	}
}

func TestFileSnapshot_LineContent(t *testing.T) {
	t.Parallel()

	snapshot := mdast.NewFileSnapshot("doc.md", []byte(crlfDoc+"\n"))

	assert.Equal(t, "中文", string(snapshot.LineContent(1)), "CRLF is stripped")
	assert.Equal(t, "英文abc", string(snapshot.LineContent(2)))
	assert.Empty(t, snapshot.LineContent(3))
	assert.Nil(t, snapshot.LineContent(0))
	assert.Nil(t, snapshot.LineContent(4))
}
