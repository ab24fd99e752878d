package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cjkspacing/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "empty edits returns original",
			content: "中文abc",
			want:    "中文abc",
		},
		{
			name:    "insertion between scripts",
			content: "中文abc",
			edits:   []fix.TextEdit{{StartOffset: 6, EndOffset: 6, NewText: " "}},
			want:    "中文 abc",
		},
		{
			name:    "deletion",
			content: "a  b",
			edits:   []fix.TextEdit{{StartOffset: 1, EndOffset: 3, NewText: ""}},
			want:    "ab",
		},
		{
			name:    "collapse after a CRLF line",
			content: "中文\r\nabc  中文",
			edits:   []fix.TextEdit{{StartOffset: 11, EndOffset: 13, NewText: " "}},
			want:    "中文\r\nabc 中文",
		},
		{
			name:    "multiple edits",
			content: "中a中",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3, NewText: " "},
				{StartOffset: 4, EndOffset: 4, NewText: " "},
			},
			want: "中 a 中",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fix.ApplyEdits([]byte(tt.content), tt.edits)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	t.Run("sorts edits", func(t *testing.T) {
		t.Parallel()
		accepted, skipped, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 4, EndOffset: 4, NewText: "x"},
			{StartOffset: 1, EndOffset: 2, NewText: ""},
		}, 10)
		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, accepted, 2)
		assert.Equal(t, 1, accepted[0].StartOffset)
	})

	t.Run("skips overlapping edits", func(t *testing.T) {
		t.Parallel()
		accepted, skipped, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 0, EndOffset: 3, NewText: "a"},
			{StartOffset: 2, EndOffset: 4, NewText: "b"},
			{StartOffset: 4, EndOffset: 4, NewText: "c"},
		}, 10)
		require.NoError(t, err)
		require.Len(t, accepted, 2)
		require.Len(t, skipped, 1)
		assert.Equal(t, "b", skipped[0].NewText)
	})

	t.Run("skips second insertion at same offset", func(t *testing.T) {
		t.Parallel()
		accepted, skipped, err := fix.PrepareEdits([]fix.TextEdit{
			{StartOffset: 2, EndOffset: 2, NewText: " "},
			{StartOffset: 2, EndOffset: 2, NewText: " "},
		}, 5)
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
		assert.Len(t, skipped, 1)
	})

	t.Run("rejects out of range edit", func(t *testing.T) {
		t.Parallel()
		_, _, err := fix.PrepareEdits([]fix.TextEdit{{StartOffset: 3, EndOffset: 12}}, 10)
		var verr *fix.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "exceeds content length")
	})

	t.Run("rejects inverted edit", func(t *testing.T) {
		t.Parallel()
		err := fix.ValidateEdits([]fix.TextEdit{{StartOffset: 3, EndOffset: 1}}, 10)
		require.Error(t, err)
	})
}
