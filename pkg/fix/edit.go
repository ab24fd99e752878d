// Package fix provides text edits, their validation and application, edit
// derivation for whitespace-only rewrites, and unified diffs for dry runs.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsertion reports whether the edit replaces nothing.
func (e TextEdit) IsInsertion() bool {
	return e.StartOffset == e.EndOffset
}

// IsDeletion reports whether the edit removes text without replacing it.
func (e TextEdit) IsDeletion() bool {
	return e.NewText == "" && e.EndOffset > e.StartOffset
}

// EditBuilder accumulates text edits for a file.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, TextEdit{
		StartOffset: start,
		EndOffset:   end,
		NewText:     newText,
	})
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.ReplaceRange(offset, offset, text)
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.ReplaceRange(start, end, "")
}

// ApplyEdits splices edits into content. The edits must come from
// PrepareEdits: sorted, in bounds and free of overlaps. Content is returned
// as is when there is nothing to apply.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, edit := range edits {
		size += len(edit.NewText) - (edit.EndOffset - edit.StartOffset)
	}

	out := make([]byte, 0, size)
	prev := 0
	for _, edit := range edits {
		out = append(out, content[prev:edit.StartOffset]...)
		out = append(out, edit.NewText...)
		prev = edit.EndOffset
	}
	return append(out, content[prev:]...)
}
