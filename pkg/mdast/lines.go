package mdast

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// BuildLines splits content into lines. LF and CRLF endings are recognized;
// a lone CR is ordinary text. Content ending in a newline gets a final empty
// line, so every offset up to len(content) belongs to some line.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	start := 0
	for {
		idx := bytes.IndexByte(content[start:], '\n')
		if idx < 0 {
			break
		}

		newline := start + idx
		if newline > start && content[newline-1] == '\r' {
			newline--
		}
		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: newline, EndOffset: start + idx + 1})
		start += idx + 1
	}

	return append(lines, LineInfo{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})
}

// lineIndex returns the 0-based line holding offset, or -1. Offsets past the
// end belong to the last line.
func (f *FileSnapshot) lineIndex(offset int) int {
	if offset < 0 || len(f.Lines) == 0 {
		return -1
	}
	if offset >= len(f.Content) {
		return len(f.Lines) - 1
	}
	return sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
}

// LineAt converts a byte offset to a 1-based line and a 1-based byte column.
// It returns (0, 0) when the offset is out of range.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	idx := f.lineIndex(offset)
	if idx < 0 {
		return 0, 0
	}
	return idx + 1, offset - f.Lines[idx].StartOffset + 1
}

// Position converts a byte range into 1-based line/column positions.
// Unlike LineAt, the columns count characters, so a position inside CJK
// text matches what an editor shows.
func (f *FileSnapshot) Position(r SourceRange) SourcePosition {
	startLine, startCol := f.charPosition(r.StartOffset)
	endLine, endCol := f.charPosition(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

func (f *FileSnapshot) charPosition(offset int) (int, int) {
	idx := f.lineIndex(offset)
	if idx < 0 {
		return 0, 0
	}

	start := f.Lines[idx].StartOffset
	end := min(max(offset, start), len(f.Content))
	return idx + 1, utf8.RuneCount(f.Content[start:end]) + 1
}

// LineContent returns a 1-based line without its LF or CRLF ending, or nil
// when there is no such line.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
