package cjk

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

const placeholderPrefix = "{CJKSPACINGEMPHASIS"

// EmphasisLocator answers which byte ranges of text the Markdown parser
// considers italic (mdast.NodeEmphasis) or bold (mdast.NodeStrong). Each
// range covers the delimiters as well as the content.
type EmphasisLocator interface {
	EmphasisRanges(text string, kind mdast.NodeKind) []mdast.SourceRange
}

// TextRange is a half-open byte interval into the current working string.
type TextRange struct {
	Start int
	End   int
}

// EmphasisReplacement records one emphasis span swapped out for a placeholder.
type EmphasisReplacement struct {
	Placeholder string
	Value       string
}

// Isolate replaces bold and italic spans with unique placeholders so the
// boundary spacer cannot see into them.
//
// Asterisk spans are found by scanning for exact marker runs; underscore
// spans come from locator and are kept only when bounded by exactly the
// expected number of underscores. The passes run bold-asterisk,
// italic-asterisk, bold-underscore, italic-underscore, each on the output of
// the previous one. A nil locator skips the underscore passes.
func Isolate(text string, locator EmphasisLocator) (string, []EmphasisReplacement) {
	iso := &isolator{}

	text = iso.replace(text, collectMarkerRanges(text, '*', 2))
	text = iso.replace(text, collectMarkerRanges(text, '*', 1))
	text = iso.replace(text, underscoreRanges(text, locator, mdast.NodeStrong))
	text = iso.replace(text, underscoreRanges(text, locator, mdast.NodeEmphasis))

	return text, iso.replacements
}

// Restore puts isolated emphasis back. Later passes may have swallowed
// earlier placeholders into their own values, so replacements are undone
// last first.
func Restore(text string, replacements []EmphasisReplacement) string {
	for i := len(replacements) - 1; i >= 0; i-- {
		rep := replacements[i]
		text = strings.Replace(text, rep.Placeholder, rep.Value, 1)
	}
	return text
}

// ContainsPlaceholder reports whether text already holds something shaped
// like an emphasis placeholder, which would make Restore ambiguous.
func ContainsPlaceholder(text string) bool {
	return strings.Contains(text, placeholderPrefix)
}

type isolator struct {
	replacements []EmphasisReplacement
	next         int
}

// replace swaps each range for a placeholder, leftmost first, skipping
// ranges that start inside an already replaced one.
func (iso *isolator) replace(text string, ranges []TextRange) string {
	if len(ranges) == 0 {
		return text
	}

	sorted := make([]TextRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var builder strings.Builder
	builder.Grow(len(text))
	cursor := 0

	for _, r := range sorted {
		if r.Start < cursor {
			continue
		}

		placeholder := placeholderPrefix + strconv.Itoa(iso.next) + "}"
		iso.next++

		iso.replacements = append(iso.replacements, EmphasisReplacement{
			Placeholder: placeholder,
			Value:       text[r.Start:r.End],
		})
		builder.WriteString(text[cursor:r.Start])
		builder.WriteString(placeholder)
		cursor = r.End
	}

	builder.WriteString(text[cursor:])
	return builder.String()
}

// collectMarkerRanges pairs unescaped exact runs of marker of the given
// length. An opener still unmatched at a paragraph break, or at the end of
// text, is dropped.
func collectMarkerRanges(text string, marker byte, length int) []TextRange {
	var ranges []TextRange
	open := -1

	for idx := 0; idx <= len(text)-length; idx++ {
		if text[idx] == '\n' && open >= 0 && isParagraphBreak(text, idx) {
			open = -1
			continue
		}

		if !isExactMarkerRun(text, idx, marker, length) || isEscaped(text, idx) {
			continue
		}

		if open < 0 {
			open = idx
		} else {
			ranges = append(ranges, TextRange{Start: open, End: idx + length})
			open = -1
		}

		idx += length - 1
	}

	return ranges
}

// isExactMarkerRun reports whether text holds exactly length copies of
// marker at idx, not touching a further copy on either side.
func isExactMarkerRun(text string, idx int, marker byte, length int) bool {
	if idx+length > len(text) {
		return false
	}
	for i := idx; i < idx+length; i++ {
		if text[i] != marker {
			return false
		}
	}
	if idx > 0 && text[idx-1] == marker {
		return false
	}
	if idx+length < len(text) && text[idx+length] == marker {
		return false
	}
	return true
}

// isEscaped reports whether the byte at idx is preceded by an odd number of backslashes.
func isEscaped(text string, idx int) bool {
	count := 0
	for cursor := idx - 1; cursor >= 0 && text[cursor] == '\\'; cursor-- {
		count++
	}
	return count%2 == 1
}

// isParagraphBreak reports whether the newline at idx is followed by a
// line holding nothing but spaces or tabs.
func isParagraphBreak(text string, idx int) bool {
	next := idx + 1
	for next < len(text) && (isSpacing(text[next]) || text[next] == '\r') {
		next++
	}
	return next < len(text) && text[next] == '\n'
}

// underscoreRanges returns locator ranges of kind whose source starts and
// ends with exactly the kind's number of underscores.
func underscoreRanges(text string, locator EmphasisLocator, kind mdast.NodeKind) []TextRange {
	if locator == nil {
		return nil
	}

	length := kind.MarkerLength()
	var ranges []TextRange

	for _, r := range locator.EmphasisRanges(text, kind) {
		if !validRange(text, r, length) {
			continue
		}
		if !isExactMarkerRun(text, r.StartOffset, '_', length) ||
			!isExactMarkerRun(text, r.EndOffset-length, '_', length) {
			continue
		}
		ranges = append(ranges, TextRange{Start: r.StartOffset, End: r.EndOffset})
	}

	return ranges
}

func validRange(text string, r mdast.SourceRange, length int) bool {
	return r.StartOffset >= 0 && r.EndOffset <= len(text) && r.EndOffset-r.StartOffset >= 2*length
}
