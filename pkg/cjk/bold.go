package cjk

import (
	"sort"
	"unicode/utf8"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// BoldRange is a bold or italic span with the length of its delimiters.
type BoldRange struct {
	TextRange
	MarkerLength int
}

// boldRanges returns the asterisk bold spans found by the marker scanner
// plus the underscore bold spans reported by locator.
func boldRanges(text string, locator EmphasisLocator) []BoldRange {
	var ranges []BoldRange
	for _, r := range collectMarkerRanges(text, '*', 2) {
		ranges = append(ranges, BoldRange{TextRange: r, MarkerLength: 2})
	}
	for _, r := range underscoreRanges(text, locator, mdast.NodeStrong) {
		ranges = append(ranges, BoldRange{TextRange: r, MarkerLength: 2})
	}
	return ranges
}

// normalizeBoldSpacing decides, for each bold span, whether the gap to its
// nearest neighbor on either side should be one space or none. Gaps are
// runs of spaces and tabs; a line break ends the search and that side is
// left alone. Spans are processed right to left.
func normalizeBoldSpacing(text string, opts SpacingOptions, locator EmphasisLocator) string {
	ranges := boldRanges(text, locator)
	if len(ranges) == 0 {
		return text
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start > ranges[j].Start })

	for i, r := range ranges {
		inner := text[r.Start+r.MarkerLength : r.End-r.MarkerLength]
		first, last := firstNonSpace(inner), lastNonSpace(inner)
		if first == 0 || last == 0 {
			continue
		}

		leftGapStart := r.Start
		for leftGapStart > 0 && isSpacing(text[leftGapStart-1]) {
			leftGapStart--
		}
		rightGapEnd := r.End
		for rightGapEnd < len(text) && isSpacing(text[rightGapEnd]) {
			rightGapEnd++
		}

		var left, right rune
		if leftGapStart > 0 {
			left, _ = utf8.DecodeLastRuneInString(text[:leftGapStart])
		}
		if rightGapEnd < len(text) {
			right, _ = utf8.DecodeRuneInString(text[rightGapEnd:])
		}

		leftGap := text[leftGapStart:r.Start]
		rightGap := text[r.End:rightGapEnd]
		newLeft := leftGapFor(left, first, leftGap, opts)
		newRight := rightGapFor(right, last, rightGap, opts)

		if newLeft == leftGap && newRight == rightGap {
			continue
		}

		text = text[:leftGapStart] + newLeft + text[r.Start:r.End] + newRight + text[rightGapEnd:]

		delta := len(newLeft) - len(leftGap) + len(newRight) - len(rightGap)
		for j := i + 1; j < len(ranges); j++ {
			if ranges[j].End >= rightGapEnd {
				ranges[j].End += delta
			}
		}
	}

	return text
}

// leftGapFor returns the gap that belongs between left and a bold span
// whose content starts with first.
func leftGapFor(left, first rune, gap string, opts SpacingOptions) string {
	if left == 0 || isLineBreak(left) {
		return gap
	}

	leftEnglishLike := opts.isEnglishLikeBefore(left)
	firstCJK := IsCJK(first)

	if !IsCJK(left) && !IsCJKPunctuation(left) && !(leftEnglishLike && firstCJK) {
		return gap
	}

	if (IsCJK(left) && opts.isEnglishLikeAfter(first)) || (leftEnglishLike && firstCJK) {
		return " "
	}
	return ""
}

// rightGapFor returns the gap that belongs between a bold span whose
// content ends with last and right. CJK punctuation on the right always
// closes the gap.
func rightGapFor(right, last rune, gap string, opts SpacingOptions) string {
	if right == 0 || isLineBreak(right) {
		return gap
	}

	rightPunct := IsCJKPunctuation(right)
	rightEnglishLike := opts.isEnglishLikeAfter(right)
	lastCJK := IsCJK(last)

	if !IsCJK(right) && !rightPunct && !(rightEnglishLike && lastCJK) {
		return gap
	}

	if !rightPunct && ((IsCJK(right) && opts.isEnglishLikeBefore(last)) || (rightEnglishLike && lastCJK)) {
		return " "
	}
	return ""
}
