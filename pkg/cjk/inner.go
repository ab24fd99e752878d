package cjk

import (
	"sort"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// spaceInsideEmphasis applies space to the content between the delimiters
// of every locator range of kind. Ranges are processed right to left and
// enclosing ranges are stretched by each edit so nested spans stay aligned.
func spaceInsideEmphasis(text string, locator EmphasisLocator, kind mdast.NodeKind, space func(string) string) string {
	if locator == nil {
		return text
	}

	length := kind.MarkerLength()
	var ranges []TextRange
	for _, r := range locator.EmphasisRanges(text, kind) {
		if validRange(text, r, length) {
			ranges = append(ranges, TextRange{Start: r.StartOffset, End: r.EndOffset})
		}
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start > ranges[j].Start })

	for i, r := range ranges {
		innerStart, innerEnd := r.Start+length, r.End-length
		inner := text[innerStart:innerEnd]
		spaced := space(inner)
		if spaced == inner {
			continue
		}

		text = text[:innerStart] + spaced + text[innerEnd:]
		delta := len(spaced) - len(inner)

		for j := i + 1; j < len(ranges); j++ {
			if ranges[j].End >= r.End {
				ranges[j].End += delta
			}
		}
	}

	return text
}
