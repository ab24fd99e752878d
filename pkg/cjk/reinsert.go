package cjk

import (
	"regexp"

	"github.com/yaklabco/cjkspacing/pkg/mask"
)

var exceptionHead, exceptionTail = exceptionPatterns(mask.ExceptionPattern())

// exceptionPatterns builds the CJK-before-token and token-before-CJK
// patterns for the masked kinds that keep a visible space next to CJK text.
func exceptionPatterns(token string) (*regexp.Regexp, *regexp.Regexp) {
	head := regexp.MustCompile(cjkGroup + `( *)(` + token + `)`)
	tail := regexp.MustCompile(`(` + token + `)( *)` + cjkGroup)
	return head, tail
}

// reinsertExceptionSpacing normalizes the gap between a CJK character and
// an adjacent link, wiki-link, inline code or inline math token to one space.
func reinsertExceptionSpacing(text string) string {
	text = exceptionHead.ReplaceAllString(text, spacedReplacement)
	return exceptionTail.ReplaceAllString(text, spacedReplacement)
}
