package cjk

import (
	"regexp"
	"strings"
)

const (
	cjkGroup = `(\p{Han}|\p{Katakana}|\p{Hiragana}|\p{Hangul})`

	// markdownTokens matches link-looking and inline-code-looking text that
	// survived masking; they are spaced like words.
	markdownTokens = `\[[^\[]*\]\(.*\)|` + "`[^`]*`"

	spacedReplacement = "${1} ${3}"
)

// Spacer inserts one space at each CJK/English-like boundary. It is built
// once from a SpacingOptions and is safe for concurrent use.
type Spacer struct {
	head *regexp.Regexp
	tail *regexp.Regexp
}

// NewSpacer compiles the head and tail boundary patterns for opts.
func NewSpacer(opts SpacingOptions) *Spacer {
	opts = opts.Normalized()

	head := cjkGroup + `( *)(` + markdownTokens + `|\w+` + charClassAlternative(opts.EnglishLikeAfterCJK) + `|\*[^*])`
	tail := `(` + markdownTokens + `|\w+` + charClassAlternative(opts.EnglishLikeBeforeCJK) + `|[^*]\*)( *)` + cjkGroup

	return &Spacer{
		head: regexp.MustCompile(head),
		tail: regexp.MustCompile(tail),
	}
}

// Space collapses the gap at every CJK/English-like boundary of text to a
// single space, inserting one where none exists.
func (s *Spacer) Space(text string) string {
	text = s.head.ReplaceAllString(text, spacedReplacement)
	return s.tail.ReplaceAllString(text, spacedReplacement)
}

// Space is a convenience wrapper building a Spacer for a single call.
func Space(text string, opts SpacingOptions) string {
	return NewSpacer(opts).Space(text)
}

// charClassAlternative renders set as "|[...]" with every member escaped,
// or "" when the set is empty so the alternation stays well formed.
func charClassAlternative(set string) string {
	if set == "" {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("|[")
	for _, r := range set {
		if r == '-' {
			builder.WriteString(`\-`)
			continue
		}
		builder.WriteString(regexp.QuoteMeta(string(r)))
	}
	builder.WriteString("]")
	return builder.String()
}
