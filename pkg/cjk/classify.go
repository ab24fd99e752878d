package cjk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	cjkPunctuation = "。！？；：、，"

	// emphasisTriggers are brackets and quotes that count as English-like
	// when they sit at the edge of a bold span.
	emphasisTriggers = `()（）"“”「」【】`
)

// IsCJK reports whether r belongs to the Han, Katakana, Hiragana or Hangul script.
func IsCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Katakana, unicode.Hiragana, unicode.Hangul)
}

// IsCJKPunctuation reports whether r is one of the sentence punctuation marks 。！？；：、，.
func IsCJKPunctuation(r rune) bool {
	return r != 0 && strings.ContainsRune(cjkPunctuation, r)
}

func isEnglishOrNumber(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isEmphasisTrigger(r rune) bool {
	return r != 0 && strings.ContainsRune(emphasisTriggers, r)
}

func isSpacing(b byte) bool {
	return b == ' ' || b == '\t'
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}

// firstNonSpace returns the first non-whitespace rune of s, or 0.
func firstNonSpace(s string) rune {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return r
		}
	}
	return 0
}

// lastNonSpace returns the last non-whitespace rune of s, or 0.
func lastNonSpace(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if !unicode.IsSpace(r) {
			return r
		}
		s = s[:len(s)-size]
	}
	return 0
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
