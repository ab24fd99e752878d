// Package mask hides Markdown regions that the spacing transform must not
// touch behind fixed placeholder tokens, and puts them back afterwards.
//
// Every masked region gets its own token, "{<KIND>_PLACEHOLDER_<n>}", with n
// counting regions across the whole document. Regions are masked stage by
// stage, each stage working on the output of the previous one, and restored
// in reverse stage order so values holding earlier tokens unfold in turn.
package mask

import (
	"strconv"
	"strings"
)

const tokenSuffix = "_PLACEHOLDER_"

// Kind identifies a class of masked region.
type Kind int

// Region kinds in masking order.
const (
	KindFrontMatter Kind = iota
	KindCodeBlock
	KindInlineCode
	KindHTML
	KindMathBlock
	KindImage
	KindWikiLink
	KindLink
	KindTag
	KindInlineMath
)

var kindLabels = map[Kind]string{
	KindFrontMatter: "FRONT_MATTER",
	KindCodeBlock:   "CODE_BLOCK",
	KindInlineCode:  "INLINE_CODE",
	KindHTML:        "HTML",
	KindMathBlock:   "MATH_BLOCK",
	KindImage:       "IMAGE",
	KindWikiLink:    "WIKI_LINK",
	KindLink:        "LINK",
	KindTag:         "TAG",
	KindInlineMath:  "INLINE_MATH",
}

var kindNames = map[Kind]string{
	KindFrontMatter: "front-matter",
	KindCodeBlock:   "code-block",
	KindInlineCode:  "inline-code",
	KindHTML:        "html",
	KindMathBlock:   "math-block",
	KindImage:       "image",
	KindWikiLink:    "wiki-link",
	KindLink:        "link",
	KindTag:         "tag",
	KindInlineMath:  "inline-math",
}

// AllKinds returns every kind in masking order.
func AllKinds() []Kind {
	return []Kind{
		KindFrontMatter,
		KindCodeBlock,
		KindInlineCode,
		KindHTML,
		KindMathBlock,
		KindImage,
		KindWikiLink,
		KindLink,
		KindTag,
		KindInlineMath,
	}
}

// Token returns the placeholder standing in for the index-th masked region
// of a document, e.g. "{LINK_PLACEHOLDER_3}".
func (k Kind) Token(index int) string {
	return "{" + kindLabels[k] + tokenSuffix + strconv.Itoa(index) + "}"
}

// tokenPattern matches the placeholder of any region of the given kinds.
func tokenPattern(kinds ...Kind) string {
	labels := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		labels = append(labels, kindLabels[kind])
	}
	return `\{(?:` + strings.Join(labels, "|") + `)` + tokenSuffix + `\d+\}`
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind looks a kind up by its String name.
func ParseKind(name string) (Kind, bool) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, true
		}
	}
	return 0, false
}

// ExceptionPattern returns a regular expression matching the tokens of the
// inline kinds that still take a space from adjacent CJK text: links, inline
// math, inline code and wiki-links.
func ExceptionPattern() string {
	return tokenPattern(KindLink, KindInlineMath, KindInlineCode, KindWikiLink)
}
