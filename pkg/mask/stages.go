package mask

import (
	"regexp"
	"strings"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

var (
	mathBlockPattern = regexp.MustCompile(`(?s)\$\$.+?\$\$`)
	wikiEmbedPattern = regexp.MustCompile(`!\[\[.*?\]\]`)
	imagePattern     = regexp.MustCompile(`!\[[^\]\n]*\](?:\([^)\n]*\)|\[[^\]\n]*\])`)
	wikiLinkPattern  = regexp.MustCompile(`\[\[.*?\]\]`)
	linkPattern      = regexp.MustCompile(
		`\[[^\[\]\n]*\]\([^)\n]*\)` +
			`|\[[^\[\]\n]*\]\[[^\[\]\n]*\]` +
			`|<[A-Za-z][A-Za-z0-9+.\-]{1,31}:[^<>\s]*>` +
			`|https?://[A-Za-z0-9\-._~:/?#\[\]@!$&'+,;=%]+`)
	tagPattern        = regexp.MustCompile(`(?:^|\s)(#[^\s#{}\[\]()<>"'.,;:!?]+)`)
	inlineMathPattern = regexp.MustCompile(`\$[^$\s](?:[^$\n]*?[^$\s])?\$`)
)

func frontMatterStage(_ *Masker, text string) []span {
	end, ok := frontMatterEnd(text)
	if !ok {
		return nil
	}
	return []span{{kind: KindFrontMatter, start: 0, end: end}}
}

// frontMatterEnd finds the end of a YAML block opened by "---" on the
// first line and closed by "---" or "..." on a later line.
func frontMatterEnd(text string) (int, bool) {
	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(first, " \t\r") != "---" {
		return 0, false
	}

	offset := len(first) + 1
	for rest != "" {
		line, tail, more := strings.Cut(rest, "\n")
		trimmed := strings.TrimRight(line, " \t\r")
		if trimmed == "---" || trimmed == "..." {
			return offset + len(strings.TrimRight(line, "\r")), true
		}
		if !more {
			break
		}
		offset += len(line) + 1
		rest = tail
	}

	return 0, false
}

func parsedStage(m *Masker, text string) []span {
	if m.finder == nil {
		return nil
	}

	var spans []span
	for _, region := range m.finder.Regions([]byte(text)) {
		kind, ok := kindOfNode(region.Kind)
		if !ok {
			continue
		}
		spans = append(spans, span{kind: kind, start: region.Range.StartOffset, end: region.Range.EndOffset})
	}
	return spans
}

func mathBlockStage(_ *Masker, text string) []span {
	return patternSpans(text, mathBlockPattern, KindMathBlock)
}

func imageStage(_ *Masker, text string) []span {
	spans := patternSpans(text, wikiEmbedPattern, KindImage)
	return append(spans, patternSpans(text, imagePattern, KindImage)...)
}

func wikiLinkStage(_ *Masker, text string) []span {
	return patternSpans(text, wikiLinkPattern, KindWikiLink)
}

func linkStage(_ *Masker, text string) []span {
	return patternSpans(text, linkPattern, KindLink)
}

// tagStage masks "#tag" words that start a line or follow whitespace.
func tagStage(_ *Masker, text string) []span {
	var spans []span
	for _, match := range tagPattern.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, span{kind: KindTag, start: match[2], end: match[3]})
	}
	return spans
}

// inlineMathStage masks $...$ spans whose dollars hug their content, are
// not escaped, and are not followed by a digit.
func inlineMathStage(_ *Masker, text string) []span {
	var spans []span
	for _, loc := range inlineMathPattern.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] == '\\' {
			continue
		}
		if loc[1] < len(text) && text[loc[1]] >= '0' && text[loc[1]] <= '9' {
			continue
		}
		spans = append(spans, span{kind: KindInlineMath, start: loc[0], end: loc[1]})
	}
	return spans
}

func patternSpans(text string, pattern *regexp.Regexp, kind Kind) []span {
	var spans []span
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		spans = append(spans, span{kind: kind, start: loc[0], end: loc[1]})
	}
	return spans
}

// kindOfNode maps parsed node kinds onto mask kinds.
func kindOfNode(kind mdast.NodeKind) (Kind, bool) {
	switch kind {
	case mdast.NodeCodeSpan:
		return KindInlineCode, true
	case mdast.NodeCodeBlock:
		return KindCodeBlock, true
	case mdast.NodeHTMLBlock, mdast.NodeHTMLInline:
		return KindHTML, true
	default:
		return 0, false
	}
}
