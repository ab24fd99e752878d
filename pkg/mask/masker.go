package mask

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// RegionFinder reports parsed code and HTML regions of a document.
type RegionFinder interface {
	Regions(src []byte) []mdast.Region
}

// span is one region found by a stage.
type span struct {
	kind       Kind
	start, end int
}

type stageFunc func(m *Masker, text string) []span

// stages run in this order; each sees the previous stage's output.
var stages = []stageFunc{
	frontMatterStage,
	parsedStage,
	mathBlockStage,
	imageStage,
	wikiLinkStage,
	linkStage,
	tagStage,
	inlineMathStage,
}

// Masker replaces ignore regions with placeholder tokens. It is safe for
// concurrent use when its RegionFinder is.
type Masker struct {
	finder  RegionFinder
	enabled map[Kind]bool
}

// New builds a Masker for kinds, or for AllKinds when none are given. A nil
// finder disables the parsed stage, leaving code and HTML unmasked.
func New(finder RegionFinder, kinds ...Kind) *Masker {
	if len(kinds) == 0 {
		kinds = AllKinds()
	}

	enabled := make(map[Kind]bool, len(kinds))
	for _, kind := range kinds {
		enabled[kind] = true
	}

	return &Masker{finder: finder, enabled: enabled}
}

// Masked is a masked document together with what it takes to undo the masking.
type Masked struct {
	// Text is the document with every ignore region replaced by its token.
	Text string

	stages [][]replacement
}

type replacement struct {
	token string
	value string
}

// Mask runs every stage over text.
func (m *Masker) Mask(text string) *Masked {
	masked := &Masked{Text: text}
	index := 0

	for _, stage := range stages {
		spans := m.filter(stage(m, masked.Text))
		if len(spans) == 0 {
			continue
		}

		var builder strings.Builder
		builder.Grow(len(masked.Text))
		reps := make([]replacement, 0, len(spans))
		cursor := 0

		for _, sp := range spans {
			token := sp.kind.Token(index)
			index++
			reps = append(reps, replacement{token: token, value: masked.Text[sp.start:sp.end]})
			builder.WriteString(masked.Text[cursor:sp.start])
			builder.WriteString(token)
			cursor = sp.end
		}
		builder.WriteString(masked.Text[cursor:])

		masked.Text = builder.String()
		masked.stages = append(masked.stages, reps)
	}

	return masked
}

// filter drops spans of disabled kinds, empty spans and spans overlapping
// an earlier one, and returns the rest in document order.
func (m *Masker) filter(spans []span) []span {
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	kept := spans[:0]
	cursor := 0
	for _, sp := range spans {
		if !m.enabled[sp.kind] || sp.end <= sp.start || sp.start < cursor {
			continue
		}
		kept = append(kept, sp)
		cursor = sp.end
	}
	return kept
}

// Len returns the number of masked regions.
func (m *Masked) Len() int {
	total := 0
	for _, reps := range m.stages {
		total += len(reps)
	}
	return total
}

// Restore replaces tokens in text with the regions they stand for, last
// stage first. Tokens the caller dropped are skipped.
func (m *Masked) Restore(text string) string {
	for i := len(m.stages) - 1; i >= 0; i-- {
		for _, rep := range m.stages[i] {
			text = strings.Replace(text, rep.token, rep.value, 1)
		}
	}
	return text
}

var anyTokenPattern = regexp.MustCompile(tokenPattern(AllKinds()...))

// ContainsToken reports whether text already holds a placeholder token,
// in which case masking it could not be undone reliably.
func ContainsToken(text string) bool {
	return strings.Contains(text, tokenSuffix) && anyTokenPattern.MatchString(text)
}
