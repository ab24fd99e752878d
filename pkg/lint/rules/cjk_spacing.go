package rules

import (
	"fmt"

	"github.com/yaklabco/cjkspacing/internal/logging"
	"github.com/yaklabco/cjkspacing/pkg/cjk"
	"github.com/yaklabco/cjkspacing/pkg/fix"
	"github.com/yaklabco/cjkspacing/pkg/lint"
	"github.com/yaklabco/cjkspacing/pkg/mask"
	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// Option keys for CJK001.
const (
	OptionEnglishLikeAfterCJK  = "english-like-after-cjk"
	OptionEnglishLikeBeforeCJK = "english-like-before-cjk"
)

// Diagnostic messages for CJK001.
const (
	msgMissingSpace    = "Missing space between CJK and Latin text"
	msgUnexpectedSpace = "Unexpected space next to bold text"
	msgCollapseSpace   = "Spacing between CJK and Latin text should be a single space"
)

// CJKSpacingRule requires a single space between CJK text and Latin
// letters, numbers or English-like punctuation. Code, math, HTML, links,
// wiki-links, tags, images and front matter are left alone.
type CJKSpacingRule struct {
	lint.BaseRule
}

// NewCJKSpacingRule creates the CJK001 rule.
func NewCJKSpacingRule() *CJKSpacingRule {
	return &CJKSpacingRule{
		BaseRule: lint.NewBaseRule(
			"CJK001",
			"space-between-cjk-and-latin",
			"Require a single space between Chinese, Japanese or Korean text and English words or numbers",
			true,
		),
	}
}

// DefaultOptions returns the default English-like punctuation sets.
func (r *CJKSpacingRule) DefaultOptions() map[string]any {
	return map[string]any{
		OptionEnglishLikeAfterCJK:  cjk.DefaultEnglishLikeAfterCJK,
		OptionEnglishLikeBeforeCJK: cjk.DefaultEnglishLikeBeforeCJK,
	}
}

// Apply spaces the whole document and reports one diagnostic per changed gap.
func (r *CJKSpacingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Content) == 0 {
		return nil, nil
	}

	text := string(ctx.File.Content)
	if mask.ContainsToken(text) || cjk.ContainsPlaceholder(text) {
		ctx.Logger().Debug("document contains placeholder text, skipping",
			logging.FieldRule, r.ID(),
			logging.FieldPath, ctx.File.Path)
		return nil, nil
	}

	opts := cjk.SpacingOptions{
		EnglishLikeAfterCJK:  ctx.OptionString(OptionEnglishLikeAfterCJK, cjk.DefaultEnglishLikeAfterCJK),
		EnglishLikeBeforeCJK: ctx.OptionString(OptionEnglishLikeBeforeCJK, cjk.DefaultEnglishLikeBeforeCJK),
	}

	spaced := Format(text, opts, ctx.Parser)
	if spaced == text {
		return nil, nil
	}

	edits, err := fix.DeriveEdits(text, spaced)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.ID(), err)
	}

	diags := make([]lint.Diagnostic, 0, len(edits))
	for _, edit := range edits {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		message, suggestion := describeEdit(edit)
		at := mdast.SourceRange{StartOffset: edit.StartOffset, EndOffset: edit.EndOffset}
		diags = append(diags, lint.NewDiagnosticAt(r, ctx.File, at, message).
			WithSuggestion(suggestion).
			WithEdit(edit).
			Build())
	}

	return diags, nil
}

// Analyzer is what Format needs from the Markdown backend.
type Analyzer interface {
	cjk.EmphasisLocator
	mask.RegionFinder
}

// Format masks the ignore regions of text, spaces what remains and
// restores the masked regions. analyzer may be nil, in which case only the
// pattern-based ignore regions are honored.
func Format(text string, opts cjk.SpacingOptions, analyzer Analyzer) string {
	var (
		finder  mask.RegionFinder
		locator cjk.EmphasisLocator
	)
	if analyzer != nil {
		finder, locator = analyzer, analyzer
	}

	masked := mask.New(finder).Mask(text)
	return masked.Restore(cjk.New(opts, locator).Apply(masked.Text))
}

func describeEdit(edit fix.TextEdit) (string, string) {
	switch {
	case edit.IsInsertion():
		return msgMissingSpace, "Insert a space"
	case edit.IsDeletion():
		return msgUnexpectedSpace, "Remove the space"
	default:
		return msgCollapseSpace, "Replace with a single space"
	}
}
