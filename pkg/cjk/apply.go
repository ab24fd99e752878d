package cjk

import "github.com/yaklabco/cjkspacing/pkg/mdast"

// Transformer runs the full spacing pipeline. It holds no per-call state
// and is safe for concurrent use when its locator is.
type Transformer struct {
	opts    SpacingOptions
	spacer  *Spacer
	locator EmphasisLocator
}

// New builds a Transformer. locator may be nil, in which case underscore
// emphasis is not isolated and emphasis content is not re-spaced.
func New(opts SpacingOptions, locator EmphasisLocator) *Transformer {
	opts = opts.Normalized()
	return &Transformer{
		opts:    opts,
		spacer:  NewSpacer(opts),
		locator: locator,
	}
}

// Options returns the normalized options the transformer was built with.
func (t *Transformer) Options() SpacingOptions {
	return t.opts
}

// Apply returns text with CJK/English-like boundaries spaced.
func (t *Transformer) Apply(text string) string {
	masked, replacements := Isolate(text, t.locator)

	out := t.spacer.Space(masked)
	out = reinsertExceptionSpacing(out)
	out = Restore(out, replacements)

	out = spaceInsideEmphasis(out, t.locator, mdast.NodeEmphasis, t.spacer.Space)
	out = spaceInsideEmphasis(out, t.locator, mdast.NodeStrong, t.spacer.Space)

	return normalizeBoldSpacing(out, t.opts, t.locator)
}

// Apply runs the pipeline once with a throwaway Transformer.
func Apply(text string, opts SpacingOptions, locator EmphasisLocator) string {
	return New(opts, locator).Apply(text)
}
