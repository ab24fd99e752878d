package cjk

// Default punctuation sets treated as English-like next to CJK text.
const (
	DefaultEnglishLikeAfterCJK  = `-+'"([¥$`
	DefaultEnglishLikeBeforeCJK = `-+;:'"°%$)]`
)

// SpacingOptions configures which non-letter characters count as
// English-like when they touch a CJK character.
//
// Whitespace inside either set is ignored. An empty set disables the
// extension, leaving only letters, digits and underscores.
type SpacingOptions struct {
	// EnglishLikeAfterCJK lists characters that get a space when they
	// immediately follow a CJK character.
	EnglishLikeAfterCJK string

	// EnglishLikeBeforeCJK lists characters that get a space when they
	// immediately precede a CJK character.
	EnglishLikeBeforeCJK string
}

// DefaultOptions returns the default punctuation sets.
func DefaultOptions() SpacingOptions {
	return SpacingOptions{
		EnglishLikeAfterCJK:  DefaultEnglishLikeAfterCJK,
		EnglishLikeBeforeCJK: DefaultEnglishLikeBeforeCJK,
	}
}

// Normalized returns a copy with whitespace stripped from both sets.
func (o SpacingOptions) Normalized() SpacingOptions {
	return SpacingOptions{
		EnglishLikeAfterCJK:  stripSpace(o.EnglishLikeAfterCJK),
		EnglishLikeBeforeCJK: stripSpace(o.EnglishLikeBeforeCJK),
	}
}

func (o SpacingOptions) isEnglishLikeAfter(r rune) bool {
	return isEnglishOrNumber(r) || containsRune(o.EnglishLikeAfterCJK, r) || isEmphasisTrigger(r)
}

func (o SpacingOptions) isEnglishLikeBefore(r rune) bool {
	return isEnglishOrNumber(r) || containsRune(o.EnglishLikeBeforeCJK, r) || isEmphasisTrigger(r)
}

func containsRune(set string, r rune) bool {
	if r == 0 {
		return false
	}
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}
