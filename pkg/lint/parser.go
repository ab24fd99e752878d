package lint

import (
	"context"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// Parser is the Markdown backend the engine and its rules query.
//
// Implementations (parser/goldmark) must be deterministic for a given
// (flavor, content) pair and safe for concurrent use.
type Parser interface {
	// Parse builds the FileSnapshot for content. path is only recorded.
	Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error)

	// EmphasisRanges returns the byte ranges of the emphasis (NodeEmphasis)
	// or strong (NodeStrong) nodes of text, markers included.
	EmphasisRanges(text string, kind mdast.NodeKind) []mdast.SourceRange

	// Regions returns the code and HTML regions of src.
	Regions(src []byte) []mdast.Region
}
