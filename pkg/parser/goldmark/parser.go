// Package goldmark answers the spacing pipeline's questions about Markdown
// structure using the goldmark parser: where emphasis spans start and end,
// and which byte ranges hold code or HTML that must not be touched.
package goldmark

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser wraps a configured goldmark instance. It is safe for concurrent use.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string) *Parser {
	f := flavorOrDefault(flavor)
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse builds a FileSnapshot for content. The content is copied so later
// edits by the caller do not leak into the snapshot.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	return mdast.NewFileSnapshot(path, copyContent(content)), nil
}

// EmphasisRanges returns the source ranges, delimiters included, of every
// emphasis node of kind in text. Nodes whose delimiters cannot be located
// exactly in the source are left out.
func (p *Parser) EmphasisRanges(text string, kind mdast.NodeKind) []mdast.SourceRange {
	level := kind.MarkerLength()
	if level == 0 {
		return nil
	}

	src := []byte(text)
	var ranges []mdast.SourceRange

	walk(p.parse(src), func(node ast.Node) ast.WalkStatus {
		emphasis, ok := node.(*ast.Emphasis)
		if !ok || emphasis.Level != level {
			return ast.WalkContinue
		}
		if r, ok := emphasisRange(emphasis, src); ok {
			ranges = append(ranges, r)
		}
		return ast.WalkContinue
	})

	return ranges
}

func (p *Parser) parse(src []byte) ast.Node {
	return p.md.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))
}

// walk visits nodes in document order on entry.
func walk(root ast.Node, visit func(ast.Node) ast.WalkStatus) {
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		return visit(node), nil
	})
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithBlockParsers(newFenceBoundsParser())),
	}

	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	return goldmark.New(opts...)
}

func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
