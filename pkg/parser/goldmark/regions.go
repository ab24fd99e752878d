package goldmark

import (
	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// Regions returns the code spans, code blocks, HTML blocks and inline HTML
// of src in document order. Fenced code blocks span their fences and info
// string. Block ranges exclude their trailing newline.
func (p *Parser) Regions(src []byte) []mdast.Region {
	var regions []mdast.Region

	add := func(kind mdast.NodeKind, start, end int) {
		end = trimNewline(src, start, end)
		if start < 0 || end <= start || end > len(src) {
			return
		}
		regions = append(regions, mdast.Region{
			Kind:  kind,
			Range: mdast.SourceRange{StartOffset: start, EndOffset: end},
		})
	}

	walk(p.parse(src), func(node ast.Node) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.CodeSpan:
			if r, ok := codeSpanRange(n, src); ok {
				add(mdast.NodeCodeSpan, r.StartOffset, r.EndOffset)
			}
			return ast.WalkSkipChildren

		case *ast.FencedCodeBlock:
			if start, end, ok := fenceRange(n); ok {
				add(mdast.NodeCodeBlock, start, end)
			}
			return ast.WalkSkipChildren

		case *ast.CodeBlock:
			if start, end, ok := linesRange(n); ok {
				add(mdast.NodeCodeBlock, start, end)
			}
			return ast.WalkSkipChildren

		case *ast.HTMLBlock:
			start, end, ok := linesRange(n)
			if n.HasClosure() {
				closure := n.ClosureLine
				if !ok {
					start = closure.Start
				}
				end, ok = closure.Stop, true
			}
			if ok {
				add(mdast.NodeHTMLBlock, start, end)
			}
			return ast.WalkSkipChildren

		case *ast.RawHTML:
			if n.Segments.Len() > 0 {
				add(mdast.NodeHTMLInline, n.Segments.At(0).Start, n.Segments.At(n.Segments.Len()-1).Stop)
			}
			return ast.WalkSkipChildren
		}

		return ast.WalkContinue
	})

	return regions
}

// linesRange spans a block node's raw lines.
func linesRange(node ast.Node) (int, int, bool) {
	lines := node.Lines()
	if lines == nil || lines.Len() == 0 {
		return 0, 0, false
	}
	return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
}

func trimNewline(src []byte, start, end int) int {
	for end > start && end <= len(src) && (src[end-1] == '\n' || src[end-1] == '\r') {
		end--
	}
	return end
}
