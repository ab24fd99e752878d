package goldmark

import (
	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/cjkspacing/pkg/mdast"
)

// emphasisRange locates an emphasis node's delimiters in src. goldmark does
// not record delimiter positions, so they are derived from the outermost
// text segments and then checked against the source bytes.
func emphasisRange(emphasis *ast.Emphasis, src []byte) (mdast.SourceRange, bool) {
	start := inlineStart(emphasis, src)
	end := inlineStop(emphasis, src)
	level := emphasis.Level

	if start < 0 || end > len(src) || end-start < 2*level {
		return mdast.SourceRange{}, false
	}

	marker := src[start]
	if marker != '*' && marker != '_' {
		return mdast.SourceRange{}, false
	}
	for i := range level {
		if src[start+i] != marker || src[end-1-i] != marker {
			return mdast.SourceRange{}, false
		}
	}

	return mdast.SourceRange{StartOffset: start, EndOffset: end}, true
}

// inlineStart returns the source offset where an inline node begins, or -1.
func inlineStart(node ast.Node, src []byte) int {
	if node == nil {
		return -1
	}

	switch n := node.(type) {
	case *ast.Text:
		return n.Segment.Start
	case *ast.Emphasis:
		inner := inlineStart(n.FirstChild(), src)
		if inner < 0 {
			return -1
		}
		return inner - n.Level
	case *ast.CodeSpan:
		r, ok := codeSpanRange(n, src)
		if !ok {
			return -1
		}
		return r.StartOffset
	case *ast.RawHTML:
		if n.Segments.Len() == 0 {
			return -1
		}
		return n.Segments.At(0).Start
	default:
		return -1
	}
}

// inlineStop returns the source offset just past an inline node, or -1.
func inlineStop(node ast.Node, src []byte) int {
	if node == nil {
		return -1
	}

	switch n := node.(type) {
	case *ast.Text:
		return n.Segment.Stop
	case *ast.Emphasis:
		inner := inlineStop(n.LastChild(), src)
		if inner < 0 {
			return -1
		}
		return inner + n.Level
	case *ast.CodeSpan:
		r, ok := codeSpanRange(n, src)
		if !ok {
			return -1
		}
		return r.EndOffset
	case *ast.RawHTML:
		if n.Segments.Len() == 0 {
			return -1
		}
		return n.Segments.At(n.Segments.Len() - 1).Stop
	default:
		return -1
	}
}

// codeSpanRange widens a code span's content segments to include the
// backtick fences and the single padding space goldmark strips.
func codeSpanRange(codeSpan *ast.CodeSpan, src []byte) (mdast.SourceRange, bool) {
	first, ok := codeSpan.FirstChild().(*ast.Text)
	if !ok {
		return mdast.SourceRange{}, false
	}
	last, ok := codeSpan.LastChild().(*ast.Text)
	if !ok {
		return mdast.SourceRange{}, false
	}

	start := first.Segment.Start
	if start > 0 && src[start-1] == ' ' {
		start--
	}
	opening := 0
	for start > 0 && src[start-1] == '`' {
		start--
		opening++
	}

	end := last.Segment.Stop
	if end < len(src) && src[end] == ' ' {
		end++
	}
	closing := 0
	for end < len(src) && src[end] == '`' {
		end++
		closing++
	}

	if opening == 0 || closing == 0 {
		return mdast.SourceRange{}, false
	}

	return mdast.SourceRange{StartOffset: start, EndOffset: end}, true
}
