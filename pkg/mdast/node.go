package mdast

// NodeKind classifies the Markdown constructs the spacing pipeline queries
// the parser for.
type NodeKind uint16

const (
	// NodeEmphasis is a single-marker emphasis span (*x* or _x_).
	NodeEmphasis NodeKind = iota + 1

	// NodeStrong is a double-marker emphasis span (**x** or __x__).
	NodeStrong

	NodeCodeSpan
	NodeCodeBlock
	NodeHTMLBlock
	NodeHTMLInline
)

// MarkerLength returns the delimiter length for emphasis kinds, or 0.
func (k NodeKind) MarkerLength() int {
	switch k {
	case NodeEmphasis:
		return 1
	case NodeStrong:
		return 2
	default:
		return 0
	}
}

func (k NodeKind) String() string {
	switch k {
	case NodeEmphasis:
		return "Emphasis"
	case NodeStrong:
		return "Strong"
	case NodeCodeSpan:
		return "CodeSpan"
	case NodeCodeBlock:
		return "CodeBlock"
	case NodeHTMLBlock:
		return "HTMLBlock"
	case NodeHTMLInline:
		return "HTMLInline"
	default:
		return "Unknown"
	}
}

// Region is a parsed construct located in the source.
type Region struct {
	Kind  NodeKind
	Range SourceRange
}
