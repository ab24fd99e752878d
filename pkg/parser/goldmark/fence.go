package goldmark

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Node attributes holding the source bounds of a fenced code block.
const (
	attrFenceStart = "cjkspacing-fence-start"
	attrFenceStop  = "cjkspacing-fence-stop"
)

// fencePriority runs fenceBoundsParser just ahead of goldmark's own fenced
// code parser (700), so that parser never opens a block itself.
const fencePriority = 699

// fenceBoundsParser wraps goldmark's fenced code block parser and records
// where each block's opening fence starts and where its last line ends.
// FencedCodeBlock.Lines covers the content only, without fences or info.
type fenceBoundsParser struct {
	parser.BlockParser
}

func newFenceBoundsParser() util.PrioritizedValue {
	return util.Prioritized(fenceBoundsParser{parser.NewFencedCodeBlockParser()}, fencePriority)
}

func (b fenceBoundsParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	_, segment := reader.PeekLine()
	start := segment.Start - segment.Padding + max(pc.BlockOffset(), 0)

	node, state := b.BlockParser.Open(parent, reader, pc)
	if node != nil {
		node.SetAttributeString(attrFenceStart, max(start, segment.Start))
		node.SetAttributeString(attrFenceStop, segment.Stop)
	}
	return node, state
}

// Continue extends the recorded stop over every line the block consumes,
// the closing fence included.
func (b fenceBoundsParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	_, segment := reader.PeekLine()
	state := b.BlockParser.Continue(node, reader, pc)
	node.SetAttributeString(attrFenceStop, segment.Stop)
	return state
}

// fenceRange returns the bounds recorded by fenceBoundsParser.
func fenceRange(node ast.Node) (int, int, bool) {
	startValue, ok := node.AttributeString(attrFenceStart)
	if !ok {
		return 0, 0, false
	}
	stopValue, ok := node.AttributeString(attrFenceStop)
	if !ok {
		return 0, 0, false
	}

	start, startOK := startValue.(int)
	stop, stopOK := stopValue.(int)
	return start, stop, startOK && stopOK
}
