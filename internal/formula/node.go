package formula

import (
	"strings"

	"github.com/google/uuid"
)

// Mode selects a serialization lens.
type Mode int

const (
	// ModeAST produces structural markup that round-trips through the
	// parser.
	ModeAST Mode = iota
	// ModeRender produces presentational markup whose addressable
	// leaves carry their node id.
	ModeRender
)

// NodeID identifies a node within one Document snapshot. Ids are
// unique per snapshot; a transformation may carry an id over to the
// node that is the same logical node after the edit.
type NodeID string

// NewID mints a fresh node id.
func NewID() NodeID {
	return NodeID(uuid.New().String())
}

// Node is one element of the formula tree. The union is closed: all
// implementations live in this package, and consumers dispatch with a
// type switch whose default branch panics.
type Node interface {
	// NodeID returns the node's id. NewLine and AlignMarker are the
	// only variants without an id; they return "".
	NodeID() NodeID

	// Children returns the ordered immediate sub-nodes. Leaves return
	// nil. Callers must not modify the returned slice.
	Children() []Node

	// Latex serializes the node in the given mode.
	Latex(mode Mode) string

	isNode()
}

// cssID wraps text in the id-tagging command used by ModeRender so the
// typesetting backend exposes the id on the rendered glyph.
func cssID(id NodeID, text string) string {
	return `\cssId{` + string(id) + `}{` + text + `}`
}

// joinLatex serializes nodes in order, separated by sep.
func joinLatex(nodes []Node, mode Mode, sep string) string {
	var b strings.Builder
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(n.Latex(mode))
	}
	return b.String()
}

// arg serializes a brace-delimited argument: "{" + nodes + "}" with
// the standard single-space join.
func arg(nodes []Node, mode Mode) string {
	return "{" + joinLatex(nodes, mode, " ") + "}"
}
