package transform

import (
	"fmt"

	"github.com/dshills/mathedit/internal/formula"
)

// SequentialIDs returns a generator of ids prefix1, prefix2, ...
// Useful where ids must be stable across runs over the same input,
// e.g. the CLI and tests.
func SequentialIDs(prefix string) func() formula.NodeID {
	n := 0
	return func() formula.NodeID {
		n++
		return formula.NodeID(fmt.Sprintf("%s%d", prefix, n))
	}
}

// AssignIDs relabels every id-bearing node with ids from next, in
// depth-first document order. The tree shape is unchanged.
func AssignIDs(doc *formula.Document, next func() formula.NodeID) *formula.Document {
	// ReplaceNodes visits bottom-up, which would number leaves before
	// parents; walk top-down instead so ids read in document order.
	nodes := doc.Nodes()
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = relabel(n, next)
	}
	return formula.NewDocument(out...)
}

func relabel(n Node, next func() formula.NodeID) Node {
	switch t := n.(type) {
	case *formula.Symbol:
		return &formula.Symbol{ID: next(), Value: t.Value}
	case *formula.Op:
		return &formula.Op{ID: next(), Operator: t.Operator}
	case *formula.Space:
		return &formula.Space{ID: next(), Text: t.Text}
	case *formula.Variable:
		return &formula.Variable{ID: next(), Source: t.Source}
	case *formula.NewLine, *formula.AlignMarker:
		return n
	case *formula.Text:
		return &formula.Text{ID: next(), Body: relabelSeq(t.Body, next)}
	case *formula.Fraction:
		id := next()
		return &formula.Fraction{ID: id, Numerator: relabelSeq(t.Numerator, next), Denominator: relabelSeq(t.Denominator, next)}
	case *formula.Script:
		id := next()
		return &formula.Script{ID: id, Base: relabel(t.Base, next), Sub: relabelSeq(t.Sub, next), Sup: relabelSeq(t.Sup, next)}
	case *formula.Root:
		return &formula.Root{ID: next(), Body: relabelSeq(t.Body, next)}
	case *formula.Group:
		return &formula.Group{ID: next(), Body: relabelSeq(t.Body, next)}
	case *formula.Array:
		id := next()
		rows := make([][]Node, len(t.Rows))
		for i, row := range t.Rows {
			rows[i] = relabelSeq(row, next)
		}
		return &formula.Array{ID: id, Rows: rows}
	case *formula.Aligned:
		return &formula.Aligned{ID: next(), Cells: relabelSeq(t.Cells, next)}
	case *formula.Color:
		return &formula.Color{ID: next(), Color: t.Color, Body: relabelSeq(t.Body, next)}
	case *formula.Box:
		return &formula.Box{ID: next(), BorderColor: t.BorderColor, Body: relabelSeq(t.Body, next)}
	case *formula.Brace:
		return &formula.Brace{ID: next(), Over: t.Over, Body: relabelSeq(t.Body, next)}
	case *formula.Strikethrough:
		return &formula.Strikethrough{ID: next(), Body: relabelSeq(t.Body, next)}
	default:
		panic(fmt.Sprintf("transform: unhandled node variant %T", n))
	}
}

func relabelSeq(nodes []Node, next func() formula.NodeID) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = relabel(n, next)
	}
	return out
}
