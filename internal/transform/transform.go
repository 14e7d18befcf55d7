// Package transform rewrites formula documents. It provides two
// generic primitives, ReplaceNodes and ConsolidateGroups, plus the
// style commands built on top of them. Every function returns a new
// Document; inputs are never mutated, and subtrees untouched by a
// rewrite are shared with the input.
package transform

import (
	"fmt"

	"github.com/dshills/mathedit/internal/formula"
)

// Visitor receives a node whose children have already been rewritten
// and returns its replacement. Returning the node unchanged keeps it.
type Visitor func(formula.Node) formula.Node

// ReplaceNodes rewrites the document bottom-up: children first, then
// the visitor on each node with its rewritten children in place. An
// identity visitor yields a document observably equal to the input.
func ReplaceNodes(doc *formula.Document, visit Visitor) *formula.Document {
	nodes := doc.Nodes()
	out, changed := rewriteSeq(nodes, visit)
	if !changed {
		out = nodes
	}
	return formula.NewDocument(out...)
}

// rewriteSeq rewrites a node sequence. changed reports whether any
// element differs from the input; when false, callers should keep
// their original slice to preserve sharing.
func rewriteSeq(nodes []Node, visit Visitor) ([]Node, bool) {
	changed := false
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = rewriteNode(n, visit)
		if out[i] != n {
			changed = true
		}
	}
	return out, changed
}

// Node is a local alias to keep signatures readable.
type Node = formula.Node

// rewriteNode rebuilds one node with rewritten children, then applies
// the visitor. The type switch is exhaustive over the node union;
// an unknown variant means the grammar and this package have drifted
// apart, which is a programming error, not a recoverable one.
func rewriteNode(n Node, visit Visitor) Node {
	switch t := n.(type) {
	case *formula.Symbol, *formula.Op, *formula.Space, *formula.Variable,
		*formula.NewLine, *formula.AlignMarker:
		return visit(n)

	case *formula.Text:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Text{ID: t.ID, Body: body})
		}
		return visit(n)

	case *formula.Fraction:
		num, numChanged := rewriteSeq(t.Numerator, visit)
		den, denChanged := rewriteSeq(t.Denominator, visit)
		if numChanged || denChanged {
			return visit(&formula.Fraction{ID: t.ID, Numerator: num, Denominator: den})
		}
		return visit(n)

	case *formula.Script:
		base := rewriteNode(t.Base, visit)
		sub, subChanged := rewriteOptSeq(t.Sub, visit)
		sup, supChanged := rewriteOptSeq(t.Sup, visit)
		if base != t.Base || subChanged || supChanged {
			return visit(&formula.Script{ID: t.ID, Base: base, Sub: sub, Sup: sup})
		}
		return visit(n)

	case *formula.Root:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Root{ID: t.ID, Body: body})
		}
		return visit(n)

	case *formula.Group:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Group{ID: t.ID, Body: body})
		}
		return visit(n)

	case *formula.Array:
		rows := make([][]Node, len(t.Rows))
		changed := false
		for i, row := range t.Rows {
			out, rowChanged := rewriteSeq(row, visit)
			if rowChanged {
				changed = true
				rows[i] = out
			} else {
				rows[i] = row
			}
		}
		if changed {
			return visit(&formula.Array{ID: t.ID, Rows: rows})
		}
		return visit(n)

	case *formula.Aligned:
		if cells, changed := rewriteSeq(t.Cells, visit); changed {
			return visit(&formula.Aligned{ID: t.ID, Cells: cells})
		}
		return visit(n)

	case *formula.Color:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Color{ID: t.ID, Color: t.Color, Body: body})
		}
		return visit(n)

	case *formula.Box:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Box{ID: t.ID, BorderColor: t.BorderColor, Body: body})
		}
		return visit(n)

	case *formula.Brace:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Brace{ID: t.ID, Over: t.Over, Body: body})
		}
		return visit(n)

	case *formula.Strikethrough:
		if body, changed := rewriteSeq(t.Body, visit); changed {
			return visit(&formula.Strikethrough{ID: t.ID, Body: body})
		}
		return visit(n)

	default:
		panic(fmt.Sprintf("transform: unhandled node variant %T", n))
	}
}

// rewriteOptSeq is rewriteSeq for optional sequences: nil stays nil.
func rewriteOptSeq(nodes []Node, visit Visitor) ([]Node, bool) {
	if nodes == nil {
		return nil, false
	}
	return rewriteSeq(nodes, visit)
}
