package transform

import (
	"github.com/dshills/mathedit/internal/formula"
)

// Style commands. Each one resolves a selection run to a single target
// node (consolidating multi-node runs into a Group first), then either
// modifies an existing wrapper of the requested kind or wraps the
// target in a new one.
//
// Id policy, applied uniformly: the node being wrapped or unwrapped
// keeps its id; every newly synthesized structural node (Group or
// style wrapper) gets a fresh id. Toggling or recoloring an existing
// wrapper keeps the wrapper's id.
//
// All commands return the new document plus the id of the wrapper that
// now carries the style. A "" id means the selection was stale and the
// document is returned unchanged.

// ApplyColor colors the selection. If the target or its parent already
// is a Color, that wrapper is recolored in place.
func ApplyColor(doc *formula.Document, run []formula.NodeID, color string) (*formula.Document, formula.NodeID) {
	if c, ok := existingWrapper[*formula.Color](doc, run); ok {
		out := ReplaceNodes(doc, func(n Node) Node {
			if n == Node(c) {
				return &formula.Color{ID: c.ID, Color: color, Body: c.Body}
			}
			return n
		})
		return out, c.ID
	}
	return wrapSelection(doc, run, func(target Node) (Node, formula.NodeID) {
		w := formula.NewColor(color, target)
		return w, w.ID
	})
}

// ApplyBox boxes the selection. An existing Box on the target or its
// parent has its border recolored instead of being double-wrapped.
func ApplyBox(doc *formula.Document, run []formula.NodeID, borderColor string) (*formula.Document, formula.NodeID) {
	if b, ok := existingWrapper[*formula.Box](doc, run); ok {
		out := ReplaceNodes(doc, func(n Node) Node {
			if n == Node(b) {
				return &formula.Box{ID: b.ID, BorderColor: borderColor, Body: b.Body}
			}
			return n
		})
		return out, b.ID
	}
	return wrapSelection(doc, run, func(target Node) (Node, formula.NodeID) {
		w := formula.NewBox(borderColor, target)
		return w, w.ID
	})
}

// ToggleBrace braces the selection with the given orientation. An
// existing Brace on the target or its parent switches orientation and
// keeps its id.
func ToggleBrace(doc *formula.Document, run []formula.NodeID, over bool) (*formula.Document, formula.NodeID) {
	if b, ok := existingWrapper[*formula.Brace](doc, run); ok {
		out := ReplaceNodes(doc, func(n Node) Node {
			if n == Node(b) {
				return &formula.Brace{ID: b.ID, Over: over, Body: b.Body}
			}
			return n
		})
		return out, b.ID
	}
	return wrapSelection(doc, run, func(target Node) (Node, formula.NodeID) {
		w := formula.NewBrace(over, target)
		return w, w.ID
	})
}

// ApplyStrikethrough strikes the selection. A target already struck is
// left as is.
func ApplyStrikethrough(doc *formula.Document, run []formula.NodeID) (*formula.Document, formula.NodeID) {
	if s, ok := existingWrapper[*formula.Strikethrough](doc, run); ok {
		return doc, s.ID
	}
	return wrapSelection(doc, run, func(target Node) (Node, formula.NodeID) {
		w := formula.NewStrikethrough(target)
		return w, w.ID
	})
}

// RemoveStyle unwraps the style node with the given id, putting its
// body back in its place. A multi-node body is kept together in a
// fresh Group so the parent gains exactly one child. Non-wrapper or
// unknown ids are a no-op.
func RemoveStyle(doc *formula.Document, id formula.NodeID) *formula.Document {
	node, ok := doc.FindNode(id)
	if !ok {
		return doc
	}
	var body []Node
	switch t := node.(type) {
	case *formula.Color:
		body = t.Body
	case *formula.Box:
		body = t.Body
	case *formula.Brace:
		body = t.Body
	case *formula.Strikethrough:
		body = t.Body
	default:
		return doc
	}
	return ReplaceNodes(doc, func(n Node) Node {
		if n != node {
			return n
		}
		if len(body) == 1 {
			return body[0]
		}
		return formula.NewGroup(body...)
	})
}

// existingWrapper finds a wrapper of type W to modify in place: the
// selection's sole node itself, or the direct parent of the
// selection's first node.
func existingWrapper[W Node](doc *formula.Document, run []formula.NodeID) (W, bool) {
	var zero W
	if len(run) == 0 {
		return zero, false
	}
	if len(run) == 1 {
		if node, ok := doc.FindNode(run[0]); ok {
			if w, ok := node.(W); ok {
				return w, true
			}
		}
	}
	parent, ok := doc.Parent(run[0])
	if !ok || parent == nil {
		return zero, false
	}
	if w, ok := parent.(W); ok {
		return w, true
	}
	return zero, false
}

// wrapSelection consolidates the run to one target node and replaces
// that target with wrap(target).
func wrapSelection(doc *formula.Document, run []formula.NodeID, wrap func(Node) (Node, formula.NodeID)) (*formula.Document, formula.NodeID) {
	if len(run) == 0 {
		return doc, ""
	}

	targetID := run[0]
	if len(run) > 1 {
		next, gids := ConsolidateGroups(doc, [][]formula.NodeID{run})
		if gids[0] == "" {
			return doc, ""
		}
		doc = next
		targetID = gids[0]
	}

	target, ok := doc.FindNode(targetID)
	if !ok {
		return doc, ""
	}
	replacement, wrapperID := wrap(target)
	out := ReplaceNodes(doc, func(n Node) Node {
		if n == target {
			return replacement
		}
		return n
	})
	return out, wrapperID
}
