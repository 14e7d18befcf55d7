package transform

import (
	"github.com/dshills/mathedit/internal/formula"
)

// ConsolidateGroups replaces each selection run with a single
// fresh-id Group containing the selected nodes in order. A run is
// valid only if its ids are contiguous siblings, in order, within one
// child sequence of one parent (or at the document top level) at call
// time; invalid runs are skipped, which makes stale selections a no-op
// instead of tree corruption.
//
// The returned id slice is parallel to runs: the new Group's id for a
// consolidated run, "" for a skipped one.
func ConsolidateGroups(doc *formula.Document, runs [][]formula.NodeID) (*formula.Document, []formula.NodeID) {
	groupIDs := make([]formula.NodeID, len(runs))
	for i, run := range runs {
		next, gid := consolidateRun(doc, run)
		if gid != "" {
			doc = next
			groupIDs[i] = gid
		}
	}
	return doc, groupIDs
}

func consolidateRun(doc *formula.Document, run []formula.NodeID) (*formula.Document, formula.NodeID) {
	if len(run) == 0 {
		return doc, ""
	}
	parent, ok := doc.Parent(run[0])
	if !ok {
		return doc, ""
	}

	if parent == nil {
		grouped, gid := spliceRun(doc.Nodes(), run)
		if gid == "" {
			return doc, ""
		}
		return formula.NewDocument(grouped...), gid
	}

	replacement, gid := consolidateIn(parent, run)
	if gid == "" {
		return doc, ""
	}
	out := ReplaceNodes(doc, func(n Node) Node {
		if n == parent {
			return replacement
		}
		return n
	})
	return out, gid
}

// consolidateIn rebuilds parent with the run replaced by a Group in
// whichever child sequence contains it. The parent keeps its id and
// every other field. A "" group id means the run is not a contiguous
// in-order slice of any single sequence.
func consolidateIn(parent Node, run []formula.NodeID) (Node, formula.NodeID) {
	switch t := parent.(type) {
	case *formula.Text:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Text{ID: t.ID, Body: body}, gid
		}

	case *formula.Fraction:
		if num, gid := spliceRun(t.Numerator, run); gid != "" {
			return &formula.Fraction{ID: t.ID, Numerator: num, Denominator: t.Denominator}, gid
		}
		if den, gid := spliceRun(t.Denominator, run); gid != "" {
			return &formula.Fraction{ID: t.ID, Numerator: t.Numerator, Denominator: den}, gid
		}

	case *formula.Script:
		if len(run) == 1 && t.Base.NodeID() == run[0] && run[0] != "" {
			group := formula.NewGroup(t.Base)
			return &formula.Script{ID: t.ID, Base: group, Sub: t.Sub, Sup: t.Sup}, group.ID
		}
		if sub, gid := spliceRun(t.Sub, run); gid != "" {
			return &formula.Script{ID: t.ID, Base: t.Base, Sub: sub, Sup: t.Sup}, gid
		}
		if sup, gid := spliceRun(t.Sup, run); gid != "" {
			return &formula.Script{ID: t.ID, Base: t.Base, Sub: t.Sub, Sup: sup}, gid
		}

	case *formula.Root:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Root{ID: t.ID, Body: body}, gid
		}

	case *formula.Group:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Group{ID: t.ID, Body: body}, gid
		}

	case *formula.Array:
		for i, row := range t.Rows {
			spliced, gid := spliceRun(row, run)
			if gid == "" {
				continue
			}
			rows := make([][]Node, len(t.Rows))
			copy(rows, t.Rows)
			rows[i] = spliced
			return &formula.Array{ID: t.ID, Rows: rows}, gid
		}

	case *formula.Aligned:
		if cells, gid := spliceRun(t.Cells, run); gid != "" {
			return &formula.Aligned{ID: t.ID, Cells: cells}, gid
		}

	case *formula.Color:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Color{ID: t.ID, Color: t.Color, Body: body}, gid
		}

	case *formula.Box:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Box{ID: t.ID, BorderColor: t.BorderColor, Body: body}, gid
		}

	case *formula.Brace:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Brace{ID: t.ID, Over: t.Over, Body: body}, gid
		}

	case *formula.Strikethrough:
		if body, gid := spliceRun(t.Body, run); gid != "" {
			return &formula.Strikethrough{ID: t.ID, Body: body}, gid
		}
	}
	return parent, ""
}

// spliceRun locates run as a contiguous in-order id run inside
// siblings and returns the sibling list with the run replaced by one
// fresh Group. The group id is "" if the run does not appear
// contiguously.
func spliceRun(siblings []Node, run []formula.NodeID) ([]Node, formula.NodeID) {
	start := -1
	for i, n := range siblings {
		if n.NodeID() == run[0] && run[0] != "" {
			start = i
			break
		}
	}
	if start < 0 || start+len(run) > len(siblings) {
		return nil, ""
	}
	for j, id := range run {
		if id == "" || siblings[start+j].NodeID() != id {
			return nil, ""
		}
	}

	group := formula.NewGroup(append([]Node(nil), siblings[start:start+len(run)]...)...)
	out := make([]Node, 0, len(siblings)-len(run)+1)
	out = append(out, siblings[:start]...)
	out = append(out, group)
	out = append(out, siblings[start+len(run):]...)
	return out, group.ID
}
