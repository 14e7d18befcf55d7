package ranges

import (
	"github.com/dshills/mathedit/internal/formula"
)

// FromDocument derives the normalized styled-range forest for a
// document. The forest covers the document's ModeAST serialization
// exactly: separator spaces between top-level nodes appear as
// Unstyled runs, and adjacent Unstyled siblings are merged so every
// unstyled run is maximal.
func FromDocument(doc *formula.Document) []Range {
	return CombineUnstyled(forSeq(doc.Nodes(), " "))
}

// forSeq derives ranges for a node sequence joined by sep, emitting
// the separators as Unstyled runs between the nodes' own ranges.
func forSeq(nodes []formula.Node, sep string) []Range {
	var out []Range
	for i, n := range nodes {
		if i > 0 && sep != "" {
			out = append(out, &Unstyled{Body: sep})
		}
		out = append(out, forNode(n))
	}
	return out
}

// forNode derives the range for one node. Style carriers become
// Styled ranges whose Left/Right are exactly the opening and closing
// markup the node contributes in ModeAST; every other node contributes
// one Unstyled run of its own serialization.
func forNode(n formula.Node) Range {
	switch t := n.(type) {
	case *formula.Color:
		left, right := t.Delimiters()
		return &Styled{
			ID:       t.ID,
			Left:     left,
			Children: forSeq(t.Body, " "),
			Right:    right,
			Hints:    Hints{Color: t.Color},
		}

	case *formula.Box:
		left, right := t.Delimiters()
		return &Styled{
			ID:       t.ID,
			Left:     left,
			Children: forSeq(t.Body, " "),
			Right:    right,
			Hints:    Hints{Color: t.BorderColor},
		}

	case *formula.Brace:
		left, right := t.Delimiters()
		return &Styled{
			ID:       t.ID,
			Left:     left,
			Children: forSeq(t.Body, " "),
			Right:    right,
		}

	case *formula.Strikethrough:
		left, right := t.Delimiters()
		return &Styled{
			ID:       t.ID,
			Left:     left,
			Children: forSeq(t.Body, " "),
			Right:    right,
		}

	case *formula.Variable:
		// Variables carry no structural delimiters; the styled range
		// exists so the surface can attach the tooltip and track the
		// cursor entering the variable's text.
		return &Styled{
			ID:       t.ID,
			Children: []Range{&Unstyled{Body: t.Source}},
			Hints:    Hints{Tooltip: t.Source},
		}

	default:
		return &Unstyled{Body: n.Latex(formula.ModeAST)}
	}
}

// CombineUnstyled merges adjacent Unstyled siblings at every nesting
// level so no two adjacent siblings are both unstyled, and drops
// empty runs absorbed by the merge. It is idempotent.
func CombineUnstyled(rs []Range) []Range {
	if len(rs) == 0 {
		return rs
	}
	out := make([]Range, 0, len(rs))
	for _, r := range rs {
		switch t := r.(type) {
		case *Unstyled:
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(*Unstyled); ok {
					out[len(out)-1] = &Unstyled{Body: prev.Body + t.Body}
					continue
				}
			}
			out = append(out, t)
		case *Styled:
			out = append(out, &Styled{
				ID:       t.ID,
				Left:     t.Left,
				Children: CombineUnstyled(t.Children),
				Right:    t.Right,
				Hints:    t.Hints,
			})
		}
	}
	// Empty runs are identity elements; keep one only if it is the
	// entire forest.
	filtered := out[:0]
	for _, r := range out {
		if u, ok := r.(*Unstyled); ok && u.Body == "" && len(out) > 1 {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
