// Package caret answers "which style regions contain this text
// offset" over a styled-range forest, and maintains the set of ranges
// the caret is currently inside as it moves.
//
// The two containment rules matter for correct caret behavior: open
// containment (strictly inside) decides whether the caret has entered
// a range, closed containment (boundaries included) decides whether it
// has fully left one. Merely touching a boundary never counts as
// entering, and exiting only happens once the caret is past the
// boundary.
package caret

import (
	"sort"

	"github.com/dshills/mathedit/internal/ranges"
)

// PositionRanges returns every Styled range in the forest whose span
// contains position, ordered innermost (deepest) first. Containment is
// open (from < p < to) unless includeEdges is set, in which case it is
// closed (from <= p <= to). An out-of-bounds position yields nil.
func PositionRanges(rs []ranges.Range, position int, includeEdges bool) []*ranges.Styled {
	var matched []match
	offset := 0
	for _, r := range rs {
		offset = walk(r, offset, 0, position, includeEdges, &matched)
	}
	if len(matched) == 0 {
		return nil
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].depth > matched[j].depth
	})
	out := make([]*ranges.Styled, len(matched))
	for i, m := range matched {
		out[i] = m.styled
	}
	return out
}

type match struct {
	styled *ranges.Styled
	depth  int
}

func walk(r ranges.Range, offset, depth, position int, includeEdges bool, matched *[]match) int {
	s, ok := r.(*ranges.Styled)
	if !ok {
		return offset + r.Len()
	}

	from, to := offset, offset+s.Len()
	contains := from < position && position < to
	if includeEdges {
		contains = from <= position && position <= to
	}
	if contains {
		*matched = append(*matched, match{styled: s, depth: depth})
	}

	offset += len(s.Left)
	for _, c := range s.Children {
		offset = walk(c, offset, depth+1, position, includeEdges, matched)
	}
	return offset + len(s.Right)
}
