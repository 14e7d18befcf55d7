package ranges

import (
	"sort"

	"github.com/dshills/mathedit/internal/formula"
)

// Span is a Styled range projected onto absolute text offsets:
// [From, To) over the document's ModeAST serialization. Depth is the
// range's nesting depth, 0 for top level, so consumers can stack
// decorations for nested styles.
type Span struct {
	From  int            `json:"from"`
	To    int            `json:"to"`
	ID    formula.NodeID `json:"id"`
	Depth int            `json:"depth"`
	Hints Hints          `json:"hints"`
}

// Flatten collects every Styled range in the forest with its absolute
// offsets, sorted by From. Collection is depth-first; the sort is what
// consumers that build decorations incrementally rely on, so emission
// order deliberately ignores collection order.
func Flatten(rs []Range) []Span {
	var spans []Span
	offset := 0
	for _, r := range rs {
		offset = collect(r, offset, 0, &spans)
	}
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].From < spans[j].From
	})
	return spans
}

func collect(r Range, offset, depth int, spans *[]Span) int {
	switch t := r.(type) {
	case *Unstyled:
		return offset + t.Len()
	case *Styled:
		*spans = append(*spans, Span{
			From:  offset,
			To:    offset + t.Len(),
			ID:    t.ID,
			Depth: depth,
			Hints: t.Hints,
		})
		offset += len(t.Left)
		for _, c := range t.Children {
			offset = collect(c, offset, depth+1, spans)
		}
		return offset + len(t.Right)
	}
	return offset
}
