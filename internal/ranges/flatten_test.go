package ranges

import (
	"testing"

	"github.com/dshills/mathedit/internal/formula"
)

func TestFlattenOffsetsAndDepth(t *testing.T) {
	// `a \textcolor{red}{\cancel{x} y}`
	doc := formula.NewDocument(
		sym("s0", "a"),
		&formula.Color{ID: "c1", Color: "red", Body: []formula.Node{
			&formula.Strikethrough{ID: "st1", Body: []formula.Node{sym("x", "x")}},
			sym("y", "y"),
		}},
	)
	text := doc.Latex(formula.ModeAST)
	spans := Flatten(FromDocument(doc))

	if len(spans) != 2 {
		t.Fatalf("span count = %d, want 2", len(spans))
	}

	outer, inner := spans[0], spans[1]
	if outer.ID != "c1" || inner.ID != "st1" {
		t.Fatalf("span order = (%s, %s), want (c1, st1)", outer.ID, inner.ID)
	}
	if outer.Depth != 0 || inner.Depth != 1 {
		t.Errorf("depths = (%d, %d), want (0, 1)", outer.Depth, inner.Depth)
	}
	if outer.From != 2 || outer.To != len(text) {
		t.Errorf("outer span = [%d,%d), want [2,%d)", outer.From, outer.To, len(text))
	}
	if got := text[outer.From:outer.To]; got != `\textcolor{red}{\cancel{x} y}` {
		t.Errorf("outer covers %q", got)
	}
	if got := text[inner.From:inner.To]; got != `\cancel{x}` {
		t.Errorf("inner covers %q", got)
	}
	if inner.From < outer.From || inner.To > outer.To {
		t.Error("inner span not contained in outer span")
	}
}

func TestFlattenSortedByFrom(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Color{ID: "c1", Color: "red", Body: []formula.Node{sym("x", "x")}},
		&formula.Color{ID: "c2", Color: "blue", Body: []formula.Node{
			&formula.Strikethrough{ID: "st1", Body: []formula.Node{sym("y", "y")}},
		}},
		&formula.Strikethrough{ID: "st2", Body: []formula.Node{sym("z", "z")}},
	)
	spans := Flatten(FromDocument(doc))
	for i := 1; i < len(spans); i++ {
		if spans[i].From < spans[i-1].From {
			t.Fatalf("spans not sorted by From at %d: %d < %d", i, spans[i].From, spans[i-1].From)
		}
	}
	if len(spans) != 4 {
		t.Errorf("span count = %d, want 4", len(spans))
	}
}

func TestFlattenEmptyForest(t *testing.T) {
	if spans := Flatten(nil); len(spans) != 0 {
		t.Errorf("spans = %v, want none", spans)
	}
	if spans := Flatten(FromDocument(formula.NewDocument(sym("a", "x")))); len(spans) != 0 {
		t.Errorf("unstyled doc spans = %v, want none", spans)
	}
}
