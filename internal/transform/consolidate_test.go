package transform

import (
	"testing"

	"github.com/dshills/mathedit/internal/formula"
)

func TestConsolidateTopLevelRun(t *testing.T) {
	doc := formula.NewDocument(
		sym("s0", "w"),
		sym("s1", "x"), op("op1", "+"), sym("s2", "y"),
		sym("s3", "z"),
	)

	out, gids := ConsolidateGroups(doc, [][]formula.NodeID{{"s1", "op1", "s2"}})
	if gids[0] == "" {
		t.Fatal("valid run was skipped")
	}

	nodes := out.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("top-level count = %d, want 3", len(nodes))
	}
	if nodes[0].NodeID() != "s0" || nodes[2].NodeID() != "s3" {
		t.Error("unselected siblings lost position or identity")
	}

	group, ok := nodes[1].(*formula.Group)
	if !ok {
		t.Fatalf("middle node = %T, want *Group", nodes[1])
	}
	if group.ID != gids[0] {
		t.Errorf("group id = %s, want %s", group.ID, gids[0])
	}
	wantIDs := []formula.NodeID{"s1", "op1", "s2"}
	for i, id := range wantIDs {
		if group.Body[i].NodeID() != id {
			t.Errorf("group child %d = %s, want %s", i, group.Body[i].NodeID(), id)
		}
	}
	if got, want := out.Latex(formula.ModeAST), "w {x + y} z"; got != want {
		t.Errorf("serialization = %q, want %q", got, want)
	}
}

func TestConsolidateInsideFractionNumerator(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Fraction{
			ID:          "f1",
			Numerator:   []Node{sym("a", "a"), op("p", "+"), sym("b", "b")},
			Denominator: []Node{sym("c", "2")},
		},
	)

	out, gids := ConsolidateGroups(doc, [][]formula.NodeID{{"a", "p"}})
	if gids[0] == "" {
		t.Fatal("valid nested run was skipped")
	}
	if got, want := out.Latex(formula.ModeAST), `\frac{{a +} b}{2}`; got != want {
		t.Errorf("serialization = %q, want %q", got, want)
	}
	// Fraction keeps its id; denominator is untouched.
	f, ok := out.FindNode("f1")
	if !ok {
		t.Fatal("fraction lost its id")
	}
	if f.(*formula.Fraction).Denominator[0].NodeID() != "c" {
		t.Error("denominator changed")
	}
}

func TestConsolidateSkipsInvalidRuns(t *testing.T) {
	doc := formula.NewDocument(
		sym("s1", "x"), op("op1", "+"), sym("s2", "y"),
		&formula.Root{ID: "r1", Body: []Node{sym("s3", "z")}},
	)
	before := doc.Latex(formula.ModeAST)

	tests := []struct {
		name string
		run  []formula.NodeID
	}{
		{"non-contiguous", []formula.NodeID{"s1", "s2"}},
		{"wrong order", []formula.NodeID{"op1", "s1"}},
		{"cross parent", []formula.NodeID{"s2", "s3"}},
		{"stale id", []formula.NodeID{"gone", "s1"}},
		{"stale tail", []formula.NodeID{"s1", "gone"}},
		{"empty run", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, gids := ConsolidateGroups(doc, [][]formula.NodeID{tt.run})
			if gids[0] != "" {
				t.Fatalf("invalid run produced group %s", gids[0])
			}
			if got := out.Latex(formula.ModeAST); got != before {
				t.Errorf("document changed: %q != %q", got, before)
			}
		})
	}
}

func TestConsolidateMultipleRuns(t *testing.T) {
	doc := formula.NewDocument(
		sym("s1", "a"), sym("s2", "b"), sym("s3", "c"), sym("s4", "d"),
	)

	out, gids := ConsolidateGroups(doc, [][]formula.NodeID{
		{"s1", "s2"},
		{"s3", "s4"},
	})
	if gids[0] == "" || gids[1] == "" {
		t.Fatal("valid runs were skipped")
	}
	if gids[0] == gids[1] {
		t.Error("runs share a group id")
	}
	if got, want := out.Latex(formula.ModeAST), "{a b} {c d}"; got != want {
		t.Errorf("serialization = %q, want %q", got, want)
	}
}

func TestConsolidateSecondRunStaleAfterFirst(t *testing.T) {
	doc := xPlusY()

	// The second run overlaps the first; after the first consolidation
	// it is no longer a sibling run and must be skipped.
	out, gids := ConsolidateGroups(doc, [][]formula.NodeID{
		{"s1", "op1"},
		{"op1", "s2"},
	})
	if gids[0] == "" {
		t.Fatal("first run skipped")
	}
	if gids[1] != "" {
		t.Error("overlapping second run was not skipped")
	}
	if got, want := out.Latex(formula.ModeAST), "{x +} y"; got != want {
		t.Errorf("serialization = %q, want %q", got, want)
	}
}

func TestConsolidateScriptBase(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Script{ID: "sc", Base: sym("x", "x"), Sup: []Node{sym("n", "2")}},
	)

	out, gids := ConsolidateGroups(doc, [][]formula.NodeID{{"x"}})
	if gids[0] == "" {
		t.Fatal("script base run was skipped")
	}
	if got, want := out.Latex(formula.ModeAST), `{x}^{2}`; got != want {
		t.Errorf("serialization = %q, want %q", got, want)
	}
}
