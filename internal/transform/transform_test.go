package transform

import (
	"testing"

	"github.com/dshills/mathedit/internal/formula"
)

func sym(id, v string) *formula.Symbol { return &formula.Symbol{ID: formula.NodeID(id), Value: v} }
func op(id, v string) *formula.Op      { return &formula.Op{ID: formula.NodeID(id), Operator: v} }

// xPlusY builds `x + y` with ids s1, op1, s2.
func xPlusY() *formula.Document {
	return formula.NewDocument(sym("s1", "x"), op("op1", "+"), sym("s2", "y"))
}

func TestReplaceNodesIdentity(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Fraction{
			ID:          "f1",
			Numerator:   []Node{sym("a", "a"), op("p", "+"), sym("b", "b")},
			Denominator: []Node{sym("c", "2")},
		},
		&formula.Script{ID: "sc", Base: sym("x", "x"), Sup: []Node{sym("n", "n")}},
		&formula.Aligned{ID: "al", Cells: []Node{sym("y", "y"), &formula.AlignMarker{}, sym("z", "z")}},
	)

	out := ReplaceNodes(doc, func(n Node) Node { return n })
	if got, want := out.Latex(formula.ModeAST), doc.Latex(formula.ModeAST); got != want {
		t.Errorf("identity rewrite changed serialization: %q != %q", got, want)
	}
}

func TestReplaceNodesIdentitySharesSubtrees(t *testing.T) {
	doc := xPlusY()
	out := ReplaceNodes(doc, func(n Node) Node { return n })
	for i, n := range out.Nodes() {
		if n != doc.Nodes()[i] {
			t.Errorf("node %d was copied by an identity rewrite", i)
		}
	}
}

func TestReplaceNodesRewritesLeaf(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Root{ID: "r1", Body: []Node{sym("x", "x")}},
	)

	out := ReplaceNodes(doc, func(n Node) Node {
		if s, ok := n.(*formula.Symbol); ok && s.Value == "x" {
			return &formula.Symbol{ID: s.ID, Value: "z"}
		}
		return n
	})

	if got, want := out.Latex(formula.ModeAST), `\sqrt{z}`; got != want {
		t.Errorf("rewrite = %q, want %q", got, want)
	}
	if doc.Latex(formula.ModeAST) != `\sqrt{x}` {
		t.Error("input document was mutated")
	}
	// The rewritten leaf keeps its id inside a rebuilt parent.
	n, ok := out.FindNode("x")
	if !ok {
		t.Fatal("rewritten leaf lost its id")
	}
	if n.(*formula.Symbol).Value != "z" {
		t.Errorf("leaf value = %q, want z", n.(*formula.Symbol).Value)
	}
}

func TestReplaceNodesBottomUp(t *testing.T) {
	// The visitor sees parents only after their children have been
	// rewritten: wrapping x in a group and then matching on the group
	// in the same pass must observe the rewritten child.
	doc := formula.NewDocument(
		&formula.Group{ID: "g1", Body: []Node{sym("x", "x")}},
	)

	sawRewritten := false
	ReplaceNodes(doc, func(n Node) Node {
		switch tn := n.(type) {
		case *formula.Symbol:
			return &formula.Symbol{ID: tn.ID, Value: "y"}
		case *formula.Group:
			if len(tn.Body) == 1 {
				if s, ok := tn.Body[0].(*formula.Symbol); ok && s.Value == "y" {
					sawRewritten = true
				}
			}
		}
		return n
	})
	if !sawRewritten {
		t.Error("group visitor did not observe rewritten child")
	}
}

func TestAssignIDsSequential(t *testing.T) {
	doc := formula.NewDocument(
		&formula.Fraction{
			ID:          "old1",
			Numerator:   []Node{sym("old2", "a")},
			Denominator: []Node{sym("old3", "b")},
		},
	)

	out := AssignIDs(doc, SequentialIDs("n"))
	if got, want := out.Latex(formula.ModeAST), doc.Latex(formula.ModeAST); got != want {
		t.Errorf("AssignIDs changed serialization: %q != %q", got, want)
	}
	for _, id := range []formula.NodeID{"n1", "n2", "n3"} {
		if _, ok := out.FindNode(id); !ok {
			t.Errorf("missing id %s after AssignIDs", id)
		}
	}
	if _, ok := out.FindNode("old1"); ok {
		t.Error("old id survived AssignIDs")
	}
}
