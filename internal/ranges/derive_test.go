package ranges

import (
	"testing"

	"github.com/dshills/mathedit/internal/formula"
)

func sym(id, v string) *formula.Symbol { return &formula.Symbol{ID: formula.NodeID(id), Value: v} }
func op(id, v string) *formula.Op      { return &formula.Op{ID: formula.NodeID(id), Operator: v} }

func styledDoc() *formula.Document {
	return formula.NewDocument(
		sym("s0", "a"),
		&formula.Color{ID: "c1", Color: "red", Body: []formula.Node{
			sym("s1", "x"), op("op1", "+"), sym("s2", "y"),
		}},
		op("eq", "="),
		&formula.Strikethrough{ID: "st1", Body: []formula.Node{sym("s3", "z")}},
	)
}

func TestForestReproducesSerialization(t *testing.T) {
	tests := []struct {
		name string
		doc  *formula.Document
	}{
		{"plain", formula.NewDocument(sym("a", "x"), op("p", "+"), sym("b", "y"))},
		{"styled", styledDoc()},
		{"nested styles", formula.NewDocument(
			&formula.Box{ID: "b1", BorderColor: "blue", Body: []formula.Node{
				&formula.Color{ID: "c1", Color: "red", Body: []formula.Node{sym("x", "x")}},
			}},
		)},
		{"fraction in color", formula.NewDocument(
			&formula.Color{ID: "c1", Color: "green", Body: []formula.Node{
				&formula.Fraction{ID: "f1", Numerator: []formula.Node{sym("a", "a")}, Denominator: []formula.Node{sym("b", "b")}},
			}},
		)},
		{"variable", formula.NewDocument(
			sym("a", "k"),
			&formula.Variable{ID: "v1", Source: `\frac{1}{2}`},
		)},
		{"empty text", formula.NewDocument(&formula.Text{ID: "t1"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest := FromDocument(tt.doc)
			want := tt.doc.Latex(formula.ModeAST)
			if got := TextOf(forest); got != want {
				t.Errorf("TextOf = %q, want %q", got, want)
			}
			if got := TotalLen(forest); got != len(want) {
				t.Errorf("TotalLen = %d, want %d", got, len(want))
			}
		})
	}
}

func TestStyledRangeDelimitersExact(t *testing.T) {
	forest := FromDocument(formula.NewDocument(
		&formula.Color{ID: "c1", Color: "red", Body: []formula.Node{sym("x", "x")}},
	))
	if len(forest) != 1 {
		t.Fatalf("forest size = %d, want 1", len(forest))
	}
	s, ok := forest[0].(*Styled)
	if !ok {
		t.Fatalf("range = %T, want *Styled", forest[0])
	}
	if s.ID != "c1" {
		t.Errorf("id = %s, want c1", s.ID)
	}
	if s.Left != `\textcolor{red}{` || s.Right != "}" {
		t.Errorf("delimiters = (%q, %q)", s.Left, s.Right)
	}
	if s.Hints.Color != "red" {
		t.Errorf("color hint = %q, want red", s.Hints.Color)
	}
}

func TestAdjacentUnstyledSiblingsMerge(t *testing.T) {
	// Plain nodes around and between styled ranges must come out as
	// maximal single runs.
	forest := FromDocument(styledDoc())
	for i := 1; i < len(forest); i++ {
		_, prev := forest[i-1].(*Unstyled)
		_, cur := forest[i].(*Unstyled)
		if prev && cur {
			t.Fatalf("adjacent unstyled siblings at %d after normalization", i)
		}
	}
	// Leading symbol plus separator form one run.
	if u, ok := forest[0].(*Unstyled); !ok || u.Body != "a " {
		t.Errorf("forest[0] = %#v, want Unstyled %q", forest[0], "a ")
	}
}

func TestCombineUnstyledMergesText(t *testing.T) {
	got := CombineUnstyled([]Range{
		&Unstyled{Body: "ab"},
		&Unstyled{Body: "c"},
	})
	if len(got) != 1 {
		t.Fatalf("merged size = %d, want 1", len(got))
	}
	if u := got[0].(*Unstyled); u.Body != "abc" {
		t.Errorf("merged body = %q, want abc", u.Body)
	}
}

func TestCombineUnstyledZeroLengthIdentity(t *testing.T) {
	got := CombineUnstyled([]Range{
		&Unstyled{Body: "ab"},
		&Unstyled{},
		&Unstyled{Body: "c"},
		&Styled{ID: "r1", Left: "[", Children: []Range{&Unstyled{}}, Right: "]"},
		&Unstyled{},
	})
	if len(got) != 2 {
		t.Fatalf("size = %d, want 2", len(got))
	}
	if u := got[0].(*Unstyled); u.Body != "abc" {
		t.Errorf("merged body = %q, want abc", u.Body)
	}
	if got[1].Len() != 2 {
		t.Errorf("styled len = %d, want 2", got[1].Len())
	}
}

func TestCombineUnstyledIdempotent(t *testing.T) {
	in := []Range{
		&Unstyled{Body: "a"},
		&Unstyled{Body: "b"},
		&Styled{ID: "r1", Left: "(", Children: []Range{
			&Unstyled{Body: "c"},
			&Unstyled{Body: "d"},
		}, Right: ")"},
		&Unstyled{Body: "e"},
	}
	once := CombineUnstyled(in)
	twice := CombineUnstyled(once)
	if TextOf(once) != TextOf(twice) {
		t.Fatal("combine changed text between applications")
	}
	if len(once) != len(twice) {
		t.Fatalf("sizes differ: %d != %d", len(once), len(twice))
	}
	for i := range once {
		a, aOK := once[i].(*Unstyled)
		b, bOK := twice[i].(*Unstyled)
		if aOK != bOK {
			t.Fatalf("shape differs at %d", i)
		}
		if aOK && a.Body != b.Body {
			t.Errorf("body differs at %d: %q != %q", i, a.Body, b.Body)
		}
	}
}

func TestVariableRangeCarriesTooltip(t *testing.T) {
	forest := FromDocument(formula.NewDocument(
		&formula.Variable{ID: "v1", Source: "42"},
	))
	s, ok := forest[0].(*Styled)
	if !ok {
		t.Fatalf("range = %T, want *Styled", forest[0])
	}
	if s.Left != "" || s.Right != "" {
		t.Errorf("variable delimiters = (%q, %q), want empty", s.Left, s.Right)
	}
	if s.Hints.Tooltip != "42" {
		t.Errorf("tooltip = %q, want 42", s.Hints.Tooltip)
	}
	if s.Len() != 2 {
		t.Errorf("len = %d, want 2", s.Len())
	}
}
