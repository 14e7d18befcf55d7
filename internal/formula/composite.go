package formula

import "strings"

// Text is a `\text{...}` run. Body nodes are concatenated without
// separators, so consecutive Symbols spell out words and Space nodes
// carry the gaps.
type Text struct {
	ID   NodeID
	Body []Node
}

// NewText creates a Text with a fresh id.
func NewText(body ...Node) *Text {
	return &Text{ID: NewID(), Body: body}
}

func (t *Text) NodeID() NodeID   { return t.ID }
func (t *Text) Children() []Node { return t.Body }
func (t *Text) isNode()          {}

func (t *Text) Latex(mode Mode) string {
	return `\text{` + joinLatex(t.Body, mode, "") + "}"
}

// Fraction is `\frac{num}{den}`.
type Fraction struct {
	ID          NodeID
	Numerator   []Node
	Denominator []Node
}

// NewFraction creates a Fraction with a fresh id.
func NewFraction(num, den []Node) *Fraction {
	return &Fraction{ID: NewID(), Numerator: num, Denominator: den}
}

func (f *Fraction) NodeID() NodeID { return f.ID }
func (f *Fraction) isNode()        {}

func (f *Fraction) Children() []Node {
	return concat(f.Numerator, f.Denominator)
}

func (f *Fraction) Latex(mode Mode) string {
	return `\frac` + arg(f.Numerator, mode) + arg(f.Denominator, mode)
}

// Script attaches subscript and/or superscript sequences to a base
// node. A nil Sub or Sup is absent, not empty.
type Script struct {
	ID   NodeID
	Base Node
	Sub  []Node
	Sup  []Node
}

// NewScript creates a Script with a fresh id.
func NewScript(base Node, sub, sup []Node) *Script {
	return &Script{ID: NewID(), Base: base, Sub: sub, Sup: sup}
}

func (s *Script) NodeID() NodeID { return s.ID }
func (s *Script) isNode()        {}

func (s *Script) Children() []Node {
	out := []Node{s.Base}
	out = append(out, s.Sub...)
	return append(out, s.Sup...)
}

func (s *Script) Latex(mode Mode) string {
	var b strings.Builder
	b.WriteString(s.Base.Latex(mode))
	if s.Sub != nil {
		b.WriteString("_")
		b.WriteString(arg(s.Sub, mode))
	}
	if s.Sup != nil {
		b.WriteString("^")
		b.WriteString(arg(s.Sup, mode))
	}
	return b.String()
}

// Root is `\sqrt{body}`.
type Root struct {
	ID   NodeID
	Body []Node
}

// NewRoot creates a Root with a fresh id.
func NewRoot(body ...Node) *Root {
	return &Root{ID: NewID(), Body: body}
}

func (r *Root) NodeID() NodeID   { return r.ID }
func (r *Root) Children() []Node { return r.Body }
func (r *Root) isNode()          {}

func (r *Root) Latex(mode Mode) string {
	return `\sqrt` + arg(r.Body, mode)
}

// Group is an explicit brace group. Consolidation synthesizes Groups
// to give a contiguous sibling run a single addressable node.
type Group struct {
	ID   NodeID
	Body []Node
}

// NewGroup creates a Group with a fresh id.
func NewGroup(body ...Node) *Group {
	return &Group{ID: NewID(), Body: body}
}

func (g *Group) NodeID() NodeID   { return g.ID }
func (g *Group) Children() []Node { return g.Body }
func (g *Group) isNode()          {}

func (g *Group) Latex(mode Mode) string {
	return arg(g.Body, mode)
}

// Array is a `\begin{array}...\end{array}` environment. Each row is a
// node sequence with AlignMarker nodes separating cells; the column
// spec is regenerated from the widest row.
type Array struct {
	ID   NodeID
	Rows [][]Node
}

// NewArray creates an Array with a fresh id.
func NewArray(rows [][]Node) *Array {
	return &Array{ID: NewID(), Rows: rows}
}

func (a *Array) NodeID() NodeID { return a.ID }
func (a *Array) isNode()        {}

func (a *Array) Children() []Node {
	var out []Node
	for _, row := range a.Rows {
		out = append(out, row...)
	}
	return out
}

func (a *Array) Latex(mode Mode) string {
	cols := 1
	for _, row := range a.Rows {
		n := 1
		for _, cell := range row {
			if _, ok := cell.(*AlignMarker); ok {
				n++
			}
		}
		if n > cols {
			cols = n
		}
	}
	var b strings.Builder
	b.WriteString(`\begin{array}{` + strings.Repeat("c", cols) + "}")
	for i, row := range a.Rows {
		if i > 0 {
			b.WriteString(` \\ `)
		}
		b.WriteString(joinLatex(row, mode, " "))
	}
	b.WriteString(`\end{array}`)
	return b.String()
}

// Aligned is a `\begin{aligned}...\end{aligned}` environment. Cells is
// a flat sequence with NewLine and AlignMarker nodes inline.
type Aligned struct {
	ID    NodeID
	Cells []Node
}

// NewAligned creates an Aligned with a fresh id.
func NewAligned(cells ...Node) *Aligned {
	return &Aligned{ID: NewID(), Cells: cells}
}

func (a *Aligned) NodeID() NodeID   { return a.ID }
func (a *Aligned) Children() []Node { return a.Cells }
func (a *Aligned) isNode()          {}

func (a *Aligned) Latex(mode Mode) string {
	return `\begin{aligned}` + joinLatex(a.Cells, mode, " ") + `\end{aligned}`
}

func concat(a, b []Node) []Node {
	out := make([]Node, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
