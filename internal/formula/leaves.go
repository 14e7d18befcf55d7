package formula

// Symbol is a single symbol: a letter, a numeral, or a symbol command
// such as `\alpha`.
type Symbol struct {
	ID    NodeID
	Value string
}

// NewSymbol creates a Symbol with a fresh id.
func NewSymbol(value string) *Symbol {
	return &Symbol{ID: NewID(), Value: value}
}

func (s *Symbol) NodeID() NodeID   { return s.ID }
func (s *Symbol) Children() []Node { return nil }
func (s *Symbol) isNode()          {}

func (s *Symbol) Latex(mode Mode) string {
	if mode == ModeRender {
		return cssID(s.ID, s.Value)
	}
	return s.Value
}

// Op is a binary or relational operator such as "+" or `\times`.
type Op struct {
	ID       NodeID
	Operator string
}

// NewOp creates an Op with a fresh id.
func NewOp(operator string) *Op {
	return &Op{ID: NewID(), Operator: operator}
}

func (o *Op) NodeID() NodeID   { return o.ID }
func (o *Op) Children() []Node { return nil }
func (o *Op) isNode()          {}

func (o *Op) Latex(mode Mode) string {
	if mode == ModeRender {
		return cssID(o.ID, o.Operator)
	}
	return o.Operator
}

// Space is an explicit spacing command such as `\quad` or `\;`.
type Space struct {
	ID   NodeID
	Text string
}

// NewSpace creates a Space with a fresh id.
func NewSpace(text string) *Space {
	return &Space{ID: NewID(), Text: text}
}

func (s *Space) NodeID() NodeID   { return s.ID }
func (s *Space) Children() []Node { return nil }
func (s *Space) isNode()          {}

func (s *Space) Latex(mode Mode) string {
	if mode == ModeRender {
		return cssID(s.ID, s.Text)
	}
	return s.Text
}

// Variable is a leaf whose markup was produced by the external
// variable computation engine. Source is that engine's LaTeX text,
// emitted verbatim in ModeAST.
type Variable struct {
	ID     NodeID
	Source string
}

// NewVariable creates a Variable with a fresh id.
func NewVariable(source string) *Variable {
	return &Variable{ID: NewID(), Source: source}
}

func (v *Variable) NodeID() NodeID   { return v.ID }
func (v *Variable) Children() []Node { return nil }
func (v *Variable) isNode()          {}

func (v *Variable) Latex(mode Mode) string {
	if mode == ModeRender {
		return cssID(v.ID, v.Source)
	}
	return v.Source
}

// NewLine is a row break inside an Array or Aligned environment. It
// carries no id and is never individually addressable.
type NewLine struct{}

func (*NewLine) NodeID() NodeID    { return "" }
func (*NewLine) Children() []Node  { return nil }
func (*NewLine) isNode()           {}
func (*NewLine) Latex(Mode) string { return `\\` }

// AlignMarker is a column/alignment separator inside an Array or
// Aligned environment. Like NewLine it carries no id.
type AlignMarker struct{}

func (*AlignMarker) NodeID() NodeID    { return "" }
func (*AlignMarker) Children() []Node  { return nil }
func (*AlignMarker) isNode()           {}
func (*AlignMarker) Latex(Mode) string { return "&" }
