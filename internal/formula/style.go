package formula

// Style wrapper nodes. Each wraps a body in one visual annotation and
// is what the styled-range derivation treats as a range boundary. The
// opening and closing markup each wrapper contributes in ModeAST is
// exposed via Delimiters so ranges stay byte-exact with serialization.

// Color wraps its body in `\textcolor{color}{...}`.
type Color struct {
	ID    NodeID
	Color string
	Body  []Node
}

// NewColor creates a Color with a fresh id.
func NewColor(color string, body ...Node) *Color {
	return &Color{ID: NewID(), Color: color, Body: body}
}

func (c *Color) NodeID() NodeID   { return c.ID }
func (c *Color) Children() []Node { return c.Body }
func (c *Color) isNode()          {}

// Delimiters returns the opening and closing ModeAST markup.
func (c *Color) Delimiters() (left, right string) {
	return `\textcolor{` + c.Color + `}{`, "}"
}

func (c *Color) Latex(mode Mode) string {
	left, right := c.Delimiters()
	return left + joinLatex(c.Body, mode, " ") + right
}

// Box wraps its body in `\fcolorbox{border}{white}{...}`.
type Box struct {
	ID          NodeID
	BorderColor string
	Body        []Node
}

// NewBox creates a Box with a fresh id.
func NewBox(borderColor string, body ...Node) *Box {
	return &Box{ID: NewID(), BorderColor: borderColor, Body: body}
}

func (b *Box) NodeID() NodeID   { return b.ID }
func (b *Box) Children() []Node { return b.Body }
func (b *Box) isNode()          {}

// Delimiters returns the opening and closing ModeAST markup.
func (b *Box) Delimiters() (left, right string) {
	return `\fcolorbox{` + b.BorderColor + `}{white}{`, "}"
}

func (b *Box) Latex(mode Mode) string {
	left, right := b.Delimiters()
	return left + joinLatex(b.Body, mode, " ") + right
}

// Brace wraps its body in `\overbrace{...}` or `\underbrace{...}`.
type Brace struct {
	ID   NodeID
	Over bool
	Body []Node
}

// NewBrace creates a Brace with a fresh id.
func NewBrace(over bool, body ...Node) *Brace {
	return &Brace{ID: NewID(), Over: over, Body: body}
}

func (b *Brace) NodeID() NodeID   { return b.ID }
func (b *Brace) Children() []Node { return b.Body }
func (b *Brace) isNode()          {}

// Delimiters returns the opening and closing ModeAST markup.
func (b *Brace) Delimiters() (left, right string) {
	if b.Over {
		return `\overbrace{`, "}"
	}
	return `\underbrace{`, "}"
}

func (b *Brace) Latex(mode Mode) string {
	left, right := b.Delimiters()
	return left + joinLatex(b.Body, mode, " ") + right
}

// Strikethrough wraps its body in `\cancel{...}`.
type Strikethrough struct {
	ID   NodeID
	Body []Node
}

// NewStrikethrough creates a Strikethrough with a fresh id.
func NewStrikethrough(body ...Node) *Strikethrough {
	return &Strikethrough{ID: NewID(), Body: body}
}

func (s *Strikethrough) NodeID() NodeID   { return s.ID }
func (s *Strikethrough) Children() []Node { return s.Body }
func (s *Strikethrough) isNode()          {}

// Delimiters returns the opening and closing ModeAST markup.
func (s *Strikethrough) Delimiters() (left, right string) {
	return `\cancel{`, "}"
}

func (s *Strikethrough) Latex(mode Mode) string {
	left, right := s.Delimiters()
	return left + joinLatex(s.Body, mode, " ") + right
}
