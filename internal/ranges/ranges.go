// Package ranges derives the styled-range forest: a parallel interval
// structure over a document's ModeAST serialization. Style wrapper
// nodes (and variables, which carry tooltips) become Styled ranges
// holding their opening/closing markup and their children's ranges;
// everything else becomes Unstyled text runs. Concatenating a forest
// in order reproduces the document's serialization byte for byte,
// which is what lets a text surface decorate exact spans and track
// which style region a cursor offset sits inside.
package ranges

import (
	"strings"

	"github.com/dshills/mathedit/internal/formula"
)

// Hints carries the presentation hints a Styled range exposes to
// decoration consumers.
type Hints struct {
	Color   string `json:"color,omitempty"`
	Tooltip string `json:"tooltip,omitempty"`
}

// Range is a node of the styled-range forest: either *Styled or
// *Unstyled.
type Range interface {
	// Len is the range's total text length.
	Len() int
	// Text reproduces the exact serialized text the range covers.
	Text() string

	isRange()
}

// Styled is the span a style-bearing node contributes: its opening
// markup, its children's ranges, and its closing markup. ID is the
// originating node's id and is stable across derivations for as long
// as that node survives edits.
type Styled struct {
	ID       formula.NodeID
	Left     string
	Children []Range
	Right    string
	Hints    Hints
}

func (s *Styled) isRange() {}

func (s *Styled) Len() int {
	n := len(s.Left) + len(s.Right)
	for _, c := range s.Children {
		n += c.Len()
	}
	return n
}

func (s *Styled) Text() string {
	var b strings.Builder
	b.WriteString(s.Left)
	for _, c := range s.Children {
		b.WriteString(c.Text())
	}
	b.WriteString(s.Right)
	return b.String()
}

// Unstyled is a plain text run with no style of its own. Zero-length
// runs are legal and act as identity elements under merging.
type Unstyled struct {
	Body string
}

func (u *Unstyled) isRange()     {}
func (u *Unstyled) Len() int     { return len(u.Body) }
func (u *Unstyled) Text() string { return u.Body }

// TextOf concatenates a forest back into serialized text.
func TextOf(rs []Range) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Text())
	}
	return b.String()
}

// TotalLen sums the lengths of a forest's top-level ranges.
func TotalLen(rs []Range) int {
	n := 0
	for _, r := range rs {
		n += r.Len()
	}
	return n
}
