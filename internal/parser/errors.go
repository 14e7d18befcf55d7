package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrSyntax is the sentinel all parse failures unwrap to.
var ErrSyntax = errors.New("formula syntax error")

// ParseError is a positional parse failure.
type ParseError struct {
	Pos lexer.Position
	Msg string
}

func (e *ParseError) Error() string {
	if e.Pos.Offset > 0 || e.Pos.Line > 0 {
		return fmt.Sprintf("parse: %s at offset %d", e.Msg, e.Pos.Offset)
	}
	return "parse: " + e.Msg
}

func (e *ParseError) Unwrap() error { return ErrSyntax }
