// Package parser reads formula markup (the ModeAST serialization)
// into a formula.Document. Every parsed node gets a fresh id, so
// parsing the serialization of a document yields a structurally equal
// document modulo id relabeling.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// latexLexer tokenizes formula markup. Rule order matters: the
// double-backslash row break and single-char spacing commands must win
// over the general command rule.
var latexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Newline", Pattern: `\\\\`},
	{Name: "SpaceCmd", Pattern: `\\[;,:!]`},
	{Name: "Command", Pattern: `\\[a-zA-Z]+`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Amp", Pattern: `&`},
	{Name: "Sup", Pattern: `\^`},
	{Name: "Sub", Pattern: `_`},
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: "Letter", Pattern: `[a-zA-Z]`},
	{Name: "Punct", Pattern: `[+\-*/=<>(),.!?#%'|:;\[\]]`},
	{Name: "Space", Pattern: `[ \t\r\n]+`},
})

// tokenType holds the lexer's type ids, resolved once.
type tokenType struct {
	Newline  lexer.TokenType
	SpaceCmd lexer.TokenType
	Command  lexer.TokenType
	LBrace   lexer.TokenType
	RBrace   lexer.TokenType
	Amp      lexer.TokenType
	Sup      lexer.TokenType
	Sub      lexer.TokenType
	Number   lexer.TokenType
	Letter   lexer.TokenType
	Punct    lexer.TokenType
	Space    lexer.TokenType
}

var tokens = func() tokenType {
	sym := latexLexer.Symbols()
	return tokenType{
		Newline:  sym["Newline"],
		SpaceCmd: sym["SpaceCmd"],
		Command:  sym["Command"],
		LBrace:   sym["LBrace"],
		RBrace:   sym["RBrace"],
		Amp:      sym["Amp"],
		Sup:      sym["Sup"],
		Sub:      sym["Sub"],
		Number:   sym["Number"],
		Letter:   sym["Letter"],
		Punct:    sym["Punct"],
		Space:    sym["Space"],
	}
}()

// tokenize runs the lexer over src and collects all tokens.
func tokenize(src string) ([]lexer.Token, error) {
	lx, err := latexLexer.LexString("", src)
	if err != nil {
		return nil, &ParseError{Msg: err.Error()}
	}
	var out []lexer.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, &ParseError{Msg: err.Error()}
		}
		if tok.EOF() {
			return out, nil
		}
		out = append(out, tok)
	}
}
