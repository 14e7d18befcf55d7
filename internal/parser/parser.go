package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/dshills/mathedit/internal/formula"
)

// operator commands rendered as Op nodes rather than Symbols.
var opCommands = map[string]bool{
	`\times`: true, `\div`: true, `\cdot`: true, `\pm`: true, `\mp`: true,
	`\leq`: true, `\geq`: true, `\neq`: true, `\approx`: true, `\equiv`: true,
	`\rightarrow`: true, `\leftarrow`: true, `\Rightarrow`: true, `\Leftarrow`: true,
}

// spacing commands that become Space nodes.
var spaceCommands = map[string]bool{
	`\quad`: true, `\qquad`: true, `\enspace`: true, `\thinspace`: true,
}

// Parse reads formula markup into a Document. All nodes get fresh ids.
func Parse(src string) (*formula.Document, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	nodes, err := p.sequence(func(*lexer.Token) bool { return false })
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok != nil {
		return nil, p.errorf(tok, "unexpected %q", tok.Value)
	}
	return formula.NewDocument(nodes...), nil
}

type parser struct {
	toks []lexer.Token
	pos  int
}

func (p *parser) peek() *lexer.Token {
	if p.pos >= len(p.toks) {
		return nil
	}
	return &p.toks[p.pos]
}

func (p *parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *parser) skipSpace() {
	for tok := p.peek(); tok != nil && tok.Type == tokens.Space; tok = p.peek() {
		p.pos++
	}
}

func (p *parser) expect(tt lexer.TokenType, what string) (*lexer.Token, error) {
	tok := p.next()
	if tok == nil {
		return nil, p.errorf(nil, "unexpected end of input, want %s", what)
	}
	if tok.Type != tt {
		return nil, p.errorf(tok, "unexpected %q, want %s", tok.Value, what)
	}
	return tok, nil
}

func (p *parser) errorf(tok *lexer.Token, format string, args ...any) error {
	e := &ParseError{Msg: fmt.Sprintf(format, args...)}
	if tok != nil {
		e.Pos = tok.Pos
	}
	return e
}

// sequence parses nodes until stop matches or input ends, skipping
// whitespace between nodes and attaching any sub/sup scripts to the
// node they follow.
func (p *parser) sequence(stop func(*lexer.Token) bool) ([]formula.Node, error) {
	nodes := []formula.Node{}
	for {
		p.skipSpace()
		tok := p.peek()
		if tok == nil || stop(tok) {
			return nodes, nil
		}
		node, err := p.item()
		if err != nil {
			return nil, err
		}
		node, err = p.attachScripts(node)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

// item parses one node, not including trailing scripts.
func (p *parser) item() (formula.Node, error) {
	tok := p.next()
	switch tok.Type {
	case tokens.Newline:
		return &formula.NewLine{}, nil
	case tokens.Amp:
		return &formula.AlignMarker{}, nil
	case tokens.Number, tokens.Letter:
		return formula.NewSymbol(tok.Value), nil
	case tokens.Punct:
		return formula.NewOp(tok.Value), nil
	case tokens.SpaceCmd:
		return formula.NewSpace(tok.Value), nil
	case tokens.LBrace:
		body, err := p.braceRest()
		if err != nil {
			return nil, err
		}
		return formula.NewGroup(body...), nil
	case tokens.Command:
		return p.command(tok)
	case tokens.Sub, tokens.Sup:
		return nil, p.errorf(tok, "script %q has no base", tok.Value)
	default:
		return nil, p.errorf(tok, "unexpected %q", tok.Value)
	}
}

// command dispatches a `\name` token to its node form.
func (p *parser) command(tok *lexer.Token) (formula.Node, error) {
	switch name := tok.Value; name {
	case `\frac`:
		num, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		den, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewFraction(num, den), nil

	case `\sqrt`:
		body, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewRoot(body...), nil

	case `\overbrace`, `\underbrace`:
		body, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewBrace(name == `\overbrace`, body...), nil

	case `\cancel`:
		body, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewStrikethrough(body...), nil

	case `\textcolor`:
		color, err := p.rawArg()
		if err != nil {
			return nil, err
		}
		body, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewColor(color, body...), nil

	case `\fcolorbox`:
		border, err := p.rawArg()
		if err != nil {
			return nil, err
		}
		// Fill color is fixed; parse and discard.
		if _, err := p.rawArg(); err != nil {
			return nil, err
		}
		body, err := p.braceArg()
		if err != nil {
			return nil, err
		}
		return formula.NewBox(border, body...), nil

	case `\text`:
		body, err := p.textBody()
		if err != nil {
			return nil, err
		}
		return formula.NewText(body...), nil

	case `\begin`:
		return p.environment()

	default:
		if spaceCommands[name] {
			return formula.NewSpace(name), nil
		}
		if opCommands[name] {
			return formula.NewOp(name), nil
		}
		return formula.NewSymbol(name), nil
	}
}

// attachScripts consumes trailing `_`/`^` arguments and wraps base in
// a Script if any are present.
func (p *parser) attachScripts(base formula.Node) (formula.Node, error) {
	var sub, sup []formula.Node
	for {
		tok := p.peek()
		switch {
		case tok != nil && tok.Type == tokens.Sub && sub == nil:
			p.pos++
			arg, err := p.scriptArg()
			if err != nil {
				return nil, err
			}
			sub = arg
		case tok != nil && tok.Type == tokens.Sup && sup == nil:
			p.pos++
			arg, err := p.scriptArg()
			if err != nil {
				return nil, err
			}
			sup = arg
		default:
			if sub == nil && sup == nil {
				return base, nil
			}
			return formula.NewScript(base, sub, sup), nil
		}
	}
}

// scriptArg parses one script argument: a brace group's contents, or a
// single bare item (`x^2`).
func (p *parser) scriptArg() ([]formula.Node, error) {
	if tok := p.peek(); tok != nil && tok.Type == tokens.LBrace {
		p.pos++
		return p.braceRest()
	}
	tok := p.peek()
	if tok == nil {
		return nil, p.errorf(nil, "unexpected end of input in script")
	}
	node, err := p.item()
	if err != nil {
		return nil, err
	}
	return []formula.Node{node}, nil
}

// braceArg parses `{...}` and returns its contents.
func (p *parser) braceArg() ([]formula.Node, error) {
	if _, err := p.expect(tokens.LBrace, "'{'"); err != nil {
		return nil, err
	}
	return p.braceRest()
}

// braceRest parses the remainder of an already-opened brace group.
func (p *parser) braceRest() ([]formula.Node, error) {
	body, err := p.sequence(func(t *lexer.Token) bool { return t.Type == tokens.RBrace })
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokens.RBrace, "'}'"); err != nil {
		return nil, err
	}
	return body, nil
}

// rawArg parses `{...}` and returns the verbatim concatenated token
// text, used for color names.
func (p *parser) rawArg() (string, error) {
	if _, err := p.expect(tokens.LBrace, "'{'"); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		tok := p.next()
		if tok == nil {
			return "", p.errorf(nil, "unexpected end of input in argument")
		}
		if tok.Type == tokens.RBrace {
			return b.String(), nil
		}
		b.WriteString(tok.Value)
	}
}

// textBody parses the `{...}` body of a `\text` run, where whitespace
// is significant and becomes Space nodes.
func (p *parser) textBody() ([]formula.Node, error) {
	if _, err := p.expect(tokens.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var body []formula.Node
	for {
		tok := p.next()
		if tok == nil {
			return nil, p.errorf(nil, "unexpected end of input in text")
		}
		switch tok.Type {
		case tokens.RBrace:
			return body, nil
		case tokens.Space:
			body = append(body, formula.NewSpace(tok.Value))
		case tokens.Number, tokens.Letter, tokens.Punct:
			body = append(body, formula.NewSymbol(tok.Value))
		default:
			return nil, p.errorf(tok, "unexpected %q in text", tok.Value)
		}
	}
}

// environment parses `\begin{name}...\end{name}` for the supported
// environments.
func (p *parser) environment() (formula.Node, error) {
	name, err := p.rawArg()
	if err != nil {
		return nil, err
	}
	switch name {
	case "array":
		// Column spec is regenerated on serialization; discard it.
		if _, err := p.rawArg(); err != nil {
			return nil, err
		}
		cells, err := p.environmentBody(name)
		if err != nil {
			return nil, err
		}
		return formula.NewArray(splitRows(cells)), nil

	case "aligned":
		cells, err := p.environmentBody(name)
		if err != nil {
			return nil, err
		}
		return formula.NewAligned(cells...), nil

	default:
		return nil, p.errorf(nil, "unsupported environment %q", name)
	}
}

// environmentBody parses the node sequence up to the matching
// `\end{name}` and consumes the closer.
func (p *parser) environmentBody(name string) ([]formula.Node, error) {
	body, err := p.sequence(func(t *lexer.Token) bool {
		return t.Type == tokens.Command && t.Value == `\end`
	})
	if err != nil {
		return nil, err
	}
	tok := p.next()
	if tok == nil {
		return nil, p.errorf(nil, "missing \\end{%s}", name)
	}
	closer, err := p.rawArg()
	if err != nil {
		return nil, err
	}
	if closer != name {
		return nil, p.errorf(tok, "mismatched \\end{%s} in %s environment", closer, name)
	}
	return body, nil
}

// splitRows splits an array body into rows at NewLine nodes. The
// AlignMarker cell separators stay inline within each row.
func splitRows(cells []formula.Node) [][]formula.Node {
	rows := [][]formula.Node{}
	row := []formula.Node{}
	for _, n := range cells {
		if _, ok := n.(*formula.NewLine); ok {
			rows = append(rows, row)
			row = []formula.Node{}
			continue
		}
		row = append(row, n)
	}
	return append(rows, row)
}
