package sexpr

import (
	"fmt"

	"github.com/cwbudde/classlisp/internal/ast"
)

// Parser builds an internal/ast tree from a token stream.
//
// Grounded on the teacher's internal/parser package split (a recursive
// descent parser over a pre-tokenized stream); the grammar here is
// trivial compared to DWScript's because the surface language is a
// raw s-expression tree rather than an Object-Pascal-like syntax.
type Parser struct {
	toks []Token
	pos  int
}

// NewParser creates a Parser over the given token stream.
func NewParser(toks []Token) *Parser {
	return &Parser{toks: toks}
}

// Parse lexes and parses src directly into a Program.
func Parse(src string) (*ast.Program, error) {
	toks, err := New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(toks).ParseProgram()
}

func (p *Parser) peek() Token  { return p.toks[p.pos] }
func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// ParseProgram parses a sequence of top-level forms until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for p.peek().Kind != TokenEOF {
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		l, ok := n.(*ast.List)
		if !ok {
			return nil, fmt.Errorf("top-level form at line %d must be a list", n.Line())
		}
		prog.Forms = append(prog.Forms, l)
	}
	return prog, nil
}

func (p *Parser) parseNode() (ast.Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenLParen:
		return p.parseList()
	case TokenString:
		p.advance()
		return &ast.Atom{Text: tok.Text, Ln: tok.Line, Quoted: true}, nil
	case TokenAtom:
		p.advance()
		return &ast.Atom{Text: tok.Text, Ln: tok.Line}, nil
	case TokenRParen:
		return nil, fmt.Errorf("unexpected ')' at line %d", tok.Line)
	default:
		return nil, fmt.Errorf("unexpected end of input")
	}
}

func (p *Parser) parseList() (ast.Node, error) {
	open := p.advance() // consume '('
	list := &ast.List{Ln: open.Line}
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			return nil, fmt.Errorf("unterminated list starting at line %d", open.Line)
		}
		if tok.Kind == TokenRParen {
			p.advance()
			return list, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, n)
	}
}
