package parser

import (
	"fmt"
	"strconv"

	"github.com/matritsa4hacker/mylang/pkg/compiler/ast"
	"github.com/matritsa4hacker/mylang/pkg/compiler/lexer"
)

// ParseError reports a token of the wrong kind at the current position.
type ParseError struct {
	Expected lexer.Kind
	Found    lexer.Kind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected token %v, but got %v", e.Expected, e.Found)
}

// Parser builds an expression tree from a token stream by recursive
// descent. Grammar, left-associative:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := NUMBER
//
// Parentheses and every other lexed category are not part of the grammar;
// they fail in factor.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse returns the tree for the leading expression of the stream.
// Trailing tokens past a complete expression are left unconsumed.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.expr()
}

// current never reads out of range: past-the-end positions clamp to the
// last token, and an empty stream reads as EOF.
func (p *Parser) current() lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Kind: lexer.KindEOF}
	}
	return p.tokens[p.pos]
}

// eat consumes the current token, which must be of the given kind. The
// cursor holds at the last token instead of advancing past it; an
// exhausted stream therefore re-reads its final token. This clamp is
// observable behavior and must stay.
func (p *Parser) eat(kind lexer.Kind) error {
	if tok := p.current(); tok.Kind != kind {
		return &ParseError{Expected: kind, Found: tok.Kind}
	}
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return nil
}

func (p *Parser) expr() (ast.Expr, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.currentIsOperator("+", "-") {
		op := p.current().Literal
		if err := p.eat(lexer.KindOperator); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOperation{Left: node, Operator: op, Right: right}
	}

	return node, nil
}

func (p *Parser) term() (ast.Expr, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.currentIsOperator("*", "/") {
		op := p.current().Literal
		if err := p.eat(lexer.KindOperator); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOperation{Left: node, Operator: op, Right: right}
	}

	return node, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	tok := p.current()
	if err := p.eat(lexer.KindNumber); err != nil {
		return nil, err
	}

	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q: %w", tok.Literal, err)
	}

	return &ast.NumberLiteral{Value: value}, nil
}

func (p *Parser) currentIsOperator(ops ...string) bool {
	tok := p.current()
	if tok.Kind != lexer.KindOperator {
		return false
	}
	for _, op := range ops {
		if tok.Literal == op {
			return true
		}
	}
	return false
}
