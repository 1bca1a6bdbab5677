package lexer

import "fmt"

// LexError reports a character that matches no lexical category.
type LexError struct {
	Char   byte
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", string(e.Char), e.Offset)
}

// matchFunc reports how many bytes of src, anchored at pos, belong to a
// category. Zero means no match.
type matchFunc func(src string, pos int) int

// patterns is a priority list: the first entry that matches at the cursor
// wins, regardless of what a later entry could have matched. Order is part
// of the contract and must not change.
var patterns = []struct {
	kind  Kind
	emit  bool
	match matchFunc
}{
	{KindNumber, true, matchNumber},
	{KindString, true, matchString},
	{KindIdentifier, true, matchIdentifier},
	{KindAssign, true, matchByte('=')},
	{KindOperator, true, matchOperator},
	{KindLParen, true, matchByte('(')},
	{KindRParen, true, matchByte(')')},
	{KindLBrace, true, matchByte('{')},
	{KindRBrace, true, matchByte('}')},
	{KindNewline, true, matchByte('\n')},
	{KindEOF, false, matchSkip}, // whitespace: consumed, never emitted
}

// Tokenize scans source left to right and returns its tokens in source
// order. It stops at the first character no category matches.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	cursor := 0

	for cursor < len(source) {
		matched := false
		for _, p := range patterns {
			n := p.match(source, cursor)
			if n == 0 {
				continue
			}
			if p.emit {
				tokens = append(tokens, Token{
					Kind:    p.kind,
					Literal: source[cursor : cursor+n],
					Offset:  cursor,
				})
			}
			cursor += n
			matched = true
			break
		}
		if !matched {
			return nil, &LexError{Char: source[cursor], Offset: cursor}
		}
	}

	return tokens, nil
}

func matchNumber(src string, pos int) int {
	n := 0
	for pos+n < len(src) && isDigit(src[pos+n]) {
		n++
	}
	return n
}

// matchString accepts a double-quoted literal with no escapes. An
// unterminated quote matches nothing, so the quote itself becomes a
// LexError further down the list.
func matchString(src string, pos int) int {
	if src[pos] != '"' {
		return 0
	}
	for i := pos + 1; i < len(src); i++ {
		if src[i] == '"' {
			return i - pos + 1
		}
	}
	return 0
}

func matchIdentifier(src string, pos int) int {
	if !isAlpha(src[pos]) && src[pos] != '_' {
		return 0
	}
	n := 1
	for pos+n < len(src) && (isAlpha(src[pos+n]) || isDigit(src[pos+n]) || src[pos+n] == '_') {
		n++
	}
	return n
}

func matchOperator(src string, pos int) int {
	switch src[pos] {
	case '+', '-', '*', '/':
		return 1
	}
	return 0
}

// matchSkip consumes a single space or tab, mirroring the one-character
// whitespace category of the lexical grammar.
func matchSkip(src string, pos int) int {
	if src[pos] == ' ' || src[pos] == '\t' {
		return 1
	}
	return 0
}

func matchByte(b byte) matchFunc {
	return func(src string, pos int) int {
		if src[pos] == b {
			return 1
		}
		return 0
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
