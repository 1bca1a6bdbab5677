package lexer

// Kind represents the lexical category assigned to a token.
type Kind uint8

const (
	KindNumber Kind = iota
	KindString
	KindIdentifier
	KindAssign // =
	KindOperator
	KindLParen // (
	KindRParen // )
	KindLBrace // {
	KindRBrace // }
	KindNewline

	// KindEOF is never produced by Tokenize; the parser uses it as the
	// current token of an empty stream.
	KindEOF
)

var kindNames = []string{
	"NUMBER",
	"STRING",
	"IDENTIFIER",
	"ASSIGN",
	"OPERATOR",
	"LPAREN",
	"RPAREN",
	"LBRACE",
	"RBRACE",
	"NEWLINE",
	"EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Token is a classified lexical unit. Literal is always a non-empty
// substring of the source; Offset is its byte position.
type Token struct {
	Kind    Kind
	Literal string
	Offset  int
}
