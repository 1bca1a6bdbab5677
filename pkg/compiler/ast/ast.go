package ast

import "strconv"

// Expr represents a node of an arithmetic expression tree.
type Expr interface {
	exprNode()
	// String reconstitutes the expression with explicit grouping, so the
	// parse shape is visible: 2*3*4 renders as ((2*3)*4).
	String() string
}

// NumberLiteral is a leaf holding an integer literal's value.
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) exprNode() {}

func (n *NumberLiteral) String() string { return strconv.FormatInt(n.Value, 10) }

// BinaryOperation applies one of + - * / to two subtrees. Each node
// exclusively owns its Left and Right; the tree has no sharing.
type BinaryOperation struct {
	Left     Expr
	Operator string
	Right    Expr
}

func (b *BinaryOperation) exprNode() {}

func (b *BinaryOperation) String() string {
	return "(" + b.Left.String() + b.Operator + b.Right.String() + ")"
}
