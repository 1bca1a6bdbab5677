// Package interp evaluates arithmetic expression trees and exposes the
// whole source -> result pipeline as a single call.
package interp

import (
	"fmt"
	"strconv"

	"github.com/matritsa4hacker/mylang/pkg/compiler/ast"
	"github.com/matritsa4hacker/mylang/pkg/compiler/lexer"
	"github.com/matritsa4hacker/mylang/pkg/compiler/parser"
)

// EvalErrorKind discriminates evaluation failures.
type EvalErrorKind uint8

const (
	// DivideByZero: the right operand of / evaluated to exactly zero.
	DivideByZero EvalErrorKind = iota
	// UnknownOperator: a BinaryOperation carries an operator outside
	// + - * /. Unreachable through the parser; kept as a guard.
	UnknownOperator
)

type EvalError struct {
	Kind     EvalErrorKind
	Operator string
}

func (e *EvalError) Error() string {
	switch e.Kind {
	case DivideByZero:
		return "division by zero"
	case UnknownOperator:
		return fmt.Sprintf("unknown operator %q", e.Operator)
	}
	return "evaluation failed"
}

// Evaluate computes the numeric value of an expression tree. Arithmetic is
// done in float64 so division is exact where possible: 7/2 is 3.5, not 3.
func Evaluate(node ast.Expr) (float64, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return float64(n.Value), nil
	case *ast.BinaryOperation:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Operator {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, &EvalError{Kind: DivideByZero, Operator: "/"}
			}
			return left / right, nil
		default:
			return 0, &EvalError{Kind: UnknownOperator, Operator: n.Operator}
		}
	default:
		return 0, fmt.Errorf("unsupported node type %T", node)
	}
}

// Interpret runs tokenize, parse and evaluate on one source line. The
// first failing stage wins; there are no partial results.
func Interpret(source string) (float64, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return 0, err
	}

	tree, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return 0, err
	}

	return Evaluate(tree)
}

// FormatResult renders a value the way the REPL prints it: whole numbers
// without a decimal point (14), fractional ones with (3.5).
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
