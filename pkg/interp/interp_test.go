package interp_test

import (
	"errors"
	"testing"

	"github.com/matritsa4hacker/mylang/pkg/compiler/ast"
	"github.com/matritsa4hacker/mylang/pkg/interp"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{"2+3*4", 14}, // multiplication binds tighter
		{"10-2-3", 5}, // left-associative, not 11
		{"2*3*4", 24},
		{"7/2", 3.5}, // true division, not truncation
		{"8/2/2", 2},
		{"1 + 2 * 3 - 4", 3},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := interp.Interpret(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Interpret(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	for _, src := range []string{"5/0", "1+10/0"} {
		t.Run(src, func(t *testing.T) {
			_, err := interp.Interpret(src)
			var evalErr *interp.EvalError
			if !errors.As(err, &evalErr) {
				t.Fatalf("expected EvalError, got %T: %v", err, err)
			}
			if evalErr.Kind != interp.DivideByZero {
				t.Errorf("expected DivideByZero, got %v", evalErr.Kind)
			}
		})
	}
}

// The parser never produces operators outside + - * /, so this guard is
// only reachable with a hand-built tree.
func TestUnknownOperatorGuard(t *testing.T) {
	tree := &ast.BinaryOperation{
		Left:     &ast.NumberLiteral{Value: 1},
		Operator: "%",
		Right:    &ast.NumberLiteral{Value: 2},
	}

	_, err := interp.Evaluate(tree)
	var evalErr *interp.EvalError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvalError, got %v", err)
	}
	if evalErr.Kind != interp.UnknownOperator || evalErr.Operator != "%" {
		t.Errorf("expected UnknownOperator %%, got %v %q", evalErr.Kind, evalErr.Operator)
	}
}

func TestInterpretPropagatesStageErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"lex failure", "2 @ 3"},
		{"parse failure", "(2+3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := interp.Interpret(tt.src); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{3.5, "3.5"},
		{0, "0"},
		{-2, "-2"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		if got := interp.FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
