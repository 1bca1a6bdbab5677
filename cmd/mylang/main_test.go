package main

import (
	"bytes"
	"strings"
	"testing"
)

func runSession(input string) string {
	var out bytes.Buffer
	run(strings.NewReader(input), &out, false)
	return out.String()
}

func TestReplExitEvaluatesNothing(t *testing.T) {
	got := runSession("exit\n")
	if got != ">>> " {
		t.Errorf("expected a single prompt and no output, got %q", got)
	}
}

func TestReplExitIsTrimmed(t *testing.T) {
	got := runSession("  exit  \n1+1\n")
	if got != ">>> " {
		t.Errorf("expected session to stop before evaluating, got %q", got)
	}
}

func TestReplSession(t *testing.T) {
	input := "2+3*4\n7/2\n(2+3)\n5/0\n2 @ 3\nexit\n"
	want := ">>> 14\n" +
		">>> 3.5\n" +
		">>> Error: expected token NUMBER, but got LPAREN\n" +
		">>> Error: division by zero\n" +
		">>> Error: unexpected character \"@\" at position 2\n" +
		">>> "

	if got := runSession(input); got != want {
		t.Errorf("session transcript mismatch:\ngot  %q\nwant %q", got, want)
	}
}

// A failing line never ends the session; the next line still evaluates.
func TestReplRecoversAfterError(t *testing.T) {
	got := runSession("#\n10-2-3\nexit\n")
	want := ">>> Error: unexpected character \"#\" at position 0\n" +
		">>> 5\n" +
		">>> "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplEndsCleanlyOnEOF(t *testing.T) {
	got := runSession("1+1\n")
	want := ">>> 2\n>>> "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
