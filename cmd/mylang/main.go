package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	smart "github.com/unix-world/smartgo"

	"github.com/matritsa4hacker/mylang/pkg/compiler/lexer"
	"github.com/matritsa4hacker/mylang/pkg/compiler/parser"
	"github.com/matritsa4hacker/mylang/pkg/interp"
)

func main() {
	defer smart.PanicHandler()

	expr := flag.String("e", "", "evaluate a single expression and exit")
	debug := flag.Bool("debug", false, "log tokens and parse tree for each input")
	flag.Parse()

	if *expr != "" {
		result, err := evaluate(smart.StrTrimWhitespaces(*expr), *debug)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(interp.FormatResult(result))
		return
	}

	run(os.Stdin, os.Stdout, *debug)
}

// run drives the read-eval-print loop until the exit command or EOF. Every
// stage failure is caught here, printed, and the loop resumes; one bad
// line never ends the session.
func run(in io.Reader, out io.Writer, debug bool) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, ">>> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if smart.StrTrimWhitespaces(line) == "exit" {
			return
		}

		result, err := evaluate(line, debug)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, interp.FormatResult(result))
	}
}

// evaluate is interp.Interpret with an optional stage-by-stage dump.
func evaluate(source string, debug bool) (float64, error) {
	if !debug {
		return interp.Interpret(source)
	}

	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return 0, err
	}
	for _, tok := range tokens {
		log.Printf("[DEBUG] token %v %q at %d", tok.Kind, tok.Literal, tok.Offset)
	}

	tree, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return 0, err
	}
	log.Printf("[DEBUG] tree %s", tree)

	return interp.Evaluate(tree)
}
