// Command golox runs Lox source: a file if given an argument, or a
// line-at-a-time REPL otherwise. Peripheral glue around the lox package's
// scan/parse/interpret core.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/juju/loggo"

	lox "github.com/rz1993/GoldiLox"
)

const (
	exitLexical = 1
	exitParse   = 2
	exitRuntime = 3
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	dumpAST := flag.Bool("dump-ast", false, "write the parsed statement list as YAML to stderr before evaluating")
	flag.Parse()

	if *verbose {
		lox.SetLogLevel(loggo.DEBUG)
	}

	if flag.NArg() > 0 {
		os.Exit(runFile(flag.Arg(0), *dumpAST))
	}
	runREPL(*dumpAST)
}

func runFile(path string, dumpAST bool) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: %v\n", err)
		return exitRuntime
	}
	return evaluate(path, string(data), dumpAST)
}

func runREPL(dumpAST bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		// The REPL keeps reading further lines after any error in a
		// phase; only the file runner maps errors to a process exit code.
		evaluate("stdin", scanner.Text(), dumpAST)
	}
}

// evaluate runs one program through the three core phases and reports the
// first failing phase via report(), returning the matching exit code.
// Phase precedence is earliest-wins: a lexical error means the parser and
// interpreter never ran at all.
func evaluate(name, text string, dumpAST bool) int {
	tokens, err := lox.Tokenize(name, text)
	if err != nil {
		report(name, err)
		return exitLexical
	}

	stmts, err := lox.Parse(name, tokens)
	if err != nil {
		report(name, err)
		return exitParse
	}

	if dumpAST {
		if out, err := lox.DumpAST(stmts); err == nil {
			fmt.Fprintln(os.Stderr, string(out))
		}
	}

	it := lox.NewInterpreter(os.Stdout)
	if err := it.Interpret(stmts); err != nil {
		report(name, err)
		return exitRuntime
	}

	return 0
}

// report prints the source name, the offending token if any, and the
// error's class and detail, one line each.
func report(name string, err error) {
	fmt.Fprintf(os.Stderr, "File <%s>\n", name)
	switch e := err.(type) {
	case *lox.LexicalError:
		fmt.Fprintf(os.Stderr, "LexicalError (line %d): %s\n", e.Line, e.Message)
	case *lox.ParseError:
		if e.Token != nil {
			fmt.Fprintf(os.Stderr, "\"Token %s\"\n", e.Token.Text)
		}
		fmt.Fprintf(os.Stderr, "ParseError (line %d): %s\n", e.Line, e.Message)
	case *lox.RuntimeError:
		if e.Token != nil {
			fmt.Fprintf(os.Stderr, "\"Token %s\"\n", e.Token.Text)
		}
		fmt.Fprintf(os.Stderr, "RuntimeError (line %d): %s\n", e.Line, e.Message)
	default:
		fmt.Fprintln(os.Stderr, err.Error())
	}
}
