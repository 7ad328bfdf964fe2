// Package lox is a tree-walking interpreter for Lox, a small dynamically
// typed imperative language with first-class functions and lexical
// closures.
//
// A program string is scanned into tokens, parsed into an AST, and
// evaluated by walking that AST against a chained environment model:
//
//	tokens, err := lox.Tokenize("main", `print "hi";`)
//	if err != nil {
//	    panic(err)
//	}
//	stmts, err := lox.Parse("main", tokens)
//	if err != nil {
//	    panic(err)
//	}
//	it := lox.NewInterpreter(os.Stdout)
//	if err := it.Interpret(stmts); err != nil {
//	    panic(err)
//	}
//
// Run wraps all three phases for the common case of evaluating a whole
// program at once. The file-runner/REPL driver in cmd/golox calls the
// three phases itself rather than going through Run.
package lox
