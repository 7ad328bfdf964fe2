package lox

import (
	"bufio"
	"io"
	"os"
)

// Interpreter walks a statement list against a chained environment,
// initialized to a fresh root environment. A single mutable "current
// environment" field is threaded through Exec/Eval calls and restored on
// every block/function exit, rather than carried explicitly through every
// call's return value.
type Interpreter struct {
	globals *Environment
	env     *Environment
	out     *bufio.Writer
}

// NewInterpreter returns an interpreter with a fresh root environment,
// printing to w (os.Stdout in production, a buffer in tests).
func NewInterpreter(w io.Writer) *Interpreter {
	root := NewEnvironment(nil)
	return &Interpreter{
		globals: root,
		env:     root,
		out:     bufio.NewWriter(w),
	}
}

// Interpret executes a statement list in order, stopping at the first
// RuntimeError. Buffered print output is flushed when Interpret returns,
// whether or not an error occurred.
func (it *Interpreter) Interpret(stmts []Stmt) error {
	defer it.out.Flush()
	for _, stmt := range stmts {
		if _, err := stmt.Exec(it); err != nil {
			interpreterLogger.Debugf("runtime error: %v", err)
			return err
		}
	}
	return nil
}

func (it *Interpreter) print(s string) {
	it.out.WriteString(s)
	it.out.WriteByte('\n')
}

// executeBlockBody runs stmts against env, restoring the interpreter's
// prior environment on every exit path — normal completion, error, or a
// return signal unwinding through it. The defer guarantees the restore
// runs even if a future change adds a panic somewhere in Exec/Eval.
func (it *Interpreter) executeBlockBody(stmts []Stmt, env *Environment) (signal, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		sig, err := stmt.Exec(it)
		if err != nil {
			return normalSignal, err
		}
		if sig.isReturn {
			return sig, nil
		}
	}
	return normalSignal, nil
}

// Run is a convenience entry point for evaluating a whole program: it
// tokenizes, parses, and interprets text in sequence, stopping at the
// first error. It returns the phase that failed, if any, so the caller
// can choose the matching exit code (1 lexical, 2 parse, 3 runtime).
func Run(name, text string, out io.Writer) (phase string, err error) {
	tokens, err := Tokenize(name, text)
	if err != nil {
		return "lexical", err
	}
	stmts, err := Parse(name, tokens)
	if err != nil {
		return "parse", err
	}
	it := NewInterpreter(out)
	if err := it.Interpret(stmts); err != nil {
		return "runtime", err
	}
	return "", nil
}

// RunFile reads path and evaluates it, writing print output to stdout.
func RunFile(path string) (phase string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "io", err
	}
	return Run(path, string(data), os.Stdout)
}
