package lox

import "fmt"

// maxParams caps the number of parameters a function declaration may
// carry, enforced at declaration time.
const maxParams = 16

// Callable is any Lox value that can be invoked from a Call expression.
type Callable interface {
	Arity() int
	Call(it *Interpreter, args []Value) (Value, error)
	String() string
}

// Function is a user-declared Lox function: its parameter names, its body,
// and the environment captured at FunDecl execution time (its closure),
// not at parse time.
type Function struct {
	name    string
	params  []*Token
	body    *BlockStmt
	closure *Environment
}

func newFunction(name string, params []*Token, body *BlockStmt, closure *Environment) (*Function, error) {
	if len(params) > maxParams {
		last := params[len(params)-1]
		return nil, newRuntimeError(last, "Cannot have more than %d parameters", maxParams)
	}
	return &Function{name: name, params: params, body: body, closure: closure}, nil
}

func (f *Function) Arity() int { return len(f.params) }

func (f *Function) String() string {
	if f.name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.name)
}

// Call invokes the function: a child environment of the closure,
// parameters bound positionally, the body executed, and any caught return
// signal becomes the result (Nil if the body completes normally). Arity
// is checked by the caller (Call.Eval), which holds the call-site token
// needed for a useful error message; mismatched arity is a RuntimeError
// rather than padding missing arguments with Nil. The prior interpreter
// environment is restored on every exit path by executeBlockBody (see
// interpreter.go).
func (f *Function) Call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, p := range f.params {
		env.Define(p.Text, args[i])
	}
	signal, err := it.executeBlockBody(f.body.Stmts, env)
	if err != nil {
		return Nil, err
	}
	if signal.isReturn {
		return signal.value, nil
	}
	return Nil, nil
}
