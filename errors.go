package lox

import (
	"fmt"

	"github.com/juju/errors"
)

// LexicalError is raised by the scanner: unrecognized character,
// unterminated string, or a malformed number literal.
type LexicalError struct {
	Line    int
	Message string
	cause   error
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("[LexicalError | Line %d] %s", e.Line, e.Message)
}

// Unwrap exposes the juju/errors-annotated cause so callers can use
// errors.Is/errors.As or errors.Cause on a LexicalError.
func (e *LexicalError) Unwrap() error { return e.cause }

func newLexicalError(line int, format string, args ...any) *LexicalError {
	msg := fmt.Sprintf(format, args...)
	return &LexicalError{
		Line:    line,
		Message: msg,
		cause:   errors.NewNotValid(fmt.Errorf("%s", msg), "lexical error"),
	}
}

// ParseError is raised by the parser: a grammar violation, a missing
// expected token, or an invalid assignment target. Carries the offending
// token.
type ParseError struct {
	Token   *Token
	Line    int
	Message string
	cause   error
}

func (e *ParseError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("[ParseError | Line %d near '%s'] %s", e.Line, e.Token.Text, e.Message)
	}
	return fmt.Sprintf("[ParseError | Line %d] %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(tok *Token, format string, args ...any) *ParseError {
	msg := fmt.Sprintf(format, args...)
	line := 0
	if tok != nil {
		line = tok.Line
	}
	return &ParseError{
		Token:   tok,
		Line:    line,
		Message: msg,
		cause:   errors.Annotate(fmt.Errorf("%s", msg), "parsing"),
	}
}

// RuntimeError is raised by the evaluator: an undefined variable, a
// type mismatch in an operator, a non-callable callee, an arity
// mismatch, or the parameter-count cap being exceeded. Carries the
// operator/identifier token.
type RuntimeError struct {
	Token   *Token
	Line    int
	Message string
	cause   error
}

func (e *RuntimeError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("[RuntimeError | Line %d near '%s'] %s", e.Line, e.Token.Text, e.Message)
	}
	return fmt.Sprintf("[RuntimeError | Line %d] %s", e.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error { return e.cause }

func newRuntimeError(tok *Token, format string, args ...any) *RuntimeError {
	msg := fmt.Sprintf(format, args...)
	line := 0
	if tok != nil {
		line = tok.Line
	}
	return &RuntimeError{
		Token:   tok,
		Line:    line,
		Message: msg,
		cause:   errors.Trace(fmt.Errorf("%s", msg)),
	}
}
