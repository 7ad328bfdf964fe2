package lox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	_, err := Run("t", src, &buf)
	return buf.String(), err
}

func TestScenarioLogicalAndPrint(t *testing.T) {
	out, err := runProgram(t, `var a = 2 + 3; var b = 3 + 4; if (a > 3 && b < 10) { print a; print b; }`)
	require.NoError(t, err)
	assert.Equal(t, "5\n7\n", out)
}

// closures capture by reference, not by value
func TestScenarioClosureCapturesMutableState(t *testing.T) {
	out, err := runProgram(t, `
		fun make() {
			var x = 0;
			fun inc() {
				x = x + 1;
				return x;
			}
			return inc;
		}
		var c = make();
		print c();
		print c();
		print c();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

// for-loop desugaring
func TestScenarioForLoop(t *testing.T) {
	out, err := runProgram(t, `for (var i = 0; i < 3; i = i + 1) { print i; }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

// string concatenation vs. mixed-type error
func TestScenarioStringConcatenation(t *testing.T) {
	out, err := runProgram(t, `print "hi" + " " + "there";`)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestScenarioMixedTypeAdditionIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print 1 + "x";`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok, "expected *RuntimeError, got %T", err)
}

func TestScenarioWhileLoop(t *testing.T) {
	out, err := runProgram(t, `var n = 10; while (n > 0) { n = n - 1; } print n;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestScenarioUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print foo;`)
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok, "expected *RuntimeError, got %T", err)
	assert.Contains(t, rerr.Message, "foo")
}

func TestAssignmentNeverCreatesABinding(t *testing.T) {
	_, err := runProgram(t, `a = 1;`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestVarDeclWithoutInitializerBindsNil(t *testing.T) {
	out, err := runProgram(t, `var a; print a;`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestPrintFormatsNumberWithoutTrailingZero(t *testing.T) {
	out, err := runProgram(t, `print 5.0; print 5.5; print true; print false; print nil;`)
	require.NoError(t, err)
	assert.Equal(t, "5\n5.5\ntrue\nfalse\nnil\n", out)
}

func TestDivisionByZeroIsNotAnError(t *testing.T) {
	out, err := runProgram(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "+Inf\n-Inf\nNaN\n", out)
}

func TestBlockScopeIsRestoredOnReturnUnwinding(t *testing.T) {
	out, err := runProgram(t, `
		fun f() {
			{
				var x = 1;
				return x;
			}
		}
		print f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `var x = 1; x();`)
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestParameterCapRejectsMoreThan16Params(t *testing.T) {
	params := ""
	for i := 0; i < 17; i++ {
		if i > 0 {
			params += ", "
		}
		params += string(rune('a' + i))
	}
	_, err := runProgram(t, "fun f("+params+") { return 1; }")
	require.Error(t, err)
	_, ok := err.(*RuntimeError)
	assert.True(t, ok)
}

func TestTruthinessOfZeroAndEmptyString(t *testing.T) {
	out, err := runProgram(t, `if (0) { print "zero truthy"; } if ("") { print "empty truthy"; }`)
	require.NoError(t, err)
	assert.Equal(t, "zero truthy\nempty truthy\n", out)
}

func TestNilEqualityRules(t *testing.T) {
	out, err := runProgram(t, `print nil == nil; print nil == 0; print 1 == 1; print 1 == "1";`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse\ntrue\nfalse\n", out)
}
