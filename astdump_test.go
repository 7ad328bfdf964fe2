package lox

import (
	"strings"
	"testing"
)

func TestDumpASTProducesReadableYAML(t *testing.T) {
	stmts := mustParse(t, `var a = 1 + 2; fun f(x) { return x; } if (a > 0) { print a; } else { print 0; }`)
	out, err := DumpAST(stmts)
	if err != nil {
		t.Fatalf("DumpAST returned an error: %v", err)
	}
	text := string(out)
	for _, want := range []string{"VarDecl", "FunDecl", "IfStmt", "Binary"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected dump to mention %q, got:\n%s", want, text)
		}
	}
}
