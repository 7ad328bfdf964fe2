package lox

import "gopkg.in/yaml.v2"

// astDumpStmt and astDumpExpr are plain, YAML-marshalable projections of
// the AST's sealed interfaces, produced only for the -dump-ast debug flag.
// Kept separate from Stmt/Expr so the evaluator's node types stay free of
// marshaling tags.
type astDumpStmt struct {
	Kind  string         `yaml:"kind"`
	Line  int            `yaml:"line,omitempty"`
	Text  string         `yaml:"text,omitempty"`
	Expr  *astDumpExpr   `yaml:"expr,omitempty"`
	Body  []*astDumpStmt `yaml:"body,omitempty"`
	Then  *astDumpStmt   `yaml:"then,omitempty"`
	Else  *astDumpStmt   `yaml:"else,omitempty"`
	Cond  *astDumpExpr   `yaml:"cond,omitempty"`
	Name  string         `yaml:"name,omitempty"`
	Parms []string       `yaml:"params,omitempty"`
}

type astDumpExpr struct {
	Kind  string        `yaml:"kind"`
	Value string        `yaml:"value,omitempty"`
	Op    string        `yaml:"op,omitempty"`
	Left  *astDumpExpr  `yaml:"left,omitempty"`
	Right *astDumpExpr  `yaml:"right,omitempty"`
	Inner *astDumpExpr  `yaml:"inner,omitempty"`
	Args  []astDumpExpr `yaml:"args,omitempty"`
}

// DumpAST renders a parsed statement list as YAML, for the cmd/golox
// -dump-ast debug flag.
func DumpAST(stmts []Stmt) ([]byte, error) {
	out := make([]*astDumpStmt, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, dumpStmt(s))
	}
	return yaml.Marshal(out)
}

func dumpStmt(s Stmt) *astDumpStmt {
	switch n := s.(type) {
	case *ExprStmt:
		return &astDumpStmt{Kind: "ExprStmt", Expr: dumpExpr(n.Expr)}
	case *PrintStmt:
		return &astDumpStmt{Kind: "PrintStmt", Expr: dumpExpr(n.Expr)}
	case *BlockStmt:
		body := make([]*astDumpStmt, 0, len(n.Stmts))
		for _, c := range n.Stmts {
			body = append(body, dumpStmt(c))
		}
		return &astDumpStmt{Kind: "BlockStmt", Body: body}
	case *IfStmt:
		d := &astDumpStmt{Kind: "IfStmt", Cond: dumpExpr(n.Cond), Then: dumpStmt(n.Then)}
		if n.Else != nil {
			d.Else = dumpStmt(n.Else)
		}
		return d
	case *WhileStmt:
		return &astDumpStmt{Kind: "WhileStmt", Cond: dumpExpr(n.Cond), Then: dumpStmt(n.Body)}
	case *ReturnStmt:
		if n.Expr == nil {
			return &astDumpStmt{Kind: "ReturnStmt"}
		}
		return &astDumpStmt{Kind: "ReturnStmt", Expr: dumpExpr(n.Expr)}
	case *VarDecl:
		d := &astDumpStmt{Kind: "VarDecl", Name: n.Name.Text}
		if n.Init != nil {
			d.Expr = dumpExpr(n.Init)
		}
		return d
	case *FunDecl:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, p.Text)
		}
		return &astDumpStmt{Kind: "FunDecl", Name: n.Name.Text, Parms: params, Body: []*astDumpStmt{dumpStmt(n.Body)}}
	default:
		return &astDumpStmt{Kind: "Unknown"}
	}
}

func dumpExpr(e Expr) *astDumpExpr {
	switch n := e.(type) {
	case *Literal:
		return &astDumpExpr{Kind: "Literal", Value: n.Value.String()}
	case *Grouping:
		return &astDumpExpr{Kind: "Grouping", Inner: dumpExpr(n.Expr)}
	case *Variable:
		return &astDumpExpr{Kind: "Variable", Value: n.Name.Text}
	case *Assignment:
		return &astDumpExpr{Kind: "Assignment", Value: n.Name.Text, Inner: dumpExpr(n.Value)}
	case *Logical:
		return &astDumpExpr{Kind: "Logical", Op: n.Op.Text, Left: dumpExpr(n.Left), Right: dumpExpr(n.Right)}
	case *Binary:
		return &astDumpExpr{Kind: "Binary", Op: n.Op.Text, Left: dumpExpr(n.Left), Right: dumpExpr(n.Right)}
	case *Unary:
		return &astDumpExpr{Kind: "Unary", Op: n.Op.Text, Inner: dumpExpr(n.Operand)}
	case *Call:
		args := make([]astDumpExpr, 0, len(n.Args))
		for _, a := range n.Args {
			args = append(args, *dumpExpr(a))
		}
		return &astDumpExpr{Kind: "Call", Inner: dumpExpr(n.Callee), Args: args}
	default:
		return &astDumpExpr{Kind: "Unknown"}
	}
}
