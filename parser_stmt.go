package lox

// declaration := varDecl | funDecl | statement
func (p *Parser) declaration() (Stmt, error) {
	switch {
	case p.match(VAR):
		return p.varDecl()
	case p.match(FUN):
		return p.funDecl()
	default:
		return p.statement()
	}
}

// varDecl := "var" IDENT ("=" expression)? ";"
func (p *Parser) varDecl() (Stmt, error) {
	name, err := p.consume(IDENTIFIER, "Expect variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(EQUAL) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarDecl{Name: name, Init: init}, nil
}

// funDecl := "fun" IDENT "(" params? ")" statement
//
// Parameters are parsed as a dedicated list of identifier tokens, and
// non-identifier parameter syntax is rejected at parse time.
func (p *Parser) funDecl() (Stmt, error) {
	name, err := p.consume(IDENTIFIER, "Expect function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(LPAREN, "Expect '(' after function name"); err != nil {
		return nil, err
	}
	var params []*Token
	if !p.check(RPAREN) {
		for {
			param, err := p.consume(IDENTIFIER, "Expect parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(RPAREN, "Expect ')' after parameters"); err != nil {
		return nil, err
	}
	bodyStmt, err := p.statement()
	if err != nil {
		return nil, err
	}
	body, ok := bodyStmt.(*BlockStmt)
	if !ok {
		body = &BlockStmt{Stmts: []Stmt{bodyStmt}}
	}
	return &FunDecl{Name: name, Params: params, Body: body}, nil
}

// statement := exprStmt | printStmt | block | ifStmt | whileStmt
//            | forStmt | returnStmt
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(PRINT):
		return p.printStmt()
	case p.match(LBRACE):
		return p.block()
	case p.match(IF):
		return p.ifStmt()
	case p.match(WHILE):
		return p.whileStmt()
	case p.match(FOR):
		return p.forStmt()
	case p.match(RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// block := "{" declaration* "}"
func (p *Parser) block() (*BlockStmt, error) {
	var stmts []Stmt
	for !p.check(RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(RBRACE, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return &BlockStmt{Stmts: stmts}, nil
}

// ifStmt := "if" expression statement ("else" statement)?
func (p *Parser) ifStmt() (Stmt, error) {
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Cond: cond, Then: thenBranch, Else: elseBranch}, nil
}

// whileStmt := "while" "(" expression ")" declaration
func (p *Parser) whileStmt() (Stmt, error) {
	if _, err := p.consume(LPAREN, "Expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(RPAREN, "Expect ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.declaration()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// forStmt := "for" "(" forInit? ";" expression? ";" expression? ")" statement
//
// Desugars to an equivalent WhileStmt: the increment, if present, is
// appended to the loop body as a BlockStmt([body, ExprStmt(increment)]);
// an absent condition becomes the literal true; an initializer, if
// present, wraps the resulting WhileStmt in BlockStmt([initializer, while]).
func (p *Parser) forStmt() (Stmt, error) {
	if _, err := p.consume(LPAREN, "Expect '(' after 'for'"); err != nil {
		return nil, err
	}

	var initializer Stmt
	switch {
	case p.match(SEMICOLON):
		initializer = nil
	case p.match(VAR):
		v, err := p.varDecl()
		if err != nil {
			return nil, err
		}
		initializer = v
	default:
		e, err := p.exprStmt()
		if err != nil {
			return nil, err
		}
		initializer = e
	}

	var condition Expr
	if !p.check(SEMICOLON) {
		c, err := p.expression()
		if err != nil {
			return nil, err
		}
		condition = c
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after loop condition"); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(RPAREN) {
		inc, err := p.expression()
		if err != nil {
			return nil, err
		}
		increment = inc
	}
	if _, err := p.consume(RPAREN, "Expect ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Stmts: []Stmt{body, &ExprStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &Literal{Value: BoolValue(true)}
	}
	var loop Stmt = &WhileStmt{Cond: condition, Body: body}

	if initializer != nil {
		loop = &BlockStmt{Stmts: []Stmt{initializer, loop}}
	}

	return loop, nil
}

// returnStmt := "return" expression? ";"
//
// A bare "return;" (returning Nil) is accepted alongside the expression
// form.
func (p *Parser) returnStmt() (Stmt, error) {
	var value Expr
	if !p.check(SEMICOLON) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after return value"); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: value}, nil
}

// exprStmt := expression ";"
func (p *Parser) exprStmt() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// printStmt := "print" expression ";"
func (p *Parser) printStmt() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(SEMICOLON, "Expect ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr}, nil
}
