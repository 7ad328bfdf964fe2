package lox

// expression := assignment
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment := IDENT "=" assignment | logic_or
//
// The left side is parsed as a full expression; if followed by '=', it
// must be a *Variable, else the parser fails with a ParseError pointing
// at the '=' token.
func (p *Parser) assignment() (Expr, error) {
	left, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(EQUAL) {
		equals := p.tokens[p.idx-1]
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := left.(*Variable); ok {
			return &Assignment{Name: v.Name, Value: value}, nil
		}
		return nil, newParseError(equals, "Invalid assignment target")
	}

	return left, nil
}

// logic_or := logic_and ("||" logic_and)*
func (p *Parser) logicOr() (Expr, error) {
	return p.logicalLeftAssoc(p.logicAnd, LOGIC_OR)
}

// logic_and := equality ("&&" equality)*
func (p *Parser) logicAnd() (Expr, error) {
	return p.logicalLeftAssoc(p.equality, LOGIC_AND)
}

// logicalLeftAssoc folds a left-associative run of Logical nodes, shared
// across the logic_or/logic_and tiers; each tier supplies its own operand
// parser and operator set.
func (p *Parser) logicalLeftAssoc(next func() (Expr, error), types ...TokenType) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		op := p.tokens[p.idx-1]
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &Logical{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// equality := comparison (("==" | "!=") comparison)*
func (p *Parser) equality() (Expr, error) {
	return p.binaryLeftAssoc(p.comparison, EQUAL_EQUAL, BANG_EQUAL)
}

// comparison := addition (("<"|"<="|">"|">=") addition)*
func (p *Parser) comparison() (Expr, error) {
	return p.binaryLeftAssoc(p.addition, LT, LTE, GT, GTE)
}

// addition := multiplication (("+"|"-") multiplication)*
func (p *Parser) addition() (Expr, error) {
	return p.binaryLeftAssoc(p.multiplication, PLUS, MINUS)
}

// multiplication := unary ( ("*"|"/") unary )*
func (p *Parser) multiplication() (Expr, error) {
	return p.binaryLeftAssoc(p.unary, STAR, SLASH)
}

func (p *Parser) binaryLeftAssoc(next func() (Expr, error), types ...TokenType) (Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		op := p.tokens[p.idx-1]
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &Binary{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// unary := ("-"|"!") unary | call
func (p *Parser) unary() (Expr, error) {
	if p.match(MINUS, BANG) {
		op := p.tokens[p.idx-1]
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op, Operand: operand}, nil
	}
	return p.call()
}

// call := primary ( "(" args? ")" )*
func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(LPAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// args := expression ("," expression)*
func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(RPAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(RPAREN, "Expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &Call{Callee: callee, Paren: paren, Args: args}, nil
}

// primary := "(" expression ")" | NUMBER | STRING | NIL | TRUE | FALSE | IDENT
func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(NUMBER):
		tok := p.tokens[p.idx-1]
		return &Literal{Value: NumberValue(tok.Literal.(float64))}, nil
	case p.match(STRING):
		tok := p.tokens[p.idx-1]
		return &Literal{Value: StringValue(tok.Literal.(string))}, nil
	case p.match(TRUE):
		return &Literal{Value: BoolValue(true)}, nil
	case p.match(FALSE):
		return &Literal{Value: BoolValue(false)}, nil
	case p.match(NIL):
		return &Literal{Value: Nil}, nil
	case p.match(IDENTIFIER):
		return &Variable{Name: p.tokens[p.idx-1]}, nil
	case p.match(LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(RPAREN, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &Grouping{Expr: expr}, nil
	}
	return nil, newParseError(p.current(), "Expect expression")
}
