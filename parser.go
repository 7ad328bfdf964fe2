package lox

// Parser is a recursive-descent parser with a single token cursor: a flat
// index into a token slice plus small match/consume/peek helpers, rather
// than a channel or iterator-based token source.
type Parser struct {
	name   string
	tokens []*Token
	idx    int
}

// Parse turns a token stream into a list of top-level declarations, or
// returns the first ParseError encountered.
func Parse(name string, tokens []*Token) ([]Stmt, error) {
	p := &Parser{name: name, tokens: tokens}
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			parserLogger.Debugf("%s: parse error: %v", name, err)
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	parserLogger.Tracef("%s: parsed %d top-level statements", name, len(stmts))
	return stmts, nil
}

func (p *Parser) current() *Token {
	return p.tokens[p.idx]
}

func (p *Parser) isAtEnd() bool {
	return p.current().Typ == EOF
}

func (p *Parser) advance() *Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.idx++
	}
	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.current().Typ == typ
}

// match advances and returns true if the current token's type is one of
// types; otherwise it leaves the cursor unchanged.
func (p *Parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type or fails with a ParseError
// carrying msg.
func (p *Parser) consume(typ TokenType, msg string) (*Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}
	return nil, newParseError(p.current(), "%s", msg)
}
