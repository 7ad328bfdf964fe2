package lox

import (
	"strconv"
	"strings"
)

const scannerEOF rune = -1

// Scanner turns a source string into a token stream, by character cursor
// with a 1-based line counter and single-rune lookahead.
type Scanner struct {
	name   string
	source []rune
	start  int
	pos    int
	line   int
	tokens []*Token
}

// Tokenize scans text and returns its token stream terminated by a single
// EOF token, or the first LexicalError encountered. On error, it returns
// whatever tokens were produced so far alongside the error.
func Tokenize(name, text string) ([]*Token, error) {
	s := &Scanner{
		name:   name,
		source: []rune(text),
		line:   1,
		tokens: make([]*Token, 0, 64),
	}
	for !s.isAtEnd() {
		s.start = s.pos
		if err := s.scanToken(); err != nil {
			scannerLogger.Debugf("%s: lexical error at line %d: %v", name, s.line, err)
			return s.tokens, err
		}
	}
	s.tokens = append(s.tokens, &Token{Typ: EOF, Text: "", Line: s.line})
	scannerLogger.Tracef("%s: produced %d tokens", name, len(s.tokens))
	return s.tokens, nil
}

func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

func (s *Scanner) advance() rune {
	r := s.source[s.pos]
	s.pos++
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return scannerEOF
	}
	return s.source[s.pos]
}

func (s *Scanner) peekNext() rune {
	if s.pos+1 >= len(s.source) {
		return scannerEOF
	}
	return s.source[s.pos+1]
}

// matchNext consumes the next rune and returns true if it equals want;
// otherwise leaves the cursor unchanged.
func (s *Scanner) matchNext(want rune) bool {
	if s.peek() != want {
		return false
	}
	s.pos++
	return true
}

func (s *Scanner) text() string {
	return string(s.source[s.start:s.pos])
}

func (s *Scanner) emit(typ TokenType) {
	s.tokens = append(s.tokens, &Token{Typ: typ, Text: s.text(), Line: s.line})
}

func (s *Scanner) emitLiteral(typ TokenType, text string, literal any) {
	s.tokens = append(s.tokens, &Token{Typ: typ, Text: text, Line: s.line, Literal: literal})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

// scanToken scans and emits exactly one token (or skips whitespace/a
// newline and emits nothing), advancing the cursor past it.
func (s *Scanner) scanToken() error {
	c := s.advance()

	switch c {
	case ' ', '\r', '\t':
		return nil
	case '\n':
		s.line++
		return nil

	case '(':
		s.emit(LPAREN)
	case ')':
		s.emit(RPAREN)
	case '{':
		s.emit(LBRACE)
	case '}':
		s.emit(RBRACE)
	case ',':
		s.emit(COMMA)
	case '.':
		s.emit(DOT)
	case ';':
		s.emit(SEMICOLON)
	case '+':
		s.emit(PLUS)
	case '-':
		s.emit(MINUS)
	case '*':
		s.emit(STAR)
	case '/':
		s.emit(SLASH)

	case '!':
		if s.matchNext('=') {
			s.emit(BANG_EQUAL)
		} else {
			s.emit(BANG)
		}
	case '=':
		if s.matchNext('=') {
			s.emit(EQUAL_EQUAL)
		} else {
			s.emit(EQUAL)
		}
	case '<':
		if s.matchNext('=') {
			s.emit(LTE)
		} else {
			s.emit(LT)
		}
	case '>':
		if s.matchNext('=') {
			s.emit(GTE)
		} else {
			s.emit(GT)
		}
	case '&':
		if s.matchNext('&') {
			s.emit(LOGIC_AND)
		} else {
			return newLexicalError(s.line, "Invalid character %c", c)
		}
	case '|':
		if s.matchNext('|') {
			s.emit(LOGIC_OR)
		} else {
			return newLexicalError(s.line, "Invalid character %c", c)
		}

	case '"', '\'':
		return s.scanString(c)

	default:
		switch {
		case isDigit(c):
			return s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			return newLexicalError(s.line, "Invalid character %c", c)
		}
	}
	return nil
}

// scanString consumes a quoted string opened by quote, up to the matching
// close quote. No escape processing. Newlines embedded in the string
// still increment the line counter.
func (s *Scanner) scanString(quote rune) error {
	startLine := s.line
	var sb strings.Builder
	for {
		if s.isAtEnd() {
			return newLexicalError(startLine, "Unterminated string")
		}
		c := s.advance()
		if c == quote {
			break
		}
		if c == '\n' {
			s.line++
		}
		sb.WriteRune(c)
	}
	s.emitLiteral(STRING, sb.String(), sb.String())
	return nil
}

// scanNumber consumes one or more digits, optionally followed by '.' and
// one or more digits. A digit run immediately followed by a character
// that isn't whitespace, a structural/operator character, or EOF is a
// LexicalError.
func (s *Scanner) scanNumber() error {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	if !s.isAtEnd() {
		next := s.peek()
		if !isValidNumberFollower(next) {
			return newLexicalError(s.line, "Invalid numeric character")
		}
	}

	text := s.text()
	n, err := parseFloat(text)
	if err != nil {
		return newLexicalError(s.line, "Invalid numeric character")
	}
	s.emitLiteral(NUMBER, text, n)
	return nil
}

func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

func isValidNumberFollower(r rune) bool {
	if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
		return true
	}
	switch r {
	case '(', ')', '{', '}', ',', '.', ';', '+', '-', '*', '/',
		'!', '=', '<', '>', '&', '|':
		return true
	}
	return false
}

// scanIdentifier consumes a letter followed by letters or digits. Emits
// the matching keyword type if the text is reserved, otherwise IDENTIFIER.
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.text()
	if typ, ok := keywords[text]; ok {
		switch typ {
		case TRUE:
			s.emitLiteral(TRUE, text, true)
		case FALSE:
			s.emitLiteral(FALSE, text, false)
		case NIL:
			s.emitLiteral(NIL, text, nil)
		default:
			s.emit(typ)
		}
		return
	}
	s.emitLiteral(IDENTIFIER, text, text)
}
