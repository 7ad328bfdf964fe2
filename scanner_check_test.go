package lox

import (
	"testing"

	check "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func TestGoCheck(t *testing.T) { check.TestingT(t) }

type ScannerSuite struct{}

var _ = check.Suite(&ScannerSuite{})

func (s *ScannerSuite) TestNumberFollowedByStructuralCharIsValid(c *check.C) {
	toks, err := Tokenize("t", "1+2")
	c.Assert(err, check.IsNil)
	c.Check(len(toks), check.Equals, 4) // NUMBER PLUS NUMBER EOF
	c.Check(toks[0].Typ, check.Equals, NUMBER)
	c.Check(toks[1].Typ, check.Equals, PLUS)
}

func (s *ScannerSuite) TestKeywordTakesPrecedenceOverIdentifier(c *check.C) {
	toks, err := Tokenize("t", "while")
	c.Assert(err, check.IsNil)
	c.Check(toks[0].Typ, check.Equals, WHILE)
}

func (s *ScannerSuite) TestTwoCharOperatorsWinOverOneChar(c *check.C) {
	toks, err := Tokenize("t", "!=")
	c.Assert(err, check.IsNil)
	c.Check(toks[0].Typ, check.Equals, BANG_EQUAL)
}
