package decode

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	cr      = '\r'
	nl      = '\n'
	space   = ' '
	tab     = '\t'
	squote  = '\''
	dquote  = '"'
	comma   = ','
	pound   = '#'
	zero    = 0
)

type Scanner struct {
	input []byte

	curr int
	next int
	char rune

	Position
	seen int
	held bool
}

func Scan(r io.Reader) *Scanner {
	in, _ := io.ReadAll(r)
	sc := Scanner{
		input: bytes.ReplaceAll(in, []byte{cr, nl}, []byte{nl}),
	}
	sc.Line++
	return &sc
}

func (s *Scanner) Scan() Token {
	s.read()
	for isBlank(s.char) {
		s.read()
	}

	var tok Token
	tok.Position = s.Position
	if s.done() {
		tok.Type = EOF
		return tok
	}
	switch {
	case isComment(s.char):
		s.scanComment(&tok)
	case isQuote(s.char):
		s.scanQuote(&tok)
	case isNL(s.char):
		s.scanNewline(&tok)
	case s.char == comma:
		tok.Type = Comma
	default:
		s.scanLiteral(&tok)
	}
	return tok
}

func (s *Scanner) scanComment(tok *Token) {
	s.read()
	for isBlank(s.char) {
		s.read()
	}
	pos := s.curr
	for !isNL(s.char) && !s.done() {
		s.read()
	}
	tok.Type = Comment
	tok.Literal = strings.TrimSpace(string(s.input[pos:s.curr]))
	s.unread()
}

func (s *Scanner) scanQuote(tok *Token) {
	quote := s.char
	s.read()
	pos := s.curr
	for s.char != quote && !s.done() {
		s.read()
	}
	tok.Type = Literal
	tok.Literal = string(s.input[pos:s.curr])
	if s.char != quote {
		tok.Type = Invalid
	}
}

func (s *Scanner) scanNewline(tok *Token) {
	for isNL(s.char) && !s.done() {
		s.read()
	}
	tok.Type = EOL
	if !s.done() {
		s.unread()
	}
}

func (s *Scanner) scanLiteral(tok *Token) {
	pos := s.curr
	for !isBlank(s.char) && !isNL(s.char) && s.char != comma && !s.done() {
		s.read()
	}
	tok.Type = Literal
	tok.Literal = string(s.input[pos:s.curr])
	if isKeyword(tok.Literal) {
		tok.Type = Keyword
	}
	if !s.done() {
		s.unread()
	}
}

func (s *Scanner) read() {
	if s.held {
		s.held = false
		return
	}
	if s.next >= len(s.input) {
		s.char = zero
		s.curr = len(s.input)
		return
	}
	if s.char == nl {
		s.Line++
		s.seen = 0
	}
	r, n := utf8.DecodeRune(s.input[s.next:])
	s.char = r
	s.curr = s.next
	s.next += n
	s.seen++
	s.Column = s.seen
}

func (s *Scanner) unread() {
	s.held = true
}

func (s *Scanner) done() bool {
	return s.curr >= len(s.input)
}

func isBlank(r rune) bool {
	return r == space || r == tab
}

func isNL(r rune) bool {
	return r == nl
}

func isQuote(r rune) bool {
	return r == squote || r == dquote
}

func isComment(r rune) bool {
	return r == pound
}
