// SPDX-License-Identifier: MIT
package scanner

import (
	"unicode"
	"unicode/utf8"
)

type (
	// Scanner produces Tokens on demand from a shared host buffer & exposes
	// precise get/set of its read cursor.
	//
	// The cursor is shared with the host document parser: the embedded
	// grammar's parser sets it once, after matching its closing delimiter,
	// so the host resumes scanning exactly where the entry ended.
	Scanner struct {
		cfg *Config

		// buffer is the shared host buffer.
		buffer []rune
		// start is the rune offset scanning begins at.
		start int

		// pos is the current rune offset into buffer.
		pos int
		// line & col track the 1-based source position of pos.
		line, col int

		// pushback replays tokens handed back via Unread.
		pushback *Token
	}
)

const emptyRune rune = 0

// Improves on performance compared to ORs.
//
// Reduces function cost improving probability of inlining.
var (
	whitespace = [utf8.RuneSelf]bool{
		' ':  true,
		'\t': true,
		'\r': true,
		'\n': true,
	}

	// NOTE: `-` is excluded; it is an operator terminal & must never be
	// consumed into a lexeme.
	alphaSymbols = [utf8.RuneSelf]bool{
		'_': true,
	}

	punctuation = map[rune]Kind{
		'{': KindLBrace,
		'}': KindRBrace,
		'+': KindPlus,
		'-': KindMinus,
		'*': KindStar,
		'/': KindSlash,
		'(': KindLParen,
		')': KindRParen,
	}
)

// New creates a new Scanner for the input buffer.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		cfg:    defConfig,
		buffer: []rune{},
	}

	for _, opt := range opts {
		opt(s)
	}
	s.SetPos(s.start)

	return s
}

// Config retrieves the Scanner's Config.
func (s *Scanner) Config() *Config { return s.cfg }

// Pos retrieves the current rune offset of the read cursor.
func (s *Scanner) Pos() int { return s.pos }

// SetPos repositions the read cursor, discarding pushed-back tokens &
// recomputing the line/column bookkeeping.
//
// Only the embedded grammar's parser may call this on a shared buffer, at
// its single hand-off point.
func (s *Scanner) SetPos(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(s.buffer):
		pos = len(s.buffer)
	}

	s.pos, s.pushback = pos, nil

	s.line, s.col = 1, 1
	for _, r := range s.buffer[:pos] {
		if r == '\n' {
			s.line++
			s.col = 1
			continue
		}
		s.col++
	}
}

// Scan produces the next Token, advancing the read cursor.
//
// Scanning past the end of the buffer yields KindEOF tokens indefinitely.
func (s *Scanner) Scan() (tok *Token) {
	if s.pushback != nil {
		tok, s.pushback = s.pushback, s.pushback.Next

		return
	}

	tok = s.scan()
	if s.cfg.Debug {
		s.cfg.Logger.Debugf("scan: %s", tok)
	}

	return
}

// Peek retrieves the next Token without consuming it.
//
// Repeated calls yield the same Token until Scan consumes it.
func (s *Scanner) Peek() *Token {
	if s.pushback == nil {
		s.pushback = s.scan()
	}

	return s.pushback
}

// Unread pushes tok back so the next Scan returns it again, chaining onto
// any Token already pushed back.
func (s *Scanner) Unread(tok *Token) {
	tok.Next = s.pushback
	s.pushback = tok
}

// scan performs the tokenization grunt work.
func (s *Scanner) scan() *Token {
	s.skipWhitespace()

	tok := &Token{Line: s.line, Col: s.col, Pos: s.pos}

	r, ok := s.next()
	if !ok {
		tok.Kind = KindEOF
		return tok
	}

	switch {
	case r == '/' && (s.peekRune() == '/' || s.peekRune() == '*'):
		s.scanComment(tok)
	case r == '$':
		s.acceptWhile(isValue)
		tok.Kind, tok.Val = KindVariable, s.lexeme(tok.Pos)
	case r == '"':
		s.scanString(tok)
	case isNumeric(r), r == '.' && isNumeric(s.peekRune()):
		s.scanNumber(tok)
	case isAlpha(r):
		s.acceptWhile(isValue)
		tok.Kind, tok.Val = KindIdent, s.lexeme(tok.Pos)
	default:
		kind, ok := punctuation[r]
		if !ok {
			kind = KindNoMatch
		}
		tok.Kind, tok.Val = kind, string(r)
	}

	return tok
}

// scanComment consumes a `//` or `/* */` comment; the leading `/` is already
// consumed.
func (s *Scanner) scanComment(tok *Token) {
	tok.Kind = KindComment

	if r, _ := s.next(); r == '/' {
		for {
			r, ok := s.next()
			if !ok || r == '\n' {
				break
			}
		}
		tok.Val = s.lexeme(tok.Pos)

		return
	}

	// Block comment; unterminated comments run to the end of the buffer.
	var prev rune
	for {
		r, ok := s.next()
		if !ok || (prev == '*' && r == '/') {
			break
		}
		prev = r
	}
	tok.Val = s.lexeme(tok.Pos)
}

// scanString consumes a double-quoted string; the opening quote is already
// consumed. The lexeme retains its quotes to keep position bookkeeping
// exact.
func (s *Scanner) scanString(tok *Token) {
	tok.Kind = KindString

	for {
		r, ok := s.next()
		if !ok || r == '"' {
			break
		}
		if r == '\\' {
			// Escaped rune; consume blindly.
			_, _ = s.next()
		}
	}
	tok.Val = s.lexeme(tok.Pos)
}

// scanNumber consumes `digits [. digits] [eE [+-] digits]`; the first rune
// is already consumed.
//
// A leading sign is never part of the lexeme: `-` must always lex as the
// operator terminal.
func (s *Scanner) scanNumber(tok *Token) {
	tok.Kind = KindNumber

	s.acceptWhile(isNumeric)
	if s.peekRune() == '.' {
		_, _ = s.next()
		s.acceptWhile(isNumeric)
	}
	if r := s.peekRune(); r == 'e' || r == 'E' {
		_, _ = s.next()
		if r := s.peekRune(); r == '+' || r == '-' {
			_, _ = s.next()
		}
		s.acceptWhile(isNumeric)
	}

	tok.Val = s.lexeme(tok.Pos)
}

// next consumes the next rune in the buffer.
func (s *Scanner) next() (r rune, ok bool) {
	if s.pos >= len(s.buffer) {
		return
	}

	r, ok = s.buffer[s.pos], true
	s.pos++

	if r == '\n' {
		s.line++
		s.col = 1
		return
	}
	s.col++

	return
}

// peekRune retrieves the next rune without consuming it.
func (s *Scanner) peekRune() rune {
	if s.pos >= len(s.buffer) {
		return emptyRune
	}

	return s.buffer[s.pos]
}

// acceptWhile consumes runes while condition is true.
func (s *Scanner) acceptWhile(fn func(rune) bool) {
	for s.pos < len(s.buffer) && fn(s.buffer[s.pos]) {
		_, _ = s.next()
	}
}

// skipWhitespace discards whitespace before the next token.
func (s *Scanner) skipWhitespace() { s.acceptWhile(isWhitespace) }

// lexeme retrieves the buffer content from start to the read cursor.
func (s *Scanner) lexeme(start int) string { return string(s.buffer[start:s.pos]) }

// isWhitespace return true for whitespace, newline & carriage return.
func isWhitespace(r rune) bool { return r < utf8.RuneSelf && whitespace[r] }

// isAlpha return true for an alphabetic sequence.
func isAlpha(r rune) bool {
	return (r < utf8.RuneSelf && alphaSymbols[r]) || unicode.IsLetter(r)
}

// isNumeric return true for a decimal digit.
func isNumeric(r rune) bool { return unicode.IsDigit(r) }

// isValue return true for an alphanumeric sequence.
func isValue(r rune) bool { return isAlpha(r) || isNumeric(r) }
