// SPDX-License-Identifier: MIT
package scanner

import "fmt"

type (
	// Kind int identifying the lexical category of a Token.
	Kind int

	// Token is an immutable lexical unit produced by the Scanner.
	//
	// Val is owned independently of the source buffer, so a Token survives
	// cursor repositioning on the buffer it was scanned from.
	Token struct {
		// Next links a pushed-back token for lookahead replay.
		Next *Token

		// Val is the literal lexeme.
		Val string

		// Kind is the lexical category.
		Kind Kind

		// Line & Col are the 1-based source position, used for diagnostics.
		Line, Col int

		// Pos is the absolute rune offset of the token's first character in
		// the host buffer.
		Pos int
	}
)

// Token kinds.
//
// Kinds up to MaxT form the grammar's terminal alphabet; kinds above it are
// lexical noise the parser filters out.
const (
	KindEOF Kind = iota // End of the input buffer.
	KindIdent
	KindString
	KindVariable // `$name` dictionary reference.
	KindNumber
	KindLBrace
	KindRBrace
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
	KindNoMatch // Unrecognized rune.

	// KindComment covers `//` & `/* */` comments.
	KindComment
)

// MaxT is the largest Kind belonging to the grammar's terminal alphabet.
const MaxT = KindNoMatch

var kindNames = map[Kind]string{
	KindEOF:      "EOF",
	KindIdent:    "ident",
	KindString:   "string",
	KindVariable: "variable",
	KindNumber:   "number",
	KindLBrace:   "{",
	KindRBrace:   "}",
	KindPlus:     "+",
	KindMinus:    "-",
	KindStar:     "*",
	KindSlash:    "/",
	KindLParen:   "(",
	KindRParen:   ")",
	KindNoMatch:  "no-match",
	KindComment:  "comment",
}

// Terminal reports whether the Kind belongs to the grammar's terminal
// alphabet.
func (k Kind) Terminal() bool { return k <= MaxT }

// String is the `fmt.Stringer` interface implementation for Kind.
func (k Kind) String() (name string) {
	name, ok := kindNames[k]
	if !ok {
		name = fmt.Sprintf("kind(%d)", int(k))
	}

	return
}

// String is the `fmt.Stringer` interface implementation for Token.
func (t *Token) String() string {
	return fmt.Sprintf("%s:%q@%d:%d(+%d)", t.Kind, t.Val, t.Line, t.Col, t.Pos)
}
