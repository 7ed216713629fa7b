// SPDX-License-Identifier: MIT
package dictcalc

import (
	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

// Synchronization sets for phrase-level recovery, indexed by grammar point.
const (
	setEOF = iota
	setExprStart
)

var startSets = [...][]scanner.Kind{
	setEOF:       {scanner.KindEOF},
	setExprStart: {scanner.KindVariable, scanner.KindNumber, scanner.KindMinus, scanner.KindLParen},
}

// startTable is the precomputed [recovery point][token kind] membership
// table backing startOf.
var startTable [len(startSets)][scanner.MaxT + 1]bool

func init() {
	for set, kinds := range startSets {
		for _, kind := range kinds {
			startTable[set][kind] = true
		}
	}
}

// startOf reports whether the lookahead token belongs to a synchronization
// set.
func (p *Parser[T]) startOf(set int) bool { return startTable[set][p.la.Kind] }

// get advances the token stream: the lookahead becomes the consumed token &
// a fresh token is requested from the Source.
//
// Tokens outside the grammar's terminal alphabet (comments & other lexical
// noise) are recorded into the reusable placeholder, preserving positional
// continuity for diagnostics without allocating per skip, & scanning
// continues.
func (p *Parser[T]) get() {
	for {
		p.tok = p.la

		p.la = p.src.Scan()
		if p.la == nil {
			panic(p.errs.Exception("token source yielded no token"))
		}
		if p.la.Kind.Terminal() {
			p.errDist++
			break
		}

		if p.dummy != p.tok {
			p.dummy.Kind = p.tok.Kind
			p.dummy.Val = p.tok.Val
			p.dummy.Line, p.dummy.Col = p.tok.Line, p.tok.Col
			p.dummy.Pos = p.tok.Pos
			p.dummy.Next = nil

			p.tok = p.dummy
		}
		p.la = p.tok
	}

	if p.cfg.Debug {
		p.cfg.Logger.Debugf("get: tok %s, la %s", spew.Sprint(p.tok), spew.Sprint(p.la))
	}
}

// synErr reports a syntax diagnostic at the lookahead token, suppressed
// while too few tokens were consumed since the previous report.
func (p *Parser[T]) synErr(code int) {
	if p.errDist >= minErrDist {
		p.errs.SynErr(p.la.Line, p.la.Col, code)
	}
	p.errDist = 0
}

// expect consumes the lookahead token when it matches kind; otherwise it
// reports & leaves the token pending for the grammar to continue on.
func (p *Parser[T]) expect(kind scanner.Kind) {
	if p.la.Kind == kind {
		p.get()
		return
	}

	p.synErr(int(kind))
}

// expectWeak behaves as expect, but on mismatch it additionally discards
// tokens until one belongs to the follow set, resynchronizing the stream
// after a malformed region.
func (p *Parser[T]) expectWeak(kind scanner.Kind, follow int) {
	if p.la.Kind == kind {
		p.get()
		return
	}

	p.synErr(int(kind))
	for !p.startOf(follow) && p.la.Kind != scanner.KindEOF {
		p.get()
	}
}

// weakSeparator consumes an expected separator between repeated clauses,
// tolerating its omission when the lookahead already belongs to the
// repetition's follow set; otherwise it reports & skips to a
// synchronization point, returning whether the repetition may continue.
func (p *Parser[T]) weakSeparator(kind scanner.Kind, syFol, repFol int) bool {
	if p.la.Kind == kind {
		p.get()
		return true
	}
	if p.startOf(repFol) {
		return false
	}

	p.synErr(int(kind))
	for !(p.startOf(syFol) || p.startOf(repFol) || p.startOf(setEOF)) {
		p.get()
	}

	return p.startOf(syFol)
}
