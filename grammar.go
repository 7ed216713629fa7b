// SPDX-License-Identifier: MIT
package dictcalc

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

// Grammar, evaluated inline while parsing:
//
//	CalcEntry := '{' Expr '}' | Expr
//	Expr      := Term (('+' | '-') Term)*
//	Term      := Factor (('*' | '/') Factor)*
//	Factor    := variable | number | '-' '(' Expr ')' | '(' Expr ')'
//
// The bare form is terminated by the end marker; the braced form ends at its
// `}` & repositions the Source's cursor for the host. Negation binds only to
// a parenthesized sub-expression: `-3` & `-x` are syntax errors. That
// asymmetry is part of the accepted language & is preserved, not corrected.

// calcEntry recognizes one entry & leaves its value in the accumulator.
func (p *Parser[T]) calcEntry() {
	switch {
	case p.la.Kind == scanner.KindLBrace:
		p.get()
		p.val = p.expr()
		p.expect(scanner.KindRBrace)

		// Hand the cursor back immediately after the `}` so the host
		// document parser resumes without skipping or re-reading text, even
		// though the Source has scanned ahead of it.
		p.src.SetPos(p.tok.Pos + utf8.RuneCountInString(p.tok.Val))

		if p.cfg.Debug {
			p.cfg.Logger.Debugf("calcEntry: val %v, cursor %d", p.val, p.src.Pos())
		}
	case p.startOf(setExprStart):
		p.val = p.expr()
		p.expect(scanner.KindEOF)
	default:
		p.synErr(CodeInvalidCalcEntry)
	}
}

// expr folds `('+' | '-') Term` repetitions left-to-right.
func (p *Parser[T]) expr() (val T) {
	val = p.term()

	for p.la.Kind == scanner.KindPlus || p.la.Kind == scanner.KindMinus {
		if p.la.Kind == scanner.KindPlus {
			p.get()
			val += p.term()
		} else {
			p.get()
			val -= p.term()
		}

		if p.cfg.Debug {
			p.cfg.Logger.Debugf("expr: val %v", val)
		}
	}

	return
}

// term folds `('*' | '/') Factor` repetitions left-to-right.
//
// Division follows IEEE-754 double semantics: a zero divisor yields an
// infinity or NaN, never a diagnostic.
func (p *Parser[T]) term() (val T) {
	val = p.factor()

	for p.la.Kind == scanner.KindStar || p.la.Kind == scanner.KindSlash {
		if p.la.Kind == scanner.KindStar {
			p.get()
			val *= p.factor()
		} else {
			p.get()
			val /= p.factor()
		}

		if p.cfg.Debug {
			p.cfg.Logger.Debugf("term: val %v", val)
		}
	}

	return
}

// factor evaluates a variable reference, a numeric literal, or a
// (possibly negated) parenthesized sub-expression.
func (p *Parser[T]) factor() (val T) {
	switch p.la.Kind {
	case scanner.KindVariable:
		p.get()
		val = p.lookup(strings.TrimPrefix(p.tok.Val, "$"))
	case scanner.KindNumber:
		p.get()
		val = p.number(p.tok.Val)
	case scanner.KindMinus:
		p.get()
		p.expect(scanner.KindLParen)
		val = p.expr()
		p.expect(scanner.KindRParen)
		val = -val
	case scanner.KindLParen:
		p.get()
		val = p.expr()
		p.expect(scanner.KindRParen)
	default:
		p.synErr(CodeInvalidFactor)
	}

	if p.cfg.Debug {
		p.cfg.Logger.Debugf("factor: val %v, tok %s", val, p.tok)
	}

	return
}
