// SPDX-License-Identifier: MIT
package dictcalc

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

type (
	// Diagnostic is one reported syntax error: a (line, column, code) triple
	// plus its rendered message.
	Diagnostic struct {
		Msg  string
		Code int
		// Line & Col are the 1-based source position of the offending token.
		Line, Col int
	}

	// Errors accumulates diagnostics for one parse.
	//
	// A Parser owns its Errors unless the host supplies one via WithErrors,
	// in which case the host owns its lifecycle & may share it across
	// parses.
	Errors struct {
		logger logrus.FieldLogger

		list  []Diagnostic
		count int
	}
)

// Diagnostic codes above the terminal alphabet.
//
// Codes below CodeInvalidCalcEntry identify a missing terminal & equal that
// terminal's scanner.Kind; these two are the "no alternative matched"
// catch-alls for their productions.
const (
	CodeInvalidCalcEntry = int(scanner.MaxT) + 1 + iota
	CodeInvalidFactor
)

// Parsing errors.
var (
	ErrSyntax = errors.New("syntax error(s)")
	ErrFatal  = errors.New("unrecoverable parse failure")
)

// NewErrors instantiates an Errors reporter.
func NewErrors() *Errors {
	return &Errors{logger: logrus.New()}
}

// SetLogger configures a logrus.FieldLogger for the reporter.
func (e *Errors) SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		return
	}
	e.logger = logger
}

// Count retrieves the total number of errors reported.
func (e *Errors) Count() int { return e.count }

// List retrieves the reported diagnostics in order of occurrence.
func (e *Errors) List() []Diagnostic { return e.list }

// Clear discards accumulated diagnostics, readying the reporter for reuse.
func (e *Errors) Clear() {
	e.list, e.count = nil, 0
}

// SynErr records a syntax diagnostic, rendering its message from the fixed
// table.
func (e *Errors) SynErr(line, col, code int) {
	e.record(line, col, code, strerror(code))
}

// Error records a diagnostic with a caller-supplied message.
func (e *Errors) Error(line, col int, msg string) {
	e.record(line, col, CodeInvalidCalcEntry, msg)
}

// Warning logs a positioned message without growing the error count.
func (e *Errors) Warning(line, col int, msg string) {
	e.logger.Warnf("-- line %d col %d: %s", line, col, msg)
}

// Exception converts an unrecoverable condition into an error for the
// caller to propagate; parsing cannot continue past it.
func (e *Errors) Exception(msg string) error {
	return fmt.Errorf("%w: %s", ErrFatal, msg)
}

func (e *Errors) record(line, col, code int, msg string) {
	e.list = append(e.list, Diagnostic{Line: line, Col: col, Code: code, Msg: msg})
	e.count++

	e.logger.Debugf("-- line %d col %d: %s", line, col, msg)
}

// String is the `fmt.Stringer` interface implementation for Diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("-- line %d col %d: %s", d.Line, d.Col, d.Msg)
}

// strerror renders the stable human-readable message for a diagnostic code.
func strerror(code int) string {
	switch code {
	case int(scanner.KindEOF):
		return "EOF expected"
	case int(scanner.KindIdent):
		return "ident expected"
	case int(scanner.KindString):
		return "string expected"
	case int(scanner.KindVariable):
		return "variable expected"
	case int(scanner.KindNumber):
		return "number expected"
	case int(scanner.KindLBrace):
		return "\"{\" expected"
	case int(scanner.KindRBrace):
		return "\"}\" expected"
	case int(scanner.KindPlus):
		return "\"+\" expected"
	case int(scanner.KindMinus):
		return "\"-\" expected"
	case int(scanner.KindStar):
		return "\"*\" expected"
	case int(scanner.KindSlash):
		return "\"/\" expected"
	case int(scanner.KindLParen):
		return "\"(\" expected"
	case int(scanner.KindRParen):
		return "\")\" expected"
	case int(scanner.KindNoMatch):
		return "??? expected"
	case CodeInvalidCalcEntry:
		return "invalid calc entry"
	case CodeInvalidFactor:
		return "invalid factor"
	default:
		return fmt.Sprintf("error %d", code)
	}
}
