// SPDX-License-Identifier: MIT

// Package dictcalc evaluates arithmetic calc entries (`{ expr }` or a bare
// expression) embedded in a larger host document, in a single pass & without
// building a syntax tree, then hands the shared buffer cursor back to the
// host immediately after the consumed text.
package dictcalc

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

type (
	// Source is the token stream a Parser consumes.
	//
	// Implementations share one mutable read cursor with the Parser; the
	// Parser alone sets it, once, after matching the entry's closing
	// delimiter.
	Source interface {
		// Scan produces the next token, advancing the cursor.
		Scan() *scanner.Token
		// Pos retrieves the cursor's rune offset.
		Pos() int
		// SetPos repositions the cursor.
		SetPos(pos int)
	}

	// LookupFunc resolves a variable reference (sans its `$` sigil) to a
	// scalar.
	//
	// Resolution is infallible at this layer; validating that the reference
	// exists is the host's concern.
	LookupFunc[T constraints.Float] func(name string) T

	// NumberFunc converts a numeric lexeme to a scalar.
	//
	// Conversion is infallible at this layer; the Scanner's token
	// classification already rejected malformed literals.
	NumberFunc[T constraints.Float] func(text string) T

	// Config defines configuration options shared by the Parser's
	// operations.
	Config struct {
		// Logger for Parser messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}

	// Parser recognizes & evaluates one calc entry through mutually
	// recursive grammar procedures, folding the result left-to-right as it
	// parses.
	Parser[T constraints.Float] struct {
		cfg *Config

		src  Source
		errs *Errors

		lookup LookupFunc[T]
		number NumberFunc[T]

		// tok is the last consumed token, la the single lookahead token.
		tok, la *scanner.Token

		// dummy is the reusable placeholder recording lexical noise skipped
		// by get; the one token whose text mutates after creation.
		dummy *scanner.Token

		// errDist counts tokens consumed since the last reported
		// diagnostic; synErr is a no-op below minErrDist.
		errDist int

		// val is the running scalar accumulator.
		val T
	}

	// Option defines the Parser functional option type.
	Option[T constraints.Float] func(*Parser[T])
)

const (
	// minErrDist is the number of tokens that must be consumed after a
	// reported diagnostic before another may be reported.
	minErrDist = 2

	dummyTokenVal = "dummy token"
)

var defConfig = DefConfig()

// DefConfig obtains the package's Parser default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// New instantiates a Parser over a token Source.
func New[T constraints.Float](src Source, opts ...Option[T]) *Parser[T] {
	p := &Parser[T]{
		cfg:     defConfig,
		src:     src,
		errDist: minErrDist,
		number:  ParseNumber[T],
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.errs == nil {
		p.errs = NewErrors()
		p.errs.SetLogger(p.cfg.Logger)
	}
	if p.lookup == nil {
		p.lookup = func(name string) (zero T) {
			p.cfg.Logger.Warnf("unresolved variable (%s)", name)
			return
		}
	}

	return p
}

// WithConfig configures the Parser Config.
func WithConfig[T constraints.Float](cfg *Config) Option[T] {
	return func(p *Parser[T]) {
		if cfg.Logger == nil {
			cfg.Logger = logrus.New()
		}
		p.cfg = cfg
	}
}

// WithErrors configures a host-owned Errors reporter.
func WithErrors[T constraints.Float](errs *Errors) Option[T] {
	return func(p *Parser[T]) { p.errs = errs }
}

// WithLookup configures the host's variable resolver.
func WithLookup[T constraints.Float](fn LookupFunc[T]) Option[T] {
	return func(p *Parser[T]) { p.lookup = fn }
}

// WithNumber configures the host's literal-to-scalar converter.
func WithNumber[T constraints.Float](fn NumberFunc[T]) Option[T] {
	return func(p *Parser[T]) { p.number = fn }
}

// WithVars configures a map-backed variable resolver.
//
// Missing references resolve to the zero scalar with a warning.
func WithVars[T constraints.Float](vars map[string]T) Option[T] {
	return func(p *Parser[T]) {
		p.lookup = func(name string) T {
			val, ok := vars[name]
			if !ok {
				p.cfg.Logger.Warnf("unresolved variable (%s)", name)
			}

			return val
		}
	}
}

// ParseNumber is the default NumberFunc, converting via IEEE-754 double
// semantics.
func ParseNumber[T constraints.Float](text string) T {
	val, _ := strconv.ParseFloat(text, 64)
	return T(val)
}

// Config retrieves the Parser's Config.
func (p *Parser[T]) Config() *Config { return p.cfg }

// Errors retrieves the Parser's diagnostics reporter.
//
// The host must check Errors().Count() before trusting a parsed value; a
// parse that reported diagnostics yields a best-effort value only.
func (p *Parser[T]) Errors() *Errors { return p.errs }

// Parse consumes one calc entry from the Source & evaluates it.
//
// On the braced form, the Source's cursor is left immediately after the
// matched `}` for the host document parser to resume from. The returned
// error wraps ErrSyntax when diagnostics were reported (val is then a
// best-effort value) or ErrFatal for unrecoverable conditions.
//
// Parse is intended to run once per Parser; a repeated call releases &
// replaces the internal placeholder token before reparsing.
func (p *Parser[T]) Parse(ctx context.Context) (val T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if e, ok := r.(error); ok && errors.Is(e, ErrFatal) {
			err = e
			return
		}
		err = fmt.Errorf("%w: %v", ErrFatal, r)
	}()

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		p.dummy = &scanner.Token{Val: dummyTokenVal}
		p.tok, p.la = nil, p.dummy

		var zero T
		p.val = zero

		p.get()
		p.calcEntry()
		// Trailing content past the entry is the host's concern.

		val = p.val
		if count := p.errs.Count(); count > 0 {
			err = fmt.Errorf("%w: %d", ErrSyntax, count)
		}
	}

	return
}
