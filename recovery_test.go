// SPDX-License-Identifier: MIT
package dictcalc

import (
	"testing"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

// seed readies a Parser's token stream the way Parse does, for exercising
// the recovery helpers directly.
func seed(t *testing.T, input string) *Parser[float64] {
	t.Helper()

	p := New[float64](scanner.New(scanner.WithInput(input)))
	p.dummy = &scanner.Token{Val: dummyTokenVal}
	p.la = p.dummy
	p.get()

	return p
}

func TestParser_expect(t *testing.T) {
	p := seed(t, "{1")

	p.expect(scanner.KindLBrace)
	if got := p.errs.Count(); got != 0 {
		t.Fatalf("Errors.Count() = %d, want 0", got)
	}

	// Mismatch reports without consuming; the number stays pending.
	p.expect(scanner.KindRBrace)
	if got := p.errs.Count(); got != 1 {
		t.Errorf("Errors.Count() = %d, want 1", got)
	}
	if p.la.Kind != scanner.KindNumber {
		t.Errorf("lookahead = %s, want pending number", p.la)
	}
}

func TestParser_expectWeak(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLa    scanner.Kind
		wantCount int
	}{
		{
			name:      "resynchronizes on the follow set",
			input:     ") ) 2",
			wantLa:    scanner.KindNumber,
			wantCount: 1,
		},
		{
			name:      "stops at the end marker",
			input:     ") )",
			wantLa:    scanner.KindEOF,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := seed(t, tt.input)

			p.expectWeak(scanner.KindLBrace, setExprStart)
			if got := p.errs.Count(); got != tt.wantCount {
				t.Errorf("Errors.Count() = %d, want %d", got, tt.wantCount)
			}
			if p.la.Kind != tt.wantLa {
				t.Errorf("lookahead = %s, want kind %s", p.la, tt.wantLa)
			}
		})
	}
}

func TestParser_weakSeparator(t *testing.T) {
	type want struct {
		present bool
		count   int
		la      scanner.Kind
	}

	tests := []struct {
		name   string
		input  string
		repFol int
		want   want
	}{
		{
			name:   "separator present",
			input:  "+ 1",
			repFol: setEOF,
			want:   want{present: true, la: scanner.KindNumber},
		},
		{
			name:   "omission tolerated on the repeat follow set",
			input:  "1",
			repFol: setExprStart,
			want:   want{present: false, la: scanner.KindNumber},
		},
		{
			name:   "resynchronizes past junk",
			input:  "* * 1",
			repFol: setEOF,
			want:   want{present: true, count: 1, la: scanner.KindNumber},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := seed(t, tt.input)

			got := p.weakSeparator(scanner.KindPlus, setExprStart, tt.repFol)
			if got != tt.want.present {
				t.Errorf("Parser.weakSeparator() = %v, want %v", got, tt.want.present)
			}
			if count := p.errs.Count(); count != tt.want.count {
				t.Errorf("Errors.Count() = %d, want %d", count, tt.want.count)
			}
			if p.la.Kind != tt.want.la {
				t.Errorf("lookahead = %s, want kind %s", p.la, tt.want.la)
			}
		})
	}
}

func TestParser_get_skipsNoise(t *testing.T) {
	p := seed(t, "/* a */ 1 // b\n + 2")

	// The seeding get already filtered the leading comment.
	if p.la.Kind != scanner.KindNumber {
		t.Fatalf("lookahead = %s, want number", p.la)
	}

	p.get() // consume 1; the trailing line comment is filtered
	if p.la.Kind != scanner.KindPlus {
		t.Errorf("lookahead = %s, want +", p.la)
	}

	// Across the skip, the last genuine token survives in the placeholder so
	// diagnostics keep their position, without allocating per skipped token.
	if p.tok != p.dummy {
		t.Fatalf("consumed token is not the placeholder")
	}
	if p.tok.Kind != scanner.KindNumber || p.tok.Val != "1" {
		t.Errorf("placeholder = %s, want the preserved number token", p.tok)
	}
}
