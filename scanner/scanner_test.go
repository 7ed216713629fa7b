// SPDX-License-Identifier: MIT
package scanner

import (
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	type token struct {
		kind Kind
		val  string
		pos  int
	}

	tests := []struct {
		name  string
		input string
		want  []token
	}{
		{
			name:  "punctuation & numbers",
			input: "{1+2.5e-1}",
			want: []token{
				{KindLBrace, "{", 0},
				{KindNumber, "1", 1},
				{KindPlus, "+", 2},
				{KindNumber, "2.5e-1", 3},
				{KindRBrace, "}", 9},
				{KindEOF, "", 10},
			},
		},
		{
			name:  "minus is never part of a number",
			input: "-3",
			want: []token{
				{KindMinus, "-", 0},
				{KindNumber, "3", 1},
				{KindEOF, "", 2},
			},
		},
		{
			name:  "variables & identifiers",
			input: "$radius * pi",
			want: []token{
				{KindVariable, "$radius", 0},
				{KindStar, "*", 8},
				{KindIdent, "pi", 10},
				{KindEOF, "", 12},
			},
		},
		{
			name:  "strings keep their quotes",
			input: `"a b" 1`,
			want: []token{
				{KindString, `"a b"`, 0},
				{KindNumber, "1", 6},
				{KindEOF, "", 7},
			},
		},
		{
			name:  "comments are tokens above the terminal alphabet",
			input: "1 /* x */ // y",
			want: []token{
				{KindNumber, "1", 0},
				{KindComment, "/* x */", 2},
				{KindComment, "// y", 10},
				{KindEOF, "", 14},
			},
		},
		{
			name:  "leading dot number",
			input: ".5/2",
			want: []token{
				{KindNumber, ".5", 0},
				{KindSlash, "/", 2},
				{KindNumber, "2", 3},
				{KindEOF, "", 4},
			},
		},
		{
			name:  "unknown rune",
			input: "1 # 2",
			want: []token{
				{KindNumber, "1", 0},
				{KindNoMatch, "#", 2},
				{KindNumber, "2", 4},
				{KindEOF, "", 5},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithInput(tt.input))

			for index, want := range tt.want {
				got := s.Scan()
				if got.Kind != want.kind || got.Val != want.val || got.Pos != want.pos {
					t.Errorf("Scanner.Scan() #%d = %s, want %s:%q@+%d", index, got, want.kind, want.val, want.pos)
				}
			}
		})
	}
}

func TestScanner_Scan_positions(t *testing.T) {
	s := New(WithInput("1\n + 22"))

	type position struct{ line, col int }
	wants := []position{
		{1, 1}, // 1
		{2, 2}, // +
		{2, 4}, // 22
		{2, 6}, // EOF
	}

	for index, want := range wants {
		got := s.Scan()
		if got.Line != want.line || got.Col != want.col {
			t.Errorf("Scanner.Scan() #%d = %s, want line %d col %d", index, got, want.line, want.col)
		}
	}
}

func TestScanner_SetPos(t *testing.T) {
	const input = "ab\n{1}"

	s := New(WithInput(input))

	// Consume everything, then rewind to the brace.
	for tok := s.Scan(); tok.Kind != KindEOF; tok = s.Scan() {
	}

	s.SetPos(3)
	if got := s.Pos(); got != 3 {
		t.Fatalf("Scanner.Pos() = %d, want 3", got)
	}

	tok := s.Scan()
	if tok.Kind != KindLBrace || tok.Line != 2 || tok.Col != 1 {
		t.Errorf("Scanner.Scan() after SetPos = %s, want { at line 2 col 1", tok)
	}

	// Out-of-range offsets clamp to the buffer.
	s.SetPos(-1)
	if got := s.Pos(); got != 0 {
		t.Errorf("Scanner.Pos() = %d, want 0", got)
	}
	s.SetPos(99)
	if got := s.Pos(); got != len([]rune(input)) {
		t.Errorf("Scanner.Pos() = %d, want %d", got, len([]rune(input)))
	}
}

func TestScanner_WithStart(t *testing.T) {
	s := New(WithStart(6), WithInput("prefix{1}"))

	if tok := s.Scan(); tok.Kind != KindLBrace || tok.Pos != 6 {
		t.Errorf("Scanner.Scan() = %s, want { at offset 6", tok)
	}
}

func TestScanner_PeekUnread(t *testing.T) {
	s := New(WithInput("1+2"))

	// Peek is stable until consumed.
	first := s.Peek()
	if second := s.Peek(); second != first {
		t.Errorf("Scanner.Peek() = %s, want the same token (%s)", second, first)
	}
	if got := s.Scan(); got != first {
		t.Errorf("Scanner.Scan() = %s, want the peeked token (%s)", got, first)
	}

	// Unread replays tokens in push order.
	plus := s.Scan()
	s.Unread(plus)
	if got := s.Scan(); got != plus {
		t.Errorf("Scanner.Scan() after Unread = %s, want %s", got, plus)
	}

	if got := s.Scan(); got.Kind != KindNumber || got.Val != "2" {
		t.Errorf("Scanner.Scan() = %s, want number 2", got)
	}
}

func TestScanner_SetPos_discardsPushback(t *testing.T) {
	s := New(WithInput("1 2"))

	_ = s.Peek()
	s.SetPos(0)

	if got := s.Scan(); got.Pos != 0 || got.Val != "1" {
		t.Errorf("Scanner.Scan() after SetPos = %s, want number 1 at offset 0", got)
	}
}
