package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		want    []Value
		wantPos int
	}{
		{
			name:    "integers and floats",
			in:      "1 2.5 300",
			want:    []Value{Num(1), Num(2.5), Num(300)},
			wantPos: 9,
		},
		{
			name:    "underscore separators are stripped",
			in:      "1_000.5",
			want:    []Value{Num(1000.5)},
			wantPos: 7,
		},
		{
			name:    "parenthesized number",
			in:      "(42)",
			want:    []Value{Num(42)},
			wantPos: 4,
		},
		{
			name:    "parenthesized negative number",
			in:      "(-5.5)",
			want:    []Value{Num(-5.5)},
			wantPos: 6,
		},
		{
			name:    "string literal",
			in:      `"hello world"`,
			want:    []Value{Str("hello world")},
			wantPos: 13,
		},
		{
			name:    "empty string",
			in:      `""`,
			want:    []Value{Str("")},
			wantPos: 2,
		},
		{
			name:    "string keeps interior characters raw",
			in:      `"a\nb"`,
			want:    []Value{Str(`a\nb`)},
			wantPos: 6,
		},
		{
			name:    "non-ascii string",
			in:      `"héllo π"`,
			want:    []Value{Str("héllo π")},
			wantPos: 9,
		},
		{
			name:    "function reference is not validated",
			in:      "[no-such-fn]",
			want:    []Value{Func("no-such-fn")},
			wantPos: 12,
		},
		{
			name:    "nested blocks",
			in:      "{1 2{3}4}",
			want:    []Value{Block{Num(1), Num(2), Block{Num(3)}, Num(4)}},
			wantPos: 9,
		},
		{
			name:    "booleans",
			in:      "T F",
			want:    []Value{Bool(true), Bool(false)},
			wantPos: 3,
		},
		{
			name:    "whitespace is skipped",
			in:      " \t\n1\n",
			want:    []Value{Num(1)},
			wantPos: 5,
		},
		{
			name:    "comment ends at backslash",
			in:      `\ this is ignored \2`,
			want:    []Value{Num(2)},
			wantPos: 20,
		},
		{
			name:    "comment ends at newline",
			in:      "\\ ignored\n3",
			want:    []Value{Num(3)},
			wantPos: 11,
		},
		{
			name:    "registered operator",
			in:      "1 2+",
			want:    []Value{Num(1), Num(2), Op('+')},
			wantPos: 4,
		},
		{
			name:    "unmatched close brace truncates parsing",
			in:      "1 2} 3",
			want:    []Value{Num(1), Num(2)},
			wantPos: 3,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := New(WithStdlib())
			pos, toks, err := p.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, toks, "expected tokens")
			assert.Equal(t, tc.wantPos, pos, "expected cursor position")
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name     string
		in       string
		wantKind ErrorKind
		wantPos  int
	}{
		{
			name:     "malformed number",
			in:       "1..2",
			wantKind: KindInvalidNumberLit,
			wantPos:  4,
		},
		{
			name:     "lone dot",
			in:       ".",
			wantKind: KindInvalidNumberLit,
			wantPos:  1,
		},
		{
			name:     "empty parens",
			in:       "()",
			wantKind: KindInvalidNumberLit,
			wantPos:  2,
		},
		{
			name:     "non-numeric parens",
			in:       "(zap)",
			wantKind: KindInvalidNumberLit,
			wantPos:  5,
		},
		{
			name:     "unregistered character",
			in:       "q",
			wantKind: KindUnknownFunction,
			wantPos:  0,
		},
		{
			name:     "unregistered character after non-ascii text",
			in:       `"héllo" q`,
			wantKind: KindUnknownFunction,
			wantPos:  8,
		},
		{
			name:     "error inside a block propagates",
			in:       "{1 q}",
			wantKind: KindUnknownFunction,
			wantPos:  2,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := New(WithStdlib())
			_, _, err := p.Parse(tc.in)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.wantPos, perr.Pos, "expected rune offset")
			var kerr *Error
			require.ErrorAs(t, err, &kerr)
			assert.Equal(t, tc.wantKind, kerr.Kind, "expected error kind")
		})
	}
}

// Parsing interleaves with the live operator table: a character is only
// a token if it is an alias right now.
func TestParseUsesLiveOperatorTable(t *testing.T) {
	p := New()
	_, _, err := p.Parse("+")
	require.Error(t, err, "no aliases registered yet")

	p.Register('+', "add", func(e *Pesc) error { return nil })
	_, toks, err := p.Parse("+")
	require.NoError(t, err)
	assert.Equal(t, []Value{Op('+')}, toks)
}

// Numbers written with and without separators parse to the same value.
func TestParseNumberNormalization(t *testing.T) {
	p := New()
	_, a, err := p.Parse("1_000.5")
	require.NoError(t, err)
	_, b, err := p.Parse("1000.5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseDeeplyNested(t *testing.T) {
	p := New()
	_, toks, err := p.Parse("{{{{1}}}}")
	require.NoError(t, err)
	assert.Equal(t, []Value{Block{Block{Block{Block{Num(1)}}}}}, toks)
}
