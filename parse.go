package main

import (
	"strconv"
	"strings"
	"unicode"
)

// Parse scans source text left to right and returns the cursor position
// where scanning stopped along with the token sequence read so far.
//
// The scan is single-pass and stateful with respect to the live operator
// table: a bare character is only a valid token if it is a registered
// alias at parse time. Nested {...} blocks recurse; the recursive call
// returns at its unmatched '}' with a cursor relative to the substring it
// was handed, and the outer scan skips past that plus the two braces. An
// unmatched '}' at the top level simply ends parsing early, without
// error.
//
// Offsets are rune counts, not byte offsets, so positions stay correct
// under non-ASCII input.
func (p *Pesc) Parse(src string) (int, []Value, error) {
	var toks []Value

	rs := []rune(src)
	i := 0

	for i < len(rs) {
		switch c := rs[i]; {
		case unicode.IsDigit(c) || c == '.' || c == '_':
			lit, j := chomp(rs, i, func(r rune) bool {
				return !unicode.IsDigit(r) && r != '_' && r != '.'
			})
			i = j
			n, err := parseNumber(lit)
			if err != nil {
				return 0, nil, &ParseError{Pos: i, Err: invalidNumberLit(lit)}
			}
			toks = append(toks, Num(n))

		// an alternate number spelling, e.g. to keep a sign character
		// from being read as an operator
		case c == '(':
			lit, j := chomp(rs, i+1, func(r rune) bool { return r == ')' })
			i = j + 1
			n, err := parseNumber(lit)
			if err != nil {
				return 0, nil, &ParseError{Pos: i, Err: invalidNumberLit(lit)}
			}
			toks = append(toks, Num(n))

		// strings are raw: no escapes, so no way to embed a quote
		case c == '"':
			s, j := chomp(rs, i+1, func(r rune) bool { return r == '"' })
			i = j + 1
			toks = append(toks, Str(s))

		// function references are not validated against the registry
		// until they are invoked
		case c == '[':
			s, j := chomp(rs, i+1, func(r rune) bool { return r == ']' })
			i = j + 1
			toks = append(toks, Func(s))

		case c == '{':
			n, sub, err := p.Parse(string(rs[i+1:]))
			if err != nil {
				return 0, nil, err
			}
			toks = append(toks, Block(sub))

			// move the cursor past the matching '}', or we would exit
			// prematurely (see next case)
			i += n + 2

		case c == '}':
			return i, toks, nil

		case c == ' ' || c == '\t' || c == '\n':
			i++

		// comments run from '\' to the next '\' or newline, whichever
		// comes first
		case c == '\\':
			_, j := chomp(rs, i+1, func(r rune) bool { return r == '\n' || r == '\\' })
			i = j + 1

		case c == 'T':
			toks = append(toks, Bool(true))
			i++

		case c == 'F':
			toks = append(toks, Bool(false))
			i++

		// anything left must be a registered operator alias
		default:
			if _, ok := p.ops[c]; !ok {
				return 0, nil, &ParseError{
					Pos: i,
					Err: unknownFunction("'" + string(c) + "'"),
				}
			}
			toks = append(toks, Op(c))
			i++
		}
	}

	return i, toks, nil
}

// chomp consumes runes from i until the predicate matches or input runs
// out, returning the consumed text and the stop position.
func chomp(rs []rune, i int, until func(rune) bool) (string, int) {
	j := i
	for j < len(rs) && !until(rs[j]) {
		j++
	}
	return string(rs[i:j]), j
}

// parseNumber strips underscore separators and parses a 64-bit float.
func parseNumber(lit string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
}
