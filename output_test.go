package main

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestFormatSimple(t *testing.T) {
	p := New()
	p.Push(Num(1))
	p.Push(Str("hi"))

	var out strings.Builder
	formatSimple(&out, p)
	assert.Equal(t, "0: \"hi\"\n1: 1\n", out.String())
}

func TestFormatHuman(t *testing.T) {
	withoutColor(t)

	t.Run("empty stack", func(t *testing.T) {
		p := New()
		var out strings.Builder
		formatHuman(&out, p, 80)
		assert.Equal(t, "(empty stack)\n", out.String())
	})

	t.Run("cells and ruler, top first", func(t *testing.T) {
		p := New()
		p.Push(Num(3))
		p.Push(Str("hi"))

		var out strings.Builder
		formatHuman(&out, p, 80)
		assert.Equal(t,
			"[       \"hi\"][          3]\n"+
				"            0            1\n",
			out.String())
	})

	t.Run("clips to terminal width", func(t *testing.T) {
		p := New()
		p.Push(Num(3))
		p.Push(Str("hi"))

		var out strings.Builder
		formatHuman(&out, p, 15)
		assert.Equal(t,
			"[       \"hi\"] »\n"+
				"            0\n",
			out.String())
	})

	t.Run("wide items stretch their cell", func(t *testing.T) {
		p := New()
		p.Push(Str("a long string value"))

		var out strings.Builder
		formatHuman(&out, p, 80)
		assert.Equal(t,
			"[\"a long string value\"]\n"+
				"                      0\n",
			out.String())
	})
}

func TestOutputModeFormatStackQuiet(t *testing.T) {
	p := New()
	p.Push(Num(1))

	var out strings.Builder
	OutputQuiet.FormatStack(&out, p)
	assert.Equal(t, "", out.String())
}

func TestParseOutputMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want OutputMode
	}{
		{"human", OutputHuman},
		{"simple", OutputSimple},
		{"quiet", OutputQuiet},
	} {
		m, err := ParseOutputMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m)
		assert.Equal(t, tc.in, m.String())
	}

	_, err := ParseOutputMode("loud")
	assert.Error(t, err)
}

func TestValueRendering(t *testing.T) {
	for _, tc := range []struct {
		v    Value
		want string
	}{
		{Str("hi"), `"hi"`},
		{Num(3), "3"},
		{Num(3.5), "3.5"},
		{Num(-0.25), "-0.25"},
		{Func("add"), "<fn add>"},
		{Op('+'), "<sym '+'>"},
		{Bool(true), "(true)"},
		{Bool(false), "(false)"},
	} {
		assert.Equal(t, tc.want, tc.v.String())
	}

	assert.True(t, strings.HasPrefix(Block{Num(1)}.String(), "<mac 0x"))
}
