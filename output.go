package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/pesc-lang/pesc/internal/termio"
)

// OutputMode selects how the stack is rendered after an evaluation.
type OutputMode int

const (
	// OutputHuman draws the stack top-first as padded, color-coded
	// cells with an index ruler underneath, clipped to terminal width.
	OutputHuman OutputMode = iota

	// OutputSimple prints one value per line with its depth index.
	OutputSimple

	// OutputQuiet prints nothing.
	OutputQuiet
)

// AutoOutput picks Human when stdout is a terminal, Simple otherwise.
func AutoOutput() OutputMode {
	if termio.IsTerminal(os.Stdout) {
		return OutputHuman
	}
	return OutputSimple
}

func ParseOutputMode(s string) (OutputMode, error) {
	switch s {
	case "human":
		return OutputHuman, nil
	case "simple":
		return OutputSimple, nil
	case "quiet":
		return OutputQuiet, nil
	}
	return 0, fmt.Errorf("unknown output mode %q", s)
}

func (m OutputMode) String() string {
	switch m {
	case OutputHuman:
		return "human"
	case OutputSimple:
		return "simple"
	case OutputQuiet:
		return "quiet"
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

// FormatStack renders the engine's stack to w in this mode.
func (m OutputMode) FormatStack(w io.Writer, p *Pesc) {
	switch m {
	case OutputHuman:
		formatHuman(w, p, termio.Width(os.Stdout))
	case OutputSimple:
		formatSimple(w, p)
	}
}

const cellPadding = 11

// formatHuman draws the stack as a single row of bracketed cells, top
// of stack first, and a ruler of relative indices under them. Cells
// that would run past maxWidth are dropped behind a continuation mark.
func formatHuman(w io.Writer, p *Pesc, maxWidth int) {
	st := p.Stack()
	if len(st) == 0 {
		fmt.Fprintln(w, "(empty stack)")
		return
	}

	frame := color.New(color.FgHiBlack)

	var cells, ruler strings.Builder
	used := 0
	for i := len(st) - 1; i >= 0; i-- {
		item := st[i].String()
		cw := utf8.RuneCountInString(item)
		if cw < cellPadding {
			cw = cellPadding
		}
		cw += 2 // brackets

		if used+cw+1 >= maxWidth {
			cells.WriteString(" »")
			break
		}

		cells.WriteString(frame.Sprint("["))
		cells.WriteString(itemColor(p, st[i]).Sprintf("%*s", cellPadding, item))
		cells.WriteString(frame.Sprint("]"))
		ruler.WriteString(frame.Sprintf("%*d", cw, len(st)-1-i))
		used += cw
	}

	fmt.Fprintln(w, cells.String())
	fmt.Fprintln(w, ruler.String())
}

func itemColor(p *Pesc, v Value) *color.Color {
	switch val := v.(type) {
	case Str:
		return color.New(color.FgCyan)
	case Num:
		return color.New(color.FgHiWhite)
	case Func:
		// unresolved references stand out: they will fail when invoked
		if _, ok := p.funcs[string(val)]; ok {
			return color.New(color.FgWhite)
		}
		return color.New(color.FgRed)
	case Bool:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgWhite)
}

func formatSimple(w io.Writer, p *Pesc) {
	st := p.Stack()
	for i := len(st) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%d: %s\n", len(st)-1-i, st[i])
	}
}
