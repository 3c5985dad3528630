package main

import (
	"fmt"
	"strconv"
)

// Value is one cell of the operand stack: a literal produced by the
// reader, or anything a built-in pushed back. Blocks and function refs
// are plain values until something invokes them.
type Value interface {
	fmt.Stringer
	value()
}

type Str string
type Num float64
type Func string   // a function name, resolved against the registry when invoked
type Block []Value // parsed but unevaluated tokens; closes over nothing
type Op rune       // a single-character operator alias
type Bool bool

func (Str) value()   {}
func (Num) value()   {}
func (Func) value()  {}
func (Block) value() {}
func (Op) value()    {}
func (Bool) value()  {}

func (s Str) String() string { return strconv.Quote(string(s)) }
func (n Num) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (f Func) String() string { return fmt.Sprintf("<fn %s>", string(f)) }
func (b Block) String() string { return fmt.Sprintf("<mac %p>", []Value(b)) }
func (o Op) String() string { return fmt.Sprintf("<sym '%c'>", rune(o)) }
func (b Bool) String() string { return fmt.Sprintf("(%t)", bool(b)) }

// valueEq compares two values structurally. Blocks compare by shape,
// element by element.
func valueEq(a, b Value) bool {
	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case Num:
		bv, ok := b.(Num)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Func:
		bv, ok := b.(Func)
		return ok && av == bv
	case Op:
		bv, ok := b.(Op)
		return ok && av == bv
	case Block:
		bv, ok := b.(Block)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEq(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}
