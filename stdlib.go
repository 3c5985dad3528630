package main

import (
	"fmt"
	"math"
)

// A builtin pairs a function with its registry name and, usually, a
// single-character alias. Aliases must steer clear of characters the
// reader claims first: digits, '.', '_', quotes, brackets, braces,
// parens, backslash, whitespace, and the literals T and F.
type builtin struct {
	alias rune
	name  string
	fn    FuncImpl
}

func stdlib() []builtin {
	return []builtin{
		// arithmetic; division follows IEEE float semantics, so
		// dividing by zero yields an infinity rather than an error
		{'+', "add", binop(func(a, b float64) Value { return Num(a + b) })},
		{'-', "sub", binop(func(a, b float64) Value { return Num(a - b) })},
		{'*', "mul", binop(func(a, b float64) Value { return Num(a * b) })},
		{'/', "div", binop(func(a, b float64) Value { return Num(a / b) })},
		{'^', "pow", binop(func(a, b float64) Value { return Num(math.Pow(a, b)) })},
		{'%', "mod", binop(func(a, b float64) Value { return Num(math.Mod(a, b)) })},
		{'!', "neg", neg},

		// comparison
		{'=', "eq", eq},
		{'<', "lt", binop(func(a, b float64) Value { return Bool(a < b) })},
		{'>', "gt", binop(func(a, b float64) Value { return Bool(a > b) })},
		{'~', "not", not},

		// stack shuffling
		{'d', "dup", dup},
		{'s', "swap", swap},
		{'p', "drop", dropTop},
		{'o', "over", over},
		{'r', "rot", rot},
		{'c', "clear", clearStack},

		// higher-order
		{';', "run", run},
		{'?', "ifelse", ifelse},
		{'@', "def", def},

		// output and introspection
		{',', "print", printTop},
		{'#', "len", stackLen},
	}
}

// binop pops two numbers (top of stack is the right operand) and pushes
// the combined result.
func binop(f func(a, b float64) Value) FuncImpl {
	return func(p *Pesc) error {
		b, err := p.PopNumber()
		if err != nil {
			return err
		}
		a, err := p.PopNumber()
		if err != nil {
			return err
		}
		p.Push(f(a, b))
		return nil
	}
}

func neg(p *Pesc) error {
	n, err := p.PopNumber()
	if err != nil {
		return err
	}
	p.Push(Num(-n))
	return nil
}

func eq(p *Pesc) error {
	b, err := p.Pop()
	if err != nil {
		return err
	}
	a, err := p.Pop()
	if err != nil {
		return err
	}
	p.Push(Bool(valueEq(a, b)))
	return nil
}

func not(p *Pesc) error {
	b, err := p.PopBool()
	if err != nil {
		return err
	}
	p.Push(Bool(!b))
	return nil
}

func dup(p *Pesc) error {
	v, err := p.PeekAt(0)
	if err != nil {
		return err
	}
	p.Push(v)
	return nil
}

func swap(p *Pesc) error {
	b, err := p.Pop()
	if err != nil {
		return err
	}
	a, err := p.Pop()
	if err != nil {
		return err
	}
	p.Push(b)
	p.Push(a)
	return nil
}

func dropTop(p *Pesc) error {
	_, err := p.Pop()
	return err
}

func over(p *Pesc) error {
	v, err := p.PeekAt(1)
	if err != nil {
		return err
	}
	p.Push(v)
	return nil
}

// rot sends the third element to the top: a b c -> b c a.
func rot(p *Pesc) error {
	c, err := p.Pop()
	if err != nil {
		return err
	}
	b, err := p.Pop()
	if err != nil {
		return err
	}
	a, err := p.Pop()
	if err != nil {
		return err
	}
	p.Push(b)
	p.Push(c)
	p.Push(a)
	return nil
}

func clearStack(p *Pesc) error {
	p.stack = nil
	return nil
}

// run pops a callable value and invokes it, which is how a block on the
// stack finally gets executed.
func run(p *Pesc) error {
	v, err := p.Pop()
	if err != nil {
		return err
	}
	return p.Invoke(v)
}

// ifelse pops an else branch, a then branch, and a condition, then
// invokes the branch the condition selects: cond {then} {else} ?
func ifelse(p *Pesc) error {
	alt, err := p.Pop()
	if err != nil {
		return err
	}
	cons, err := p.Pop()
	if err != nil {
		return err
	}
	cond, err := p.PopBool()
	if err != nil {
		return err
	}
	if cond {
		return p.Invoke(cons)
	}
	return p.Invoke(alt)
}

// def pops a name and a block and registers the block under that name:
// {...} "name" @ -- the registry is open to interpreted code on purpose.
func def(p *Pesc) error {
	name, err := p.PopString()
	if err != nil {
		return err
	}
	blk, err := p.PopBlock()
	if err != nil {
		return err
	}
	p.Register(0, name, func(e *Pesc) error { return e.Invoke(blk) })
	return nil
}

func printTop(p *Pesc) error {
	v, err := p.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, v)
	return nil
}

func stackLen(p *Pesc) error {
	p.Push(Num(float64(p.Depth())))
	return nil
}
