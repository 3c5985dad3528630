package main

import "io"

// FuncImpl is the shape of every registered function: it reads and
// mutates the engine's stack through the typed accessors and reports
// failure as one of the closed error kinds.
type FuncImpl func(p *Pesc) error

// Pesc is the interpreter engine: the operand stack plus the two
// registries every program runs against. One engine lives for a whole
// session; the stack persists across evaluations, and interpreted code
// may itself grow the registries (see the def built-in).
type Pesc struct {
	logging

	// The operand stack is the single piece of mutable program state.
	// The top is the last element; relative index 0 addresses the top.
	stack []Value

	// funcs maps a name to its implementation. Map lookup hands out the
	// func value before the call, so an in-flight function stays valid
	// even if its table entry is replaced mid-call.
	funcs map[string]FuncImpl

	// ops maps a single-character alias to a function name. The name is
	// resolved at evaluation time, not registration time, so an alias
	// may point at a name that is registered later.
	ops map[rune]string

	out io.Writer
}

// Register adds fn to the function table under name, and binds alias to
// that name when alias is nonzero. Last write wins on both tables; the
// alias is not required to name a registered function yet.
func (p *Pesc) Register(alias rune, name string, fn FuncImpl) {
	if alias != 0 {
		p.ops[alias] = name
	}
	p.funcs[name] = fn
}

// Eval executes a token sequence against the live stack. Literals are
// pushed unchanged; in particular a function ref or block token is
// pushed as a value, not invoked. Only an operator token dispatches.
//
// On failure Eval returns an *EvalError naming the offending token.
// Effects of tokens that completed before the failure stand; only the
// failing invocation itself has been rolled back.
func (p *Pesc) Eval(tokens []Value) error {
	for _, tok := range tokens {
		op, ok := tok.(Op)
		if !ok {
			p.stack = append(p.stack, tok)
			continue
		}

		name, bound := p.ops[rune(op)]
		if !bound {
			return &EvalError{
				Token: tok,
				Stack: p.Stack(),
				Err:   unknownFunction("'" + string(rune(op)) + "'"),
			}
		}

		p.logf("dispatch %v -> [%s]", tok, name)
		if bad, err := p.exec(Func(name)); err != nil {
			return &EvalError{Token: tok, Stack: bad, Err: err}
		}
	}
	return nil
}

// Invoke executes a callable value, a block or a function ref, against
// the live stack. It is the entry point built-ins use to apply values
// they popped, which is all a higher-order operator needs.
func (p *Pesc) Invoke(v Value) error {
	_, err := p.exec(v)
	return err
}

// exec runs a callable value. On failure it returns the stack as the
// failed call left it, for diagnostics, after restoring the pre-call
// snapshot as the live stack: a failed invocation is transactional even
// when the function mutated the stack before failing.
func (p *Pesc) exec(v Value) ([]Value, error) {
	switch val := v.(type) {
	case Func:
		fn, ok := p.funcs[string(val)]
		if !ok {
			return p.Stack(), unknownFunction(string(val))
		}

		backup := p.Stack()
		if err := fn(p); err != nil {
			bad := p.stack
			p.stack = backup
			p.logf("rollback %v: %v", v, err)
			return bad, err
		}
		return nil, nil

	case Block:
		// block execution reports the underlying kind; only top-level
		// symbol dispatch adds the token wrapper
		if err := p.Eval([]Value(val)); err != nil {
			ee := err.(*EvalError)
			return ee.Stack, ee.Err
		}
		return nil, nil

	default:
		return p.Stack(), invalidArgumentType("macro/function", v)
	}
}

// Stack returns a copy of the operand stack, ordered bottom to top.
func (p *Pesc) Stack() []Value {
	return append([]Value{}, p.stack...)
}

// Depth reports how many values are on the stack.
func (p *Pesc) Depth() int { return len(p.stack) }

// FunctionNames lists the registered function names, unordered.
func (p *Pesc) FunctionNames() []string {
	names := make([]string, 0, len(p.funcs))
	for name := range p.funcs {
		names = append(names, name)
	}
	return names
}

// Push places v on top of the stack.
func (p *Pesc) Push(v Value) {
	p.stack = append(p.stack, v)
}

// Pop removes and returns the top of the stack.
func (p *Pesc) Pop() (Value, error) {
	if len(p.stack) == 0 {
		return nil, notEnoughArguments()
	}
	v := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return v, nil
}

// PopNumber pops the top of the stack and requires it to be a number.
// On mismatch the value has already been removed; functions that must
// not consume on failure peek first.
func (p *Pesc) PopNumber() (float64, error) {
	v, err := p.Pop()
	if err != nil {
		return 0, err
	}
	n, ok := v.(Num)
	if !ok {
		return 0, invalidArgumentType("number", v)
	}
	return float64(n), nil
}

// PopString pops the top of the stack and requires it to be a string.
func (p *Pesc) PopString() (string, error) {
	v, err := p.Pop()
	if err != nil {
		return "", err
	}
	s, ok := v.(Str)
	if !ok {
		return "", invalidArgumentType("string", v)
	}
	return string(s), nil
}

// PopBlock pops the top of the stack and requires it to be a block.
func (p *Pesc) PopBlock() (Block, error) {
	v, err := p.Pop()
	if err != nil {
		return nil, err
	}
	b, ok := v.(Block)
	if !ok {
		return nil, invalidArgumentType("macro", v)
	}
	return b, nil
}

// PopBool pops the top of the stack and coerces it by value: the empty
// string and zero are false, any other string or number is true, and
// booleans pass through. Anything else is not coercible.
func (p *Pesc) PopBool() (bool, error) {
	v, err := p.Pop()
	if err != nil {
		return false, err
	}
	switch val := v.(type) {
	case Str:
		return val != "", nil
	case Num:
		return val != 0, nil
	case Bool:
		return bool(val), nil
	}
	return false, invalidBoolean(v)
}

// PeekAt returns the value at depth i from the top (0 = top) without
// removing it.
func (p *Pesc) PeekAt(i int) (Value, error) {
	if i < 0 || i >= len(p.stack) {
		return nil, outOfBounds(i, len(p.stack))
	}
	return p.stack[len(p.stack)-1-i], nil
}

// SetAt overwrites the value at depth i from the top.
func (p *Pesc) SetAt(i int, v Value) error {
	if i < 0 || i >= len(p.stack) {
		return outOfBounds(i, len(p.stack))
	}
	p.stack[len(p.stack)-1-i] = v
	return nil
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
