package main

import "fmt"

// ErrorKind enumerates the closed set of interpreter failures. Every
// error produced by the reader, the engine, or a built-in bottoms out
// in one of these.
type ErrorKind int

const (
	KindUnknownFunction ErrorKind = iota + 1
	KindInvalidArgumentType
	KindInvalidNumberLit
	KindOutOfBounds
	KindNotEnoughArguments
	KindInvalidBoolean
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownFunction:
		return "UnknownFunction"
	case KindInvalidArgumentType:
		return "InvalidArgumentType"
	case KindInvalidNumberLit:
		return "InvalidNumberLit"
	case KindOutOfBounds:
		return "OutOfBounds"
	case KindNotEnoughArguments:
		return "NotEnoughArguments"
	case KindInvalidBoolean:
		return "InvalidBoolean"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error carries one ErrorKind plus that kind's payload fields.
type Error struct {
	Kind ErrorKind

	Name     string // UnknownFunction
	Expected string // InvalidArgumentType
	Actual   string // InvalidArgumentType, rendered value
	Lit      string // InvalidNumberLit, raw literal text
	Index    int    // OutOfBounds
	Len      int    // OutOfBounds
	Value    Value  // InvalidBoolean
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownFunction:
		return fmt.Sprintf("unknown function %s", e.Name)
	case KindInvalidArgumentType:
		return fmt.Sprintf("invalid argument type: expected %s, got %s", e.Expected, e.Actual)
	case KindInvalidNumberLit:
		return fmt.Sprintf("invalid number literal %q", e.Lit)
	case KindOutOfBounds:
		return fmt.Sprintf("out of bounds access (index %d, stack size %d)", e.Index, e.Len)
	case KindNotEnoughArguments:
		return "not enough arguments on stack"
	case KindInvalidBoolean:
		return fmt.Sprintf("cannot use %s as a boolean", e.Value)
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so callers can probe with
// errors.Is(err, &Error{Kind: KindOutOfBounds}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func unknownFunction(name string) *Error {
	return &Error{Kind: KindUnknownFunction, Name: name}
}

func invalidArgumentType(expected string, actual Value) *Error {
	return &Error{Kind: KindInvalidArgumentType, Expected: expected, Actual: actual.String()}
}

func invalidNumberLit(lit string) *Error {
	return &Error{Kind: KindInvalidNumberLit, Lit: lit}
}

func outOfBounds(index, length int) *Error {
	return &Error{Kind: KindOutOfBounds, Index: index, Len: length}
}

func notEnoughArguments() *Error {
	return &Error{Kind: KindNotEnoughArguments}
}

func invalidBoolean(v Value) *Error {
	return &Error{Kind: KindInvalidBoolean, Value: v}
}

// ParseError is a reader failure at a rune offset into the source text.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvalError wraps an engine failure with the token that triggered it and
// the diagnostic stack as the failing call left it. The live stack has
// already been rolled back by the time an EvalError is seen.
type EvalError struct {
	Token Value
	Stack []Value
	Err   error
}

func (e *EvalError) Error() string {
	if e.Token != nil {
		return fmt.Sprintf("in %s: %v", e.Token, e.Err)
	}
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error { return e.Err }
