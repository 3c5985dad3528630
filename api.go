package main

import "io"

// New builds an engine with empty registries, applies the default
// options and then the caller's. A bare engine knows no functions at
// all; WithStdlib loads the built-in operator library.
func New(opts ...Option) *Pesc {
	p := &Pesc{
		funcs: make(map[string]FuncImpl),
		ops:   make(map[rune]string),
	}
	defaultOptions.apply(p)
	Options(opts...).apply(p)
	return p
}

func WithOutput(w io.Writer) Option { return withOutput(w) }
func WithStdlib() Option            { return stdlibOption{} }

func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
