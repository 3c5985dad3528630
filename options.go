package main

import "io"

type Option interface{ apply(p *Pesc) }

var defaultOptions = Options(
	withOutput(io.Discard),
)

// Options combines options into one, applied in order.
func Options(opts ...Option) Option { return optionList(opts) }

type optionList []Option

func (opts optionList) apply(p *Pesc) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(p *Pesc) { p.logfn = logfn }

type outputOption struct{ io.Writer }

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (o outputOption) apply(p *Pesc) { p.out = o.Writer }

type stdlibOption struct{}

func (stdlibOption) apply(p *Pesc) {
	for _, b := range stdlib() {
		p.Register(b.alias, b.name, b.fn)
	}
}
