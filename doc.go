/* Package main: pesc -- a tiny concatenative calculator language

A pesc program is a flat sequence of literals and operators that all act
on one shared operand stack. There is no syntax tree to speak of: the
reader turns source text into tokens in a single left-to-right scan, and
the engine pushes every literal and dispatches every operator, in order.

The lexical grammar, in the priority order the reader checks the
character under its cursor:

	3.14 1_000    numbers; digits, '.' and '_', underscores stripped
	(-5)          parenthesized numbers, for text an operator would claim
	"hello"       strings, raw characters, no escapes
	[add]         a function reference, pushed as a value
	{1 2 +}       a block: parsed but unevaluated tokens, pushed as a value
	}             ends the enclosing block (or the whole program)
	T F           booleans
	\ comment \   comments, ended by '\' or newline, whichever comes first
	+             anything else must be a registered operator alias

Operator aliases are single characters mapped to function names. The
mapping is consulted twice, at different times on purpose: at parse time
only to decide whether a character is a token at all, and at evaluation
time to resolve which function actually runs. Code can therefore be
parsed under one registry and run under a richer one.

Blocks and function references are ordinary values until something
invokes them. The run operator pops and invokes; ifelse picks a branch
and invokes it; def registers a block under a new name, growing the
language from inside a program:

	{d *} "square" @        \ define square \
	7 [square];             \ -> 49 \

A failed invocation never leaves a half-mutated stack behind: the engine
snapshots the stack before each call and restores it if the call fails,
keeping the stack that the failure produced only for the error report.
The session, and the stack, carry on after an error.

The interpreter runs a script given as a command line argument, or an
interactive line-edited prompt when given none.
*/
package main
