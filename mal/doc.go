/*
Package mal implements the values and the evaluator of a Lisp in the tradition
of Make-A-Lisp (MAL).

Values

Every runtime value is one of a fixed set of variants: nil, booleans, 64-bit
integers, strings, keywords, symbols, lists, vectors, dictionaries, built-in
operations, user defined functions (closures and macros) and atoms. The AST
of a program is just a value.

Evaluation

The evaluator works on an explicit stack of scopes (see package runtime).
It runs a loop for forms in tail position (if, let*, do, function application,
macro expansion), so tail calls do not grow the Go stack. Closures capture the
local bindings of their free symbols when they are created; global symbols are
resolved at call time.

Errors are reported as *Error values. Values raised by `throw` travel inside
the error and are handed to the `catch*` clause of the nearest `try*`.

Clients create an Interpreter with a Reader for source text. Package mallang
provides the standard reader.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.eval'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.eval")
}
