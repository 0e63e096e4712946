/*
Package mallang provides the reader for MAL source text.

The reader tokenizes input with a lexmachine DFA and builds forms by
recursive descent. Besides lists, vectors and dict literals it knows the
reader macros

    'x   ⇒ (quote x)
    `x   ⇒ (quasiquote x)
    ~x   ⇒ (unquote x)
    ~@x  ⇒ (splice-unquote x)
    @x   ⇒ (deref x)

Commas count as whitespace, ';' starts a comment extending to the end of
the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mallang

import (
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.reader'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.reader")
}

// NewInterpreter creates an interpreter reading MAL source text.
func NewInterpreter(opts ...mal.Option) *mal.Interpreter {
	return mal.NewInterpreter(NewReader(), opts...)
}
