/*
Package mrepl/main provides an interactive command line tool (M.REPL)
for the MAL Lisp dialect.

Input is collected line by line until an empty line is entered; then the
collected text is evaluated and the result printed. Lines starting with
`:ast` print the form following it as a tree instead of evaluating it.

    mrepl [-trace Level] [-prelude lib.mal] [-init file.mal] [args...]

Positional arguments are available to programs as *ARGV*. Quit with <ctrl>D
or by calling (exit).


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.eval'
func tracer() tracing.Trace {
	return tracing.Select("gomal.eval")
}
