/*
Package gomal is an interpreter for a small Lisp in the tradition of
Make-A-Lisp (MAL).

The interpreter reads source text, turns it into a tree of values, evaluates
that tree against a lexically scoped environment and prints the results.
Package structure is as follows:

■ scanner: Package scanner defines the tokenizer interface used by the reader,
together with an adapter for lexmachine in sub-package `lexmach`.

■ runtime: Package runtime provides the frame stack, symbol tables and the atom
table the evaluator works on.

■ mal: Package mal implements the value model, the printer and the evaluator,
including closures, macros, quasiquoting and exceptions.

■ mal/mallang: Package mallang implements the reader for MAL source text and
sets up ready-to-use interpreters. Sub-package mrepl is an interactive command
line tool.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gomal
