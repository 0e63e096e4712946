package mal

import "fmt"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// BuiltIn identifies a primitive operation. Built-ins are bound in the global
// frame under their canonical names and evaluate to themselves.
type BuiltIn int

// Built-in operations
const (
	OpAdd BuiltIn = iota
	OpSub
	OpMul
	OpDiv
	OpLess
	OpEqual
	OpLessEq
	OpGreater
	OpGreaterEq
	OpHashMap
	OpVector
	OpList
	OpSymbol
	OpKeyword
	OpNth
	OpRest
	OpFirst
	OpConcat
	OpApply
	OpInsert
	OpSeq
	OpCount
	OpEmptyP
	OpAssoc
	OpDissoc
	OpGet
	OpContainsP
	OpKeys
	OpVals
	OpAtom
	OpAtomAt
	OpDeref
	OpReset
	OpSwap
	OpDef
	OpLet
	OpFn
	OpIf
	OpDo
	OpDefmacro
	OpQuote
	OpQuasiquote
	OpUnquote
	OpSpliceUnquote
	OpTry
	OpCatch
	OpThrow
	OpEval
	OpMacroexpand1
	OpMacroexpand
	OpPrStr
	OpStr
	OpPrintString
	OpPrn
	OpPrintln
	OpReadline
	OpSlurp
	OpReadString
	OpLoadFile
	OpTypeStr
	OpExit
	OpTimeMs
	builtInCount
)

// Kind is BuiltInKind.
func (op BuiltIn) Kind() Kind { return BuiltInKind }

// Name returns the canonical name of a built-in.
func (op BuiltIn) Name() string {
	if op < 0 || op >= builtInCount {
		return fmt.Sprintf("<built-in %d>", int(op))
	}
	return builtins[op].name
}

func (op BuiltIn) String() string { return op.Name() }

// handler implements a built-in. It receives the arguments of the call form,
// evaluated or not, depending on the built-in.
type handler func(intp *Interpreter, args []Value) (Value, error)

const variadic = -1

type builtinSpec struct {
	name     string
	min, max int  // arity bounds, max may be variadic
	lazy     bool // handler receives unevaluated arguments
	fn       handler
}

func (spec builtinSpec) checkArity(n int) error {
	if n >= spec.min && (spec.max == variadic || n <= spec.max) {
		return nil
	}
	var expected string
	switch {
	case spec.max == variadic:
		expected = fmt.Sprintf("at least %d", spec.min)
	case spec.min == spec.max:
		expected = fmt.Sprintf("%d", spec.min)
	default:
		expected = fmt.Sprintf("%d to %d", spec.min, spec.max)
	}
	return arityError(spec.name, n, expected)
}

var builtins [builtInCount]builtinSpec

// The table is filled in init, as handlers refer back to the evaluator.
func init() {
	def := func(op BuiltIn, name string, min, max int, fn handler) {
		builtins[op] = builtinSpec{name: name, min: min, max: max, fn: fn}
	}
	form := func(op BuiltIn, name string, min, max int, fn handler) {
		builtins[op] = builtinSpec{name: name, min: min, max: max, lazy: true, fn: fn}
	}
	// arithmetic and comparison
	def(OpAdd, "+", 0, variadic, add)
	def(OpSub, "-", 1, variadic, sub)
	def(OpMul, "*", 0, variadic, mul)
	def(OpDiv, "/", 1, variadic, div)
	def(OpLess, "<", 1, variadic, compareChain("<", func(a, b Int) bool { return a < b }))
	def(OpLessEq, "<=", 1, variadic, compareChain("<=", func(a, b Int) bool { return a <= b }))
	def(OpGreater, ">", 1, variadic, compareChain(">", func(a, b Int) bool { return a > b }))
	def(OpGreaterEq, ">=", 1, variadic, compareChain(">=", func(a, b Int) bool { return a >= b }))
	def(OpEqual, "=", 1, variadic, equal)
	// constructors
	def(OpHashMap, "hash-map", 0, variadic, hashMap)
	def(OpVector, "vector", 0, variadic, vector)
	def(OpList, "list", 0, variadic, list)
	def(OpSymbol, "symbol", 1, 1, symbol)
	def(OpKeyword, "keyword", 1, 1, keyword)
	// sequences
	def(OpNth, "nth", 2, 2, nth)
	def(OpRest, "rest", 1, 1, rest)
	def(OpFirst, "first", 1, 1, first)
	def(OpConcat, "concat", 0, variadic, concat)
	def(OpApply, "apply", 2, variadic, apply)
	def(OpInsert, "insert", 2, 3, insert)
	def(OpSeq, "seq", 1, 1, seq)
	def(OpCount, "count", 1, 1, count)
	def(OpEmptyP, "empty?", 1, 1, emptyP)
	// dictionaries
	def(OpAssoc, "assoc", 1, variadic, assoc)
	def(OpDissoc, "dissoc", 1, variadic, dissoc)
	def(OpGet, "get", 2, 2, get)
	def(OpContainsP, "contains?", 2, 2, containsP)
	def(OpKeys, "keys", 1, 1, keys)
	def(OpVals, "vals", 1, 1, vals)
	// atoms
	def(OpAtom, "atom", 1, 1, atom)
	def(OpAtomAt, "atom-at", 1, 1, atomAt)
	def(OpDeref, "deref", 1, 1, deref)
	def(OpReset, "reset!", 2, 2, reset)
	def(OpSwap, "swap!", 2, variadic, swap)
	// special forms; if, let* and do are handled by the evaluator loop
	form(OpDef, "def!", 2, 2, defBang)
	form(OpLet, "let*", 1, variadic, nil)
	form(OpFn, "fn*", 1, variadic, fnStar)
	form(OpIf, "if", 2, 3, nil)
	form(OpDo, "do", 0, variadic, nil)
	form(OpDefmacro, "defmacro!", 2, 2, defmacroBang)
	form(OpQuote, "quote", 1, 1, quote)
	form(OpQuasiquote, "quasiquote", 1, 1, quasiquote)
	form(OpUnquote, "unquote", 1, 1, misplaced("unquote", "quasiquote"))
	form(OpSpliceUnquote, "splice-unquote", 1, 1, misplaced("splice-unquote", "quasiquote"))
	form(OpTry, "try*", 1, 2, try)
	form(OpCatch, "catch*", 1, variadic, misplaced("catch*", "try*"))
	def(OpThrow, "throw", 1, 1, throw)
	def(OpEval, "eval", 1, 1, eval)
	form(OpMacroexpand1, "macroexpand-1", 1, 1, macroexpand1)
	form(OpMacroexpand, "macroexpand", 1, 1, macroexpand)
	// strings and I/O
	def(OpPrStr, "pr-str", 0, variadic, prStr)
	def(OpStr, "str", 0, variadic, str)
	def(OpPrintString, "print-string", 0, variadic, printString)
	def(OpPrn, "prn", 0, variadic, prn)
	def(OpPrintln, "println", 0, variadic, printLine)
	def(OpReadline, "readline", 0, 1, readline)
	def(OpSlurp, "slurp", 1, 1, slurp)
	def(OpReadString, "read-string", 1, 1, readString)
	def(OpLoadFile, "load-file", 1, 1, loadFile)
	// reflection and system
	def(OpTypeStr, "type-str", 1, 1, typeStr)
	def(OpExit, "exit", 0, 1, exit)
	def(OpTimeMs, "time-ms", 0, 0, timeMs)
}

// callBuiltin applies op to the arguments of a call form.
func (intp *Interpreter) callBuiltin(op BuiltIn, args []Value) (Value, error) {
	spec := builtins[op]
	if err := spec.checkArity(len(args)); err != nil {
		return nil, err
	}
	if spec.fn == nil {
		return nil, intp.fatal("built-in '%s' reached its call handler", spec.name)
	}
	if !spec.lazy {
		var err error
		if args, err = intp.evalArgs(args); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("call %v with %d arguments", op, len(args))
	return spec.fn(intp, args)
}

// applyBuiltin applies op to argument values. Special forms operate on
// source forms, not on values, and cannot be applied.
func (intp *Interpreter) applyBuiltin(op BuiltIn, args []Value) (Value, error) {
	spec := builtins[op]
	if spec.lazy {
		return nil, Errorf(TypeError, "special form '%s' cannot be applied", spec.name)
	}
	if err := spec.checkArity(len(args)); err != nil {
		return nil, err
	}
	return spec.fn(intp, args)
}

func misplaced(name, context string) handler {
	return func(intp *Interpreter, args []Value) (Value, error) {
		return nil, Errorf(RuntimeError, "'%s' used outside of %s", name, context)
	}
}
