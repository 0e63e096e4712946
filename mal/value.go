package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Kind is the variant tag of a value.
type Kind int8

// Value variants
const (
	NilKind Kind = iota
	BoolKind
	IntKind
	StrKind
	KeywordKind
	SymbolKind
	ListKind
	VectorKind
	DictKind
	BuiltInKind
	FunctionKind
	AtomKind
)

var kindNames = [...]string{
	NilKind:      "nil",
	BoolKind:     "bool",
	IntKind:      "integer",
	StrKind:      "string",
	KeywordKind:  "keyword",
	SymbolKind:   "symbol",
	ListKind:     "list",
	VectorKind:   "vector",
	DictKind:     "dict",
	BuiltInKind:  "built-in",
	FunctionKind: "function",
	AtomKind:     "atom",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// Value is the type of every runtime value, including ASTs.
type Value interface {
	Kind() Kind
}

// NilType is the type of Nil.
type NilType struct{}

// Nil is the one and only nil value.
var Nil = NilType{}

// Bool is a boolean value.
type Bool bool

// Int is a 64-bit signed integer value.
type Int int64

// Str is a string value.
type Str string

// Keyword is a self-evaluating identifier. Its text includes the leading ':'.
type Keyword string

// Symbol is an identifier, resolved by environment lookup.
type Symbol string

// List is an ordered sequence of values. Lists are call forms.
type List []Value

// Vector is an ordered sequence of values, used for literals.
type Vector []Value

// Atom is an index into the atom table of an interpreter.
type Atom int

// Function is a user defined function or macro.
//
// A variadic function has its rest parameter as the last entry of Params;
// the '&' marker of the source form is not stored. Captured holds the local
// bindings of the body's free symbols at creation time.
type Function struct {
	Params   []string
	Variadic bool
	Body     Value
	Captured map[string]Value
	IsMacro  bool
}

func (NilType) Kind() Kind    { return NilKind }
func (Bool) Kind() Kind       { return BoolKind }
func (Int) Kind() Kind        { return IntKind }
func (Str) Kind() Kind        { return StrKind }
func (Keyword) Kind() Kind    { return KeywordKind }
func (Symbol) Kind() Kind     { return SymbolKind }
func (List) Kind() Kind       { return ListKind }
func (Vector) Kind() Kind     { return VectorKind }
func (Atom) Kind() Kind       { return AtomKind }
func (*Function) Kind() Kind  { return FunctionKind }

// String methods render the readable form, suitable for tracing.

func (v NilType) String() string   { return PrStr(v, true) }
func (v Bool) String() string      { return PrStr(v, true) }
func (v Int) String() string       { return PrStr(v, true) }
func (v Str) String() string       { return PrStr(v, true) }
func (v Keyword) String() string   { return PrStr(v, true) }
func (v Symbol) String() string    { return PrStr(v, true) }
func (v List) String() string      { return PrStr(v, true) }
func (v Vector) String() string    { return PrStr(v, true) }
func (v Atom) String() string      { return PrStr(v, true) }
func (f *Function) String() string { return PrStr(f, true) }

// WithMacro returns a copy of f with the macro flag set.
func (f *Function) WithMacro() *Function {
	m := *f
	m.IsMacro = true
	return &m
}

// MinArgs returns the number of arguments f requires at least.
func (f *Function) MinArgs() int {
	if f.Variadic {
		return len(f.Params) - 1
	}
	return len(f.Params)
}

// --- Predicates and helpers ------------------------------------------------

// IsTruthy is false for nil and false, true for everything else.
func IsTruthy(v Value) bool {
	switch x := v.(type) {
	case nil, NilType:
		return false
	case Bool:
		return bool(x)
	}
	return true
}

// Elements returns the elements of a list or vector.
func Elements(v Value) ([]Value, bool) {
	switch s := v.(type) {
	case List:
		return s, true
	case Vector:
		return s, true
	}
	return nil, false
}

// SeqElements is like Elements, but accepts nil as the empty sequence.
func SeqElements(v Value) ([]Value, bool) {
	if v == Nil {
		return nil, true
	}
	return Elements(v)
}

// NewList creates a list from values.
func NewList(elements ...Value) List {
	if elements == nil {
		return List{}
	}
	return List(elements)
}
