package mal

import (
	"strconv"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// PrStr renders a value as text. With readable set, strings are quoted and
// escaped such that the reader will read them back; otherwise they are
// printed as they are.
func PrStr(v Value, readable bool) string {
	var b strings.Builder
	writeValue(&b, v, readable)
	return b.String()
}

// PrStrs renders values and joins them with sep.
func PrStrs(values []Value, readable bool, sep string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		writeValue(&b, v, readable)
	}
	return b.String()
}

func writeValue(b *strings.Builder, v Value, readable bool) {
	switch x := v.(type) {
	case nil, NilType:
		b.WriteString("nil")
	case Bool:
		if x {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case Str:
		if readable {
			writeQuoted(b, string(x))
		} else {
			b.WriteString(string(x))
		}
	case Keyword:
		b.WriteString(string(x))
	case Symbol:
		b.WriteString(string(x))
	case List:
		writeSeq(b, x, "(", ")", readable)
	case Vector:
		writeSeq(b, x, "[", "]", readable)
	case *Dict:
		b.WriteByte('{')
		first := true
		x.Each(func(k DictKey, val Value) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			writeValue(b, k.Value(), readable)
			b.WriteByte(' ')
			writeValue(b, val, readable)
		})
		b.WriteByte('}')
	case BuiltIn:
		b.WriteString(x.Name())
	case *Function:
		b.WriteString("(fn* [")
		for i, p := range x.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			if x.Variadic && i == len(x.Params)-1 {
				b.WriteString("& ")
			}
			b.WriteString(p)
		}
		b.WriteString("] ")
		writeValue(b, x.Body, readable)
		b.WriteByte(')')
	case Atom:
		b.WriteString("(atom-at ")
		b.WriteString(strconv.Itoa(int(x)))
		b.WriteByte(')')
	default:
		panic("printer: unknown value type")
	}
}

func writeSeq(b *strings.Builder, elems []Value, open, close string, readable bool) {
	b.WriteString(open)
	for i, el := range elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeValue(b, el, readable)
	}
	b.WriteString(close)
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
