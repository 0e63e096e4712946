package mal

import (
	"strconv"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// fnStar handles (fn* params body...).
func fnStar(intp *Interpreter, args []Value) (Value, error) {
	params, variadic, err := parseParams(args[0])
	if err != nil {
		return nil, err
	}
	f := &Function{
		Params:   params,
		Variadic: variadic,
		Body:     implicitDo(args[1:]),
	}
	f.Captured = intp.capture(f)
	tracer().Debugf("new closure %v capturing %d bindings", f, len(f.Captured))
	return f, nil
}

// parseParams checks a parameter list. A '&' may only appear once, as the
// next to last entry, and marks the last parameter as collecting the rest.
func parseParams(v Value) ([]string, bool, error) {
	elems, ok := Elements(v)
	if !ok {
		return nil, false, typeError("fn*", "a parameter list or vector", v)
	}
	params := make([]string, 0, len(elems))
	variadic := false
	for i, el := range elems {
		sym, ok := el.(Symbol)
		if !ok {
			return nil, false, typeError("fn*", "a symbol as parameter", el)
		}
		if sym == "&" {
			if variadic || i != len(elems)-2 {
				return nil, false, Errorf(RuntimeError,
					"fn*: '&' must appear once, before the last parameter")
			}
			variadic = true
			continue
		}
		params = append(params, string(sym))
	}
	return params, variadic, nil
}

// capture copies the local bindings of the free symbols of f's body.
// Symbols bound globally are left to resolution at call time.
func (intp *Interpreter) capture(f *Function) map[string]Value {
	free := treeset.NewWith(utils.StringComparator)
	collectSymbols(f.Body, free)
	for _, p := range f.Params {
		free.Remove(p)
	}
	captured := make(map[string]Value)
	for _, name := range free.Values() {
		if v, ok := intp.env.local(name.(string)); ok {
			captured[name.(string)] = v
		}
	}
	return captured
}

func collectSymbols(v Value, syms *treeset.Set) {
	switch x := v.(type) {
	case Symbol:
		syms.Add(string(x))
	case List:
		for _, el := range x {
			collectSymbols(el, syms)
		}
	case Vector:
		for _, el := range x {
			collectSymbols(el, syms)
		}
	case *Dict:
		x.Each(func(_ DictKey, el Value) {
			collectSymbols(el, syms)
		})
	}
}

// bindCall opens the scope of a call to f, loaded with the captured bindings
// first and the parameters second.
func (intp *Interpreter) bindCall(f *Function, args []Value) error {
	if f.Variadic && len(args) < f.MinArgs() {
		return arityError("fn*", len(args), "at least "+strconv.Itoa(f.MinArgs()))
	} else if !f.Variadic && len(args) != len(f.Params) {
		return arityError("fn*", len(args), strconv.Itoa(len(f.Params)))
	}
	intp.env.PushCall("fn*")
	for name, v := range f.Captured {
		intp.env.Set(name, v)
	}
	n := f.MinArgs()
	for i := 0; i < n; i++ {
		intp.env.Set(f.Params[i], args[i])
	}
	if f.Variadic {
		rest := make(List, len(args)-n)
		copy(rest, args[n:])
		intp.env.Set(f.Params[n], rest)
	}
	return nil
}
