package mal

import "strings"

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

func list(intp *Interpreter, args []Value) (Value, error) {
	return NewList(args...), nil
}

func vector(intp *Interpreter, args []Value) (Value, error) {
	v := make(Vector, len(args))
	copy(v, args)
	return v, nil
}

func symbol(intp *Interpreter, args []Value) (Value, error) {
	switch x := args[0].(type) {
	case Str:
		return Symbol(x), nil
	case Symbol:
		return x, nil
	}
	return nil, typeError("symbol", "a string", args[0])
}

func keyword(intp *Interpreter, args []Value) (Value, error) {
	switch x := args[0].(type) {
	case Str:
		if strings.HasPrefix(string(x), ":") {
			return Keyword(x), nil
		}
		return Keyword(":" + string(x)), nil
	case Keyword:
		return x, nil
	}
	return nil, typeError("keyword", "a string", args[0])
}

func sequenceArg(name string, v Value) ([]Value, error) {
	elems, ok := SeqElements(v)
	if !ok {
		return nil, typeError(name, "a list or vector", v)
	}
	return elems, nil
}

func nth(intp *Interpreter, args []Value) (Value, error) {
	elems, ok := Elements(args[0])
	if !ok {
		return nil, typeError("nth", "a list or vector", args[0])
	}
	i, ok := args[1].(Int)
	if !ok {
		return nil, typeError("nth", "an integer index", args[1])
	}
	if i < 0 || int64(i) >= int64(len(elems)) {
		return nil, Errorf(DomainError, "nth: index %d out of bounds for sequence of length %d",
			int64(i), len(elems))
	}
	return elems[i], nil
}

func first(intp *Interpreter, args []Value) (Value, error) {
	elems, err := sequenceArg("first", args[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Nil, nil
	}
	return elems[0], nil
}

func rest(intp *Interpreter, args []Value) (Value, error) {
	elems, err := sequenceArg("rest", args[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return List{}, nil
	}
	return NewList(elems[1:]...), nil
}

func concat(intp *Interpreter, args []Value) (Value, error) {
	result := List{}
	for _, a := range args {
		elems, err := sequenceArg("concat", a)
		if err != nil {
			return nil, err
		}
		result = append(result, elems...)
	}
	return result, nil
}

// insert handles (insert x seq) and (insert x seq i). Without an index, x is
// put in front. The result is of the same kind as seq.
func insert(intp *Interpreter, args []Value) (Value, error) {
	elems, err := sequenceArg("insert", args[1])
	if err != nil {
		return nil, err
	}
	at := 0
	if len(args) == 3 {
		i, ok := args[2].(Int)
		if !ok {
			return nil, typeError("insert", "an integer index", args[2])
		}
		if i < 0 || int64(i) > int64(len(elems)) {
			return nil, Errorf(DomainError, "insert: index %d out of bounds for sequence of length %d",
				int64(i), len(elems))
		}
		at = int(i)
	}
	result := make([]Value, 0, len(elems)+1)
	result = append(result, elems[:at]...)
	result = append(result, args[0])
	result = append(result, elems[at:]...)
	if _, ok := args[1].(Vector); ok {
		return Vector(result), nil
	}
	return List(result), nil
}

// seq converts to a list. Empty sequences and strings yield nil, a string
// yields its characters.
func seq(intp *Interpreter, args []Value) (Value, error) {
	if s, ok := args[0].(Str); ok {
		if len(s) == 0 {
			return Nil, nil
		}
		chars := List{}
		for _, r := range string(s) {
			chars = append(chars, Str(string(r)))
		}
		return chars, nil
	}
	elems, err := sequenceArg("seq", args[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Nil, nil
	}
	return NewList(elems...), nil
}

func count(intp *Interpreter, args []Value) (Value, error) {
	switch x := args[0].(type) {
	case Str:
		return Int(len([]rune(string(x)))), nil
	case *Dict:
		return Int(x.Len()), nil
	}
	elems, err := sequenceArg("count", args[0])
	if err != nil {
		return nil, err
	}
	return Int(len(elems)), nil
}

func emptyP(intp *Interpreter, args []Value) (Value, error) {
	n, err := count(intp, args)
	if err != nil {
		return nil, err
	}
	return Bool(n.(Int) == 0), nil
}

// apply handles (apply f args... seq).
func apply(intp *Interpreter, args []Value) (Value, error) {
	last := args[len(args)-1]
	spread, err := sequenceArg("apply", last)
	if err != nil {
		return nil, err
	}
	argv := make([]Value, 0, len(args)-2+len(spread))
	argv = append(argv, args[1:len(args)-1]...)
	argv = append(argv, spread...)
	return intp.Apply(args[0], argv)
}
