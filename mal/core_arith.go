package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Arithmetic and comparison on integers.

func integers(name string, args []Value) ([]Int, error) {
	ns := make([]Int, len(args))
	for i, a := range args {
		n, ok := a.(Int)
		if !ok {
			return nil, typeError(name, "an integer", a)
		}
		ns[i] = n
	}
	return ns, nil
}

func add(intp *Interpreter, args []Value) (Value, error) {
	ns, err := integers("+", args)
	if err != nil {
		return nil, err
	}
	var sum Int
	for _, n := range ns {
		sum += n
	}
	return sum, nil
}

// (- x) negates x, (- x y z) is x-y-z.
func sub(intp *Interpreter, args []Value) (Value, error) {
	ns, err := integers("-", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		return -ns[0], nil
	}
	d := ns[0]
	for _, n := range ns[1:] {
		d -= n
	}
	return d, nil
}

func mul(intp *Interpreter, args []Value) (Value, error) {
	ns, err := integers("*", args)
	if err != nil {
		return nil, err
	}
	p := Int(1)
	for _, n := range ns {
		p *= n
	}
	return p, nil
}

// (/ x) is 1/x, (/ x y z) is x/y/z. Division truncates.
func div(intp *Interpreter, args []Value) (Value, error) {
	ns, err := integers("/", args)
	if err != nil {
		return nil, err
	}
	if len(ns) == 1 {
		ns = []Int{1, ns[0]}
	}
	q := ns[0]
	for _, n := range ns[1:] {
		if n == 0 {
			return nil, Errorf(DomainError, "division by zero")
		}
		q /= n
	}
	return q, nil
}

// compareChain creates a handler testing cmp for each adjacent pair.
func compareChain(name string, cmp func(a, b Int) bool) handler {
	return func(intp *Interpreter, args []Value) (Value, error) {
		ns, err := integers(name, args)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(ns); i++ {
			if !cmp(ns[i-1], ns[i]) {
				return Bool(false), nil
			}
		}
		return Bool(true), nil
	}
}

func equal(intp *Interpreter, args []Value) (Value, error) {
	for i := 1; i < len(args); i++ {
		if !Equal(args[i-1], args[i]) {
			return Bool(false), nil
		}
	}
	return Bool(true), nil
}
