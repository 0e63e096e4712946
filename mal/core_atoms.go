package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

func atom(intp *Interpreter, args []Value) (Value, error) {
	return Atom(intp.rt.Atoms.Alloc(args[0])), nil
}

func atomAt(intp *Interpreter, args []Value) (Value, error) {
	i, ok := args[0].(Int)
	if !ok {
		return nil, typeError("atom-at", "an integer index", args[0])
	}
	if i < 0 || int64(i) >= int64(intp.rt.Atoms.Len()) {
		return nil, Errorf(DomainError, "atom-at: no atom with index %d", int64(i))
	}
	return Atom(i), nil
}

func atomArg(name string, v Value) (Atom, error) {
	a, ok := v.(Atom)
	if !ok {
		return 0, typeError(name, "an atom", v)
	}
	return a, nil
}

func deref(intp *Interpreter, args []Value) (Value, error) {
	a, err := atomArg("deref", args[0])
	if err != nil {
		return nil, err
	}
	v, ok := intp.rt.Atoms.Get(int(a))
	if !ok {
		return nil, Errorf(DomainError, "deref: no atom with index %d", int(a))
	}
	return v.(Value), nil
}

func reset(intp *Interpreter, args []Value) (Value, error) {
	a, err := atomArg("reset!", args[0])
	if err != nil {
		return nil, err
	}
	if !intp.rt.Atoms.Set(int(a), args[1]) {
		return nil, Errorf(DomainError, "reset!: no atom with index %d", int(a))
	}
	return args[1], nil
}

// swap handles (swap! atom f args...), storing (f @atom args...).
func swap(intp *Interpreter, args []Value) (Value, error) {
	old, err := deref(intp, args[:1])
	if err != nil {
		return nil, err
	}
	argv := make([]Value, 0, len(args)-1)
	argv = append(argv, old)
	argv = append(argv, args[2:]...)
	v, err := intp.Apply(args[1], argv)
	if err != nil {
		return nil, err
	}
	return reset(intp, []Value{args[0], v})
}
