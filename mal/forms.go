package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// defBang handles (def! name expr). The binding goes to the innermost scope.
func defBang(intp *Interpreter, args []Value) (Value, error) {
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, typeError("def!", "a symbol", args[0])
	}
	v, err := intp.Eval(args[1])
	if err != nil {
		return nil, err
	}
	intp.env.Set(string(name), v)
	tracer().Debugf("def! %v = %v", name, v)
	return name, nil
}

func quote(intp *Interpreter, args []Value) (Value, error) {
	return args[0], nil
}

// try handles (try* expr (catch* sym body...)).
func try(intp *Interpreter, args []Value) (Value, error) {
	var sym Symbol
	var body []Value
	if len(args) == 2 {
		clause, ok := args[1].(List)
		if !ok || len(clause) < 2 || !isNamed(clause[0], "catch*") {
			return nil, Errorf(RuntimeError, "try*: malformed catch* clause %s", PrStr(args[1], true))
		}
		if sym, ok = clause[1].(Symbol); !ok {
			return nil, typeError("catch*", "a symbol", clause[1])
		}
		body = clause[2:]
	}
	v, err := intp.Eval(args[0])
	if err == nil || len(args) == 1 {
		return v, err
	}
	caught := Caught(err)
	tracer().Debugf("catch* %v <- %v", sym, caught)
	level := intp.env.Level()
	defer intp.env.Unwind(level)
	intp.env.Push("catch*")
	intp.env.Set(string(sym), caught)
	return intp.Eval(implicitDo(body))
}

func throw(intp *Interpreter, args []Value) (Value, error) {
	return nil, Throw(args[0])
}

// eval evaluates its argument a second time, with global bindings only.
func eval(intp *Interpreter, args []Value) (Value, error) {
	return intp.env.global(func() (Value, error) {
		return intp.Eval(args[0])
	})
}

// isNamed is true for a symbol or built-in with the given name.
func isNamed(v Value, name string) bool {
	switch x := v.(type) {
	case Symbol:
		return string(x) == name
	case BuiltIn:
		return x.Name() == name
	}
	return false
}
