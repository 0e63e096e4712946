package mal

import (
	"github.com/npillmayer/schuko/gconf"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Eval evaluates a form in the current environment.
//
// Forms in tail position (branches of if, the body of let* and do, function
// bodies and macro expansions) are evaluated by the loop below, not by
// recursion. Scopes opened during a call to Eval are closed before it returns,
// whether evaluation succeeds or not.
func (intp *Interpreter) Eval(ast Value) (Value, error) {
	entry := intp.env.Level()
	defer intp.env.Unwind(entry)
	for {
		var err error
		if ast, err = intp.expandMacros(ast); err != nil {
			return nil, err
		}
		tracer().Debugf("eval %v", ast)
		switch form := ast.(type) {
		case Symbol:
			v, ok := intp.env.Get(string(form))
			if !ok {
				return nil, Errorf(UnknownSymbol, "Unknown symbol: %s", string(form))
			}
			return v, nil
		case Vector:
			elems, err := intp.evalArgs(form)
			if err != nil {
				return nil, err
			}
			return Vector(elems), nil
		case *Dict:
			return intp.evalDict(form)
		case List:
			if len(form) == 0 {
				return form, nil
			}
			head, err := intp.Eval(form[0])
			if err != nil {
				return nil, err
			}
			args := form[1:]
			switch op := head.(type) {
			case BuiltIn:
				switch op {
				case OpIf:
					if err := builtins[op].checkArity(len(args)); err != nil {
						return nil, err
					}
					test, err := intp.Eval(args[0])
					if err != nil {
						return nil, err
					}
					if IsTruthy(test) {
						ast = args[1]
					} else if len(args) == 3 {
						ast = args[2]
					} else {
						return Nil, nil
					}
				case OpLet:
					if err := builtins[op].checkArity(len(args)); err != nil {
						return nil, err
					}
					if err := intp.bindLet(args[0]); err != nil {
						return nil, err
					}
					ast = implicitDo(args[1:])
				case OpDo:
					if len(args) == 0 {
						return Nil, nil
					}
					if _, err := intp.evalArgs(args[:len(args)-1]); err != nil {
						return nil, err
					}
					ast = args[len(args)-1]
				default:
					return intp.callBuiltin(op, args)
				}
			case *Function:
				argv, err := intp.evalArgs(args)
				if err != nil {
					return nil, err
				}
				// scopes of this invocation are not needed any more
				intp.env.Unwind(entry)
				if err := intp.bindCall(op, argv); err != nil {
					return nil, err
				}
				ast = op.Body
			default:
				return nil, Errorf(TypeError, "not callable: %s", PrStr(head, true))
			}
			continue
		default:
			return ast, nil
		}
	}
}

// evalArgs evaluates forms left to right. The first error stops evaluation.
func (intp *Interpreter) evalArgs(forms []Value) ([]Value, error) {
	values := make([]Value, len(forms))
	for i, f := range forms {
		v, err := intp.Eval(f)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// evalDict evaluates the values of a dict literal, in insertion order.
func (intp *Interpreter) evalDict(d *Dict) (Value, error) {
	result := NewDict()
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		ev, err := intp.Eval(v)
		if err != nil {
			return nil, err
		}
		result = result.Assoc(k, ev)
	}
	return result, nil
}

// bindLet opens a scope and binds name/value pairs in order.
func (intp *Interpreter) bindLet(bindings Value) error {
	pairs, ok := Elements(bindings)
	if !ok {
		return typeError("let*", "a binding list or vector", bindings)
	}
	if len(pairs)%2 != 0 {
		return Errorf(RuntimeError, "let* bindings need an even number of forms, got %d", len(pairs))
	}
	intp.env.Push("let*")
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(Symbol)
		if !ok {
			return typeError("let*", "a symbol to bind", pairs[i])
		}
		v, err := intp.Eval(pairs[i+1])
		if err != nil {
			return err
		}
		intp.env.Set(string(name), v)
	}
	return nil
}

// Apply calls a function or built-in with argument values.
func (intp *Interpreter) Apply(fn Value, args []Value) (Value, error) {
	switch f := fn.(type) {
	case BuiltIn:
		return intp.applyBuiltin(f, args)
	case *Function:
		level := intp.env.Level()
		defer intp.env.Unwind(level)
		if err := intp.bindCall(f, args); err != nil {
			return nil, err
		}
		return intp.Eval(f.Body)
	}
	return nil, Errorf(TypeError, "not callable: %s", PrStr(fn, true))
}

// fatal reports a broken evaluator invariant.
func (intp *Interpreter) fatal(format string, args ...interface{}) error {
	err := Errorf(Fatal, format, args...)
	tracer().Errorf("fatal: %s", err.Msg)
	if gconf.GetBool("panic-on-eval-fatal") {
		panic(err.Msg)
	}
	return err
}

// implicitDo turns a sequence of body forms into a single form.
func implicitDo(body []Value) Value {
	switch len(body) {
	case 0:
		return Nil
	case 1:
		return body[0]
	}
	form := make(List, len(body)+1)
	form[0] = OpDo
	copy(form[1:], body)
	return form
}
