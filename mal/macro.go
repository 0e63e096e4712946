package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// macroCall checks if ast is a call of a macro. The head of the form may
// be a symbol bound to a macro or a macro itself.
func (intp *Interpreter) macroCall(ast Value) (*Function, []Value, bool) {
	form, ok := ast.(List)
	if !ok || len(form) == 0 {
		return nil, nil, false
	}
	head := form[0]
	if sym, ok := head.(Symbol); ok {
		if head, ok = intp.env.Get(string(sym)); !ok {
			return nil, nil, false
		}
	}
	if m, ok := head.(*Function); ok && m.IsMacro {
		return m, form[1:], true
	}
	return nil, nil, false
}

// expandOnce binds the unevaluated arguments to the parameters of a macro
// and evaluates its body.
func (intp *Interpreter) expandOnce(m *Function, args []Value) (Value, error) {
	level := intp.env.Level()
	defer intp.env.Unwind(level)
	if err := intp.bindCall(m, args); err != nil {
		return nil, err
	}
	return intp.Eval(m.Body)
}

// expandMacros expands ast until it is no macro call any more.
func (intp *Interpreter) expandMacros(ast Value) (Value, error) {
	for {
		m, args, ok := intp.macroCall(ast)
		if !ok {
			return ast, nil
		}
		expanded, err := intp.expandOnce(m, args)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("macro expansion %v => %v", ast, expanded)
		ast = expanded
	}
}

// defmacroBang handles (defmacro! name fn).
func defmacroBang(intp *Interpreter, args []Value) (Value, error) {
	name, ok := args[0].(Symbol)
	if !ok {
		return nil, typeError("defmacro!", "a symbol", args[0])
	}
	v, err := intp.Eval(args[1])
	if err != nil {
		return nil, err
	}
	f, ok := v.(*Function)
	if !ok {
		return nil, typeError("defmacro!", "a function", v)
	}
	intp.env.Set(string(name), f.WithMacro())
	return name, nil
}

func macroexpand1(intp *Interpreter, args []Value) (Value, error) {
	m, margs, ok := intp.macroCall(args[0])
	if !ok {
		return args[0], nil
	}
	return intp.expandOnce(m, margs)
}

func macroexpand(intp *Interpreter, args []Value) (Value, error) {
	return intp.expandMacros(args[0])
}

// --- Quasiquote ------------------------------------------------------------

func quasiquote(intp *Interpreter, args []Value) (Value, error) {
	return intp.quasi(args[0], true)
}

// quasi transforms a template. Sequences become lists, except for the
// result of an unquote at the top of a template.
func (intp *Interpreter) quasi(tmpl Value, top bool) (Value, error) {
	elems, ok := Elements(tmpl)
	if !ok {
		return tmpl, nil
	}
	if arg, ok := unquoted(tmpl, "unquote"); ok {
		return intp.Eval(arg)
	}
	if arg, ok := unquoted(tmpl, "splice-unquote"); ok && top {
		return intp.spliced(arg)
	}
	result := make(List, 0, len(elems))
	for _, el := range elems {
		if arg, ok := unquoted(el, "splice-unquote"); ok {
			spread, err := intp.spliced(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, spread...)
			continue
		}
		q, err := intp.quasi(el, false)
		if err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	return result, nil
}

// unquoted matches (marker arg).
func unquoted(v Value, marker string) (Value, bool) {
	form, ok := v.(List)
	if !ok || len(form) != 2 || !isNamed(form[0], marker) {
		return nil, false
	}
	return form[1], true
}

func (intp *Interpreter) spliced(arg Value) (List, error) {
	v, err := intp.Eval(arg)
	if err != nil {
		return nil, err
	}
	elems, ok := SeqElements(v)
	if !ok {
		return nil, typeError("splice-unquote", "a sequence", v)
	}
	return NewList(elems...), nil
}
