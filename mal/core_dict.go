package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

func dictArg(name string, v Value) (*Dict, error) {
	switch d := v.(type) {
	case *Dict:
		return d, nil
	case NilType:
		return NewDict(), nil
	}
	return nil, typeError(name, "a dict", v)
}

func assocPairs(name string, d *Dict, kvs []Value) (*Dict, error) {
	if len(kvs)%2 != 0 {
		return nil, Errorf(ArityError, "'%s' expects key/value pairs, got %d arguments", name, len(kvs))
	}
	for i := 0; i < len(kvs); i += 2 {
		k, err := KeyOf(kvs[i])
		if err != nil {
			return nil, err
		}
		d = d.Assoc(k, kvs[i+1])
	}
	return d, nil
}

func hashMap(intp *Interpreter, args []Value) (Value, error) {
	return assocPairs("hash-map", NewDict(), args)
}

func assoc(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("assoc", args[0])
	if err != nil {
		return nil, err
	}
	return assocPairs("assoc", d, args[1:])
}

func dissoc(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("dissoc", args[0])
	if err != nil {
		return nil, err
	}
	keys := make([]DictKey, len(args)-1)
	for i, a := range args[1:] {
		if keys[i], err = KeyOf(a); err != nil {
			return nil, err
		}
	}
	return d.Dissoc(keys...), nil
}

func get(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("get", args[0])
	if err != nil {
		return nil, err
	}
	k, err := KeyOf(args[1])
	if err != nil {
		return nil, err
	}
	if v, ok := d.Get(k); ok {
		return v, nil
	}
	return Nil, nil
}

func containsP(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("contains?", args[0])
	if err != nil {
		return nil, err
	}
	k, err := KeyOf(args[1])
	if err != nil {
		return nil, err
	}
	return Bool(d.Contains(k)), nil
}

func keys(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("keys", args[0])
	if err != nil {
		return nil, err
	}
	result := List{}
	for _, k := range d.Keys() {
		result = append(result, k.Value())
	}
	return result, nil
}

func vals(intp *Interpreter, args []Value) (Value, error) {
	d, err := dictArg("vals", args[0])
	if err != nil {
		return nil, err
	}
	result := List{}
	d.Each(func(_ DictKey, v Value) {
		result = append(result, v)
	})
	return result, nil
}
