package mal

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Equal compares two values structurally. Lists and vectors with equal
// elements are equal to each other. Functions are equal only to themselves.
func Equal(a, b Value) bool {
	if a == nil {
		a = Nil
	}
	if b == nil {
		b = Nil
	}
	if as, ok := Elements(a); ok {
		bs, ok := Elements(b)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	switch x := a.(type) {
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || x.Len() != y.Len() {
			return false
		}
		eq := true
		x.Each(func(k DictKey, v Value) {
			if !eq {
				return
			}
			w, found := y.Get(k)
			eq = found && Equal(v, w)
		})
		return eq
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	}
	return a == b
}
