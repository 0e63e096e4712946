package mal

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// DictKey is the key of a dictionary entry. Only keywords and strings may
// serve as keys; the tag keeps the keyword :k apart from the string ":k".
type DictKey struct {
	Keyword bool   // key is a keyword
	Text    string // keyword text including ':', or string contents
}

// Encode returns the text encoding of a key: keywords map to their text,
// strings to their contents prefixed by a single space.
func (k DictKey) Encode() string {
	if k.Keyword {
		return k.Text
	}
	return " " + k.Text
}

// Value reconstructs the keyword or string a key was made from.
func (k DictKey) Value() Value {
	if k.Keyword {
		return Keyword(k.Text)
	}
	return Str(k.Text)
}

// KeyOf makes a dictionary key from a keyword or a string.
func KeyOf(v Value) (DictKey, error) {
	switch k := v.(type) {
	case Keyword:
		return DictKey{Keyword: true, Text: string(k)}, nil
	case Str:
		return DictKey{Text: string(k)}, nil
	}
	return DictKey{}, Errorf(DomainError, "unsupported dict key: %s", PrStr(v, true))
}

// Dict is an immutable dictionary from keys to values. It remembers the
// insertion order of its keys. Operations creating a modified dict leave
// the receiver untouched.
type Dict struct {
	m *linkedhashmap.Map
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{m: linkedhashmap.New()}
}

// Kind is DictKind.
func (d *Dict) Kind() Kind { return DictKind }

func (d *Dict) String() string { return PrStr(d, true) }

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil || d.m == nil {
		return 0
	}
	return d.m.Size()
}

// Get looks up the value for key k.
func (d *Dict) Get(k DictKey) (Value, bool) {
	if d.Len() == 0 {
		return nil, false
	}
	v, ok := d.m.Get(k)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Contains is true if there is an entry for k.
func (d *Dict) Contains(k DictKey) bool {
	_, ok := d.Get(k)
	return ok
}

// Assoc returns a copy of d with k bound to v. An existing key keeps its
// position.
func (d *Dict) Assoc(k DictKey, v Value) *Dict {
	c := d.clone()
	c.m.Put(k, v)
	return c
}

// Dissoc returns a copy of d without entries for keys.
func (d *Dict) Dissoc(keys ...DictKey) *Dict {
	c := d.clone()
	for _, k := range keys {
		c.m.Remove(k)
	}
	return c
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []DictKey {
	keys := make([]DictKey, 0, d.Len())
	d.Each(func(k DictKey, _ Value) {
		keys = append(keys, k)
	})
	return keys
}

// Each calls f for every entry, in insertion order.
func (d *Dict) Each(f func(k DictKey, v Value)) {
	if d.Len() == 0 {
		return
	}
	it := d.m.Iterator()
	for it.Next() {
		f(it.Key().(DictKey), it.Value().(Value))
	}
}

func (d *Dict) clone() *Dict {
	c := NewDict()
	d.Each(func(k DictKey, v Value) {
		c.m.Put(k, v)
	})
	return c
}
