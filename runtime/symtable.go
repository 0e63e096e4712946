package runtime

import "sort"

// SymbolTable stores bindings of names to values (map-like semantics).
// Values are opaque to the runtime.
type SymbolTable struct {
	Table map[string]interface{}
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Table: make(map[string]interface{}),
	}
}

// Resolve checks for a symbol in the symbol table.
func (t *SymbolTable) Resolve(name string) (interface{}, bool) {
	v, ok := t.Table[name]
	return v, ok
}

// Define binds a value to a name, overwriting an existing binding.
// Returns the previous value, if any. Empty names are ignored.
func (t *SymbolTable) Define(name string, value interface{}) interface{} {
	if len(name) == 0 {
		return nil
	}
	old := t.Table[name]
	t.Table[name] = value
	return old
}

// Size counts the symbols in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each symbol in the table in order of names, executing a
// mapper function.
func (t *SymbolTable) Each(mapper func(string, interface{})) {
	names := make([]string, 0, len(t.Table))
	for k := range t.Table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.Table[k])
	}
}
