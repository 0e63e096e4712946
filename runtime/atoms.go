package runtime

// AtomTable is a table of mutable slots. It only grows.
type AtomTable struct {
	slots []interface{}
}

// NewAtomTable creates an empty atom table.
func NewAtomTable() *AtomTable {
	return &AtomTable{slots: make([]interface{}, 0, 16)}
}

// Alloc stores a value in the next free slot and returns its index.
func (at *AtomTable) Alloc(value interface{}) int {
	at.slots = append(at.slots, value)
	tracer().Debugf("allocated atom #%d", len(at.slots)-1)
	return len(at.slots) - 1
}

// Get reads the slot at index i. The flag is false for an unallocated index.
func (at *AtomTable) Get(i int) (interface{}, bool) {
	if i < 0 || i >= len(at.slots) {
		return nil, false
	}
	return at.slots[i], true
}

// Set overwrites the slot at index i. Returns false for an unallocated index.
func (at *AtomTable) Set(i int, value interface{}) bool {
	if i < 0 || i >= len(at.slots) {
		return false
	}
	at.slots[i] = value
	return true
}

// Len returns the number of allocated atoms.
func (at *AtomTable) Len() int {
	return len(at.slots)
}
