package equal

// Container is the capability set the query layer requires from an external
// collection: iterate keys and values in native order, report size, fetch a
// value by key. The engine assumes nothing about the underlying storage.
type Container interface {
	Len() int
	Keys() []interface{}
	Values() []interface{}
	Get(key interface{}) (interface{}, bool)
}

// Map is an insertion-ordered key/value collection. Entry order is
// significant to uniform equality: two maps holding the same entries in a
// different order are not uniformly equal.
type Map struct {
	keys   []interface{}
	values []interface{}
}

// NewMap returns an empty ordered map
func NewMap() *Map {
	return &Map{}
}

// Set stores a value for a key, appending a new entry or replacing the
// value of an existing key in place (key lookup by strict equality)
func (m *Map) Set(key, value interface{}) *Map {
	for z := range m.keys {
		if strictEqual(m.keys[z], key) {
			m.values[z] = value
			return m
		}
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	return m
}

// Get returns a value by its key
func (m *Map) Get(key interface{}) (interface{}, bool) {
	for z := range m.keys {
		if strictEqual(m.keys[z], key) {
			return m.values[z], true
		}
	}
	return nil, false
}

// Delete removes a key and closes the entry gap
func (m *Map) Delete(key interface{}) bool {
	for z := range m.keys {
		if strictEqual(m.keys[z], key) {
			m.keys = append(m.keys[:z], m.keys[z+1:]...)
			m.values = append(m.values[:z], m.values[z+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns entry keys in insertion order
func (m *Map) Keys() []interface{} {
	return append([]interface{}{}, m.keys...)
}

// Values returns entry values in insertion order
func (m *Map) Values() []interface{} {
	return append([]interface{}{}, m.values...)
}

// Entries returns entry keys and values in insertion order
func (m *Map) Entries() (keys, values []interface{}) {
	return m.Keys(), m.Values()
}

// Set is an insertion-ordered element-only collection: its elements act as
// its keys and it carries no values
type Set struct {
	elems []interface{}
}

// NewSet returns a set of the given elements, in order, duplicates dropped
func NewSet(elems ...interface{}) *Set {
	s := &Set{}
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// Add appends an element unless a strictly equal one is already present
func (s *Set) Add(elem interface{}) *Set {
	if !s.Has(elem) {
		s.elems = append(s.elems, elem)
	}
	return s
}

// Has reports whether a strictly equal element is present
func (s *Set) Has(elem interface{}) bool {
	for _, current := range s.elems {
		if strictEqual(current, elem) {
			return true
		}
	}
	return false
}

// Delete removes an element and closes the gap
func (s *Set) Delete(elem interface{}) bool {
	for z := range s.elems {
		if strictEqual(s.elems[z], elem) {
			s.elems = append(s.elems[:z], s.elems[z+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of elements
func (s *Set) Len() int {
	return len(s.elems)
}

// Keys returns the elements in insertion order
func (s *Set) Keys() []interface{} {
	return append([]interface{}{}, s.elems...)
}

// Weak marks a collection whose contents cannot be inspected. The comparator
// treats any two weak collections as equal; this is a documented caveat, not
// a claim about their contents.
type Weak interface {
	weakContent()
}

// WeakSet holds references keyed by identity; it cannot be iterated
type WeakSet struct {
	refs map[uintptr]struct{}
}

// NewWeakSet returns an empty weak set
func NewWeakSet() *WeakSet {
	return &WeakSet{refs: map[uintptr]struct{}{}}
}

// Add stores a reference; non-reference values cannot be held weakly
func (w *WeakSet) Add(v interface{}) error {
	id, ok := identityOf(v)
	if !ok {
		return errNotReference
	}
	w.refs[id] = struct{}{}
	return nil
}

// Has reports whether the same reference was added
func (w *WeakSet) Has(v interface{}) bool {
	id, ok := identityOf(v)
	if !ok {
		return false
	}
	_, has := w.refs[id]
	return has
}

// Delete removes a reference
func (w *WeakSet) Delete(v interface{}) bool {
	id, ok := identityOf(v)
	if !ok {
		return false
	}
	_, has := w.refs[id]
	delete(w.refs, id)
	return has
}

func (w *WeakSet) weakContent() {}

// WeakMap holds values keyed by reference identity; it cannot be iterated
type WeakMap struct {
	refs map[uintptr]interface{}
}

// NewWeakMap returns an empty weak map
func NewWeakMap() *WeakMap {
	return &WeakMap{refs: map[uintptr]interface{}{}}
}

// Set stores a value for a reference key
func (w *WeakMap) Set(key, value interface{}) error {
	id, ok := identityOf(key)
	if !ok {
		return errNotReference
	}
	w.refs[id] = value
	return nil
}

// Get returns the value stored for the same reference
func (w *WeakMap) Get(key interface{}) (interface{}, bool) {
	id, ok := identityOf(key)
	if !ok {
		return nil, false
	}
	value, has := w.refs[id]
	return value, has
}

// Delete removes a reference key
func (w *WeakMap) Delete(key interface{}) bool {
	id, ok := identityOf(key)
	if !ok {
		return false
	}
	_, has := w.refs[id]
	delete(w.refs, id)
	return has
}

func (w *WeakMap) weakContent() {}
