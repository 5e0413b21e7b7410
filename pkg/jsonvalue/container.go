package jsonvalue

// Object is an insertion-ordered mapping of string keys to values.
type Object struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Members returns the key/value pairs in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	out := make([]Member, len(o.keys))
	for i, k := range o.keys {
		out[i] = Member{Key: k, Value: o.vals[i]}
	}
	return out
}

// Get looks up key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set upserts key. An existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.keys); j++ {
		o.index[o.keys[j]] = j
	}
	return true
}

// Array is an ordered sequence of values.
type Array struct {
	items []Value
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Items returns a copy of the element slice.
func (a *Array) Items() []Value {
	if a == nil {
		return nil
	}
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}

// At returns the element at i.
func (a *Array) At(i int) (Value, bool) {
	if a == nil || i < 0 || i >= len(a.items) {
		return Value{}, false
	}
	return a.items[i], true
}

// Set replaces the element at i and reports whether i was in range.
func (a *Array) Set(i int, v Value) bool {
	if a == nil || i < 0 || i >= len(a.items) {
		return false
	}
	a.items[i] = v
	return true
}

// Append adds v at the end.
func (a *Array) Append(v Value) {
	a.items = append(a.items, v)
}

// Insert places v before position i, shifting later elements right. Callers
// must ensure 0 <= i <= Len.
func (a *Array) Insert(i int, v Value) {
	a.items = append(a.items, Value{})
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
}

// Remove deletes the element at i and reports whether i was in range.
func (a *Array) Remove(i int) bool {
	if a == nil || i < 0 || i >= len(a.items) {
		return false
	}
	a.items = append(a.items[:i], a.items[i+1:]...)
	return true
}
