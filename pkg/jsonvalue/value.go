// Package jsonvalue models a JSON document as a tagged union with ordered
// objects, and converts it to and from text.
//
// Containers have reference semantics: a Value holding an Object or Array
// shares the container with every copy of that Value, so mutating a container
// reached through a path mutates the document. Use Clone for an independent
// copy.
package jsonvalue

import (
	"math"
	"strconv"
)

// Kind enumerates the JSON value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String returns the lower-case JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is one JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or number literal
	obj  *Object
	arr  *Array
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Number returns a JSON number from its literal text. The literal is not
// validated; use ParseNumber for user input.
func Number(lit string) Value { return Value{kind: KindNumber, s: lit} }

// Int returns a JSON integer number.
func Int(i int64) Value { return Number(strconv.FormatInt(i, 10)) }

// Float returns a JSON number that always renders with a fraction or
// exponent, so 3.0 stays "3.0" rather than collapsing to an integer.
func Float(f float64) Value {
	lit := strconv.FormatFloat(f, 'f', -1, 64)
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		lit = strconv.FormatFloat(f, 'g', -1, 64)
	}
	for _, c := range lit {
		if c == '.' || c == 'e' || c == 'E' {
			return Number(lit)
		}
	}
	return Number(lit + ".0")
}

// NewObject returns an empty JSON object.
func NewObject() Value { return Value{kind: KindObject, obj: &Object{index: map[string]int{}}} }

// NewArray returns a JSON array holding items.
func NewArray(items ...Value) Value {
	a := &Array{items: make([]Value, 0, len(items))}
	a.items = append(a.items, items...)
	return Value{kind: KindArray, arr: a}
}

// ObjectOf builds an object holding members in order.
func ObjectOf(members ...Member) Value {
	v := NewObject()
	for _, m := range members {
		v.obj.Set(m.Key, m.Value)
	}
	return v
}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsContainer reports whether v is an object or an array.
func (v Value) IsContainer() bool { return v.kind == KindObject || v.kind == KindArray }

// Object returns the object held by v, or nil.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Array returns the array held by v, or nil.
func (v Value) Array() *Array {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Str returns the string contents; empty for other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// BoolValue returns the boolean; false for other kinds.
func (v Value) BoolValue() bool { return v.kind == KindBool && v.b }

// NumberText returns the number literal; empty for other kinds.
func (v Value) NumberText() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.s
}

// Float64 parses the number literal.
func (v Value) Float64() (float64, error) {
	return strconv.ParseFloat(v.NumberText(), 64)
}

// Text renders scalars the way they read in the tree: strings unquoted,
// other scalars as their JSON literal, containers as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.s
	case KindString:
		return v.s
	case KindObject, KindArray:
		return Serialize(v, 0)
	}
	return ""
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindObject:
		out := NewObject()
		for _, k := range v.obj.keys {
			out.obj.Set(k, v.obj.vals[v.obj.index[k]].Clone())
		}
		return out
	case KindArray:
		items := make([]Value, len(v.arr.items))
		for i, it := range v.arr.items {
			items[i] = it.Clone()
		}
		return NewArray(items...)
	default:
		return v
	}
}

// Equal reports structural equality, including object key order and number
// literals.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.s == b.s
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i, k := range a.obj.keys {
			if b.obj.keys[i] != k {
				return false
			}
			if !Equal(a.obj.vals[i], b.obj.vals[i]) {
				return false
			}
		}
		return true
	case KindArray:
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i := range a.arr.items {
			if !Equal(a.arr.items[i], b.arr.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}
