package path

import (
	"strconv"
	"strings"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
)

// Resolve walks p from root. Key segments need an object holding the key,
// index segments an array with the index in bounds.
func Resolve(root jsonvalue.Value, p Path) (jsonvalue.Value, bool) {
	cur := root
	for _, seg := range p {
		next, ok := step(cur, seg)
		if !ok {
			return jsonvalue.Value{}, false
		}
		cur = next
	}
	return cur, true
}

func step(cur jsonvalue.Value, seg Segment) (jsonvalue.Value, bool) {
	switch cur.Kind() {
	case jsonvalue.KindObject:
		if seg.IsIndex() {
			return jsonvalue.Value{}, false
		}
		return cur.Object().Get(seg.Key())
	case jsonvalue.KindArray:
		if !seg.IsIndex() {
			return jsonvalue.Value{}, false
		}
		return cur.Array().At(seg.Index())
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
		return jsonvalue.Value{}, false
	}
	return jsonvalue.Value{}, false
}

// Write stores v at p. A final key segment upserts into its object; a final
// index segment replaces an existing element. The value's kind may differ
// from what it replaces.
func Write(root jsonvalue.Value, p Path, v jsonvalue.Value) error {
	parentPath, last, ok := p.Split()
	if !ok {
		return errs.New(errs.ErrCodeInvalidInput, "cannot write the document root")
	}
	parent, ok := Resolve(root, parentPath)
	if !ok {
		return errs.New(errs.ErrCodePathNotFound, "no value at %q", parentPath.String())
	}
	switch parent.Kind() {
	case jsonvalue.KindObject:
		if last.IsIndex() {
			return errs.New(errs.ErrCodePathNotFound, "%q is an object, not an array", parentPath.String())
		}
		parent.Object().Set(last.Key(), v)
		return nil
	case jsonvalue.KindArray:
		if !last.IsIndex() {
			return errs.New(errs.ErrCodePathNotFound, "%q is an array, not an object", parentPath.String())
		}
		if !parent.Array().Set(last.Index(), v) {
			return errs.New(errs.ErrCodePathNotFound, "index %d out of range at %q", last.Index(), parentPath.String())
		}
		return nil
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
		return errs.New(errs.ErrCodeTypeMismatch, "%q is a %s, not a container", parentPath.String(), parent.Kind())
	}
	return errs.New(errs.ErrCodeTypeMismatch, "%q is not a container", parentPath.String())
}

// Insert adds v under parent. Objects upsert key with last write wins.
// Arrays read key as an integer: 0 <= i <= len inserts before i, anything
// else (out of range or not a number) appends. Scalars cannot take children.
func Insert(parent jsonvalue.Value, key string, v jsonvalue.Value) error {
	switch parent.Kind() {
	case jsonvalue.KindObject:
		parent.Object().Set(key, v)
		return nil
	case jsonvalue.KindArray:
		arr := parent.Array()
		if i, err := strconv.Atoi(strings.TrimSpace(key)); err == nil && i >= 0 && i <= arr.Len() {
			arr.Insert(i, v)
			return nil
		}
		arr.Append(v)
		return nil
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
		return errs.New(errs.ErrCodeTypeMismatch, "cannot add %q to a %s", key, parent.Kind())
	}
	return errs.New(errs.ErrCodeTypeMismatch, "cannot add %q", key)
}

// InsertAt resolves parentPath and inserts under it.
func InsertAt(root jsonvalue.Value, parentPath Path, key string, v jsonvalue.Value) error {
	parent, ok := Resolve(root, parentPath)
	if !ok {
		return errs.New(errs.ErrCodePathNotFound, "no value at %q", parentPath.String())
	}
	return Insert(parent, key, v)
}

// Delete removes key from parent and reports whether anything was removed.
// For arrays the key may carry the "[i]" label wrapper; unparseable or
// out-of-range indexes are ignored.
func Delete(parent jsonvalue.Value, key string) bool {
	switch parent.Kind() {
	case jsonvalue.KindObject:
		return parent.Object().Delete(key)
	case jsonvalue.KindArray:
		i, err := strconv.Atoi(strings.Trim(key, "[]"))
		if err != nil {
			return false
		}
		return parent.Array().Remove(i)
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
		return false
	}
	return false
}

// DeleteAt removes the value at p. Paths that do not resolve are a no-op.
func DeleteAt(root jsonvalue.Value, p Path) bool {
	parentPath, last, ok := p.Split()
	if !ok {
		return false
	}
	parent, ok := Resolve(root, parentPath)
	if !ok {
		return false
	}
	return Delete(parent, last.String())
}
