package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultIndent is the indent width used for the raw text projection.
const DefaultIndent = 2

// Serialize renders v as JSON text. indent > 0 pretty-prints with that many
// spaces per level; otherwise the output is compact. Object key order is
// kept and non-ASCII characters are written literally.
func Serialize(v Value, indent int) string {
	var b strings.Builder
	w := writer{b: &b}
	if indent > 0 {
		w.indent = strings.Repeat(" ", indent)
	}
	w.value(v, 0)
	return b.String()
}

type writer struct {
	b      *strings.Builder
	indent string
}

func (w writer) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.b.WriteString(w.indent)
	}
}

func (w writer) value(v Value, depth int) {
	switch v.kind {
	case KindNull:
		w.b.WriteString("null")
	case KindBool:
		if v.b {
			w.b.WriteString("true")
		} else {
			w.b.WriteString("false")
		}
	case KindNumber:
		w.b.WriteString(v.s)
	case KindString:
		w.b.WriteString(quote(v.s))
	case KindObject:
		if v.obj.Len() == 0 {
			w.b.WriteString("{}")
			return
		}
		w.b.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				w.b.WriteByte(',')
			}
			w.newline(depth + 1)
			w.b.WriteString(quote(k))
			w.b.WriteByte(':')
			if w.indent != "" {
				w.b.WriteByte(' ')
			}
			w.value(v.obj.vals[i], depth+1)
		}
		w.newline(depth)
		w.b.WriteByte('}')
	case KindArray:
		if v.arr.Len() == 0 {
			w.b.WriteString("[]")
			return
		}
		w.b.WriteByte('[')
		for i, it := range v.arr.items {
			if i > 0 {
				w.b.WriteByte(',')
			}
			w.newline(depth + 1)
			w.value(it, depth+1)
		}
		w.newline(depth)
		w.b.WriteByte(']')
	}
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s) // strings always encode
	return strings.TrimSuffix(buf.String(), "\n")
}
