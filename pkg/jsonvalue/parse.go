package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	errs "tableflip.dev/jed/pkg/errors"
)

// Parse decodes exactly one JSON value from text. Syntax failures come back
// as *errors.ParseError with a 1-based line and column.
func Parse(text []byte) (Value, error) {
	if offset := invalidUTF8(text); offset >= 0 {
		return Value{}, errs.NewParseError("invalid UTF-8 byte", text, int64(offset))
	}
	// Unmarshal validates the whole input before decoding anything, which
	// gives a positioned SyntaxError for malformed or trailing content.
	var raw json.RawMessage
	if err := json.Unmarshal(text, &raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			// Offset counts the offending byte itself; truncated input points
			// just past the end.
			offset := syntaxErr.Offset - 1
			if strings.Contains(syntaxErr.Error(), "unexpected end") {
				offset = int64(len(text))
			}
			return Value{}, errs.NewParseError(syntaxErr.Error(), text, offset)
		}
		return Value{}, errs.NewParseError(err.Error(), text, int64(len(text)))
	}

	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, errs.NewParseError(err.Error(), text, dec.InputOffset())
	}
	return v, nil
}

// invalidUTF8 returns the offset of the first byte that is not valid UTF-8,
// or -1.
func invalidUTF8(text []byte) int {
	if utf8.Valid(text) {
		return -1
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// ParseString is Parse for string input.
func ParseString(text string) (Value, error) {
	return Parse([]byte(text))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, io.ErrUnexpectedEOF
		}
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	out := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %T, want string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		out.obj.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return Value{}, err
	}
	return out, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	out := NewArray()
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		out.arr.Append(v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return Value{}, err
	}
	return out, nil
}

// MarshalJSON implements json.Marshaler with compact output.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(Serialize(v, 0)), nil
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
