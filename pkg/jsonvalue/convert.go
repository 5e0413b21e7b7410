package jsonvalue

import (
	"math"
	"strconv"
	"strings"

	errs "tableflip.dev/jed/pkg/errors"
)

// Type names accepted by FromTyped, as offered by the add prompt.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Types lists the names FromTyped accepts.
var Types = []string{TypeString, TypeNumber, TypeBoolean, TypeObject, TypeArray}

// ParseNumber converts user text to a number. Text containing a dot becomes
// a float, anything else must be an integer.
func ParseNumber(text string) (Value, error) {
	text = strings.TrimSpace(text)
	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, errs.New(errs.ErrCodeInvalidInput, "%q is not a number", text)
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Value{}, errs.New(errs.ErrCodeInvalidInput, "%q is not a number", text)
	}
	return Int(i), nil
}

// ParseBool reads the loose boolean spellings accepted in edit prompts.
func ParseBool(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1", "yes", "ja":
		return true
	}
	return false
}

// ParseScalarInput infers a value from free text: "{}" and "[]" make empty
// containers, JSON keywords and numbers keep their type, anything else is a
// string.
func ParseScalarInput(text string) Value {
	trimmed := strings.TrimSpace(text)
	switch trimmed {
	case "{}":
		return NewObject()
	case "[]":
		return NewArray()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	case "null":
		return Null()
	}
	if trimmed != "" {
		if v, err := ParseString(trimmed); err == nil && v.Kind() == KindNumber {
			return v
		}
	}
	return String(text)
}

// FromTyped builds a value of the named type from text. An empty type falls
// back to ParseScalarInput.
func FromTyped(typ, text string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "":
		return ParseScalarInput(text), nil
	case TypeString:
		return String(text), nil
	case TypeNumber:
		return ParseNumber(text)
	case TypeBoolean:
		return Bool(ParseBool(text)), nil
	case TypeObject:
		return NewObject(), nil
	case TypeArray:
		return NewArray(), nil
	}
	return Value{}, errs.New(errs.ErrCodeInvalidInput, "unknown type %q (want one of %s)", typ, strings.Join(Types, "/"))
}

// ConvertEdit turns edit text into a value shaped like current. Booleans use
// the loose spellings, numbers switch to float when the text has a dot, and
// text that does not convert stays a string.
func ConvertEdit(current Value, text string) Value {
	switch current.Kind() {
	case KindBool:
		return Bool(ParseBool(text))
	case KindNumber:
		if v, err := ParseNumber(text); err == nil {
			return v
		}
		return String(text)
	case KindNull, KindString, KindObject, KindArray:
		return String(text)
	}
	return String(text)
}
