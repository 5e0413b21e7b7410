package errors

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseError describes a JSON syntax failure at a 1-based line and column.
type ParseError struct {
	Message    string
	Line       int
	Column     int
	SourceLine string
	Offset     int64
}

// NewParseError translates a byte offset into src into a ParseError. The
// offset names the offending byte; values outside src are clamped.
func NewParseError(msg string, src []byte, offset int64) *ParseError {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(src)) {
		offset = int64(len(src))
	}
	line, col := 1, 1
	lineStart := 0
	for i := 0; i < int(offset); {
		r, size := utf8.DecodeRune(src[i:])
		if r == '\n' {
			line++
			col = 1
			lineStart = i + size
		} else {
			col++
		}
		i += size
	}
	end := lineStart
	for end < len(src) && src[end] != '\n' {
		end++
	}
	return &ParseError{
		Message:    msg,
		Line:       line,
		Column:     col,
		SourceLine: strings.TrimRight(string(src[lineStart:end]), "\r"),
		Offset:     offset,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", ErrCodeParse, e.Message, e.Line, e.Column)
}

// Caret returns the offending source line followed by a caret under the column.
func (e *ParseError) Caret() string {
	pad := e.Column - 1
	if pad < 0 {
		pad = 0
	}
	return e.SourceLine + "\n" + strings.Repeat(" ", pad) + "^"
}

// Detail is the multi-line message shown to users.
func (e *ParseError) Detail() string {
	return fmt.Sprintf("%s\nline %d, column %d\n%s", e.Message, e.Line, e.Column, e.Caret())
}
