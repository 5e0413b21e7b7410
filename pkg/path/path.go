// Package path addresses values inside a JSON document.
//
// A Path is a walk from the root: object keys and array indexes. Its string
// form joins segments with "/" and renders indexes as "[i]", which is also how
// the tree labels array elements. Decoding treats any segment shaped like
// "[<digits>]" as an index, even when the real container is an object that
// happens to have such a key. That ambiguity is a known limitation of the
// label-derived encoding.
package path

import (
	"regexp"
	"strconv"
	"strings"
)

// Separator joins segments in the string form of a Path.
const Separator = "/"

var indexPattern = regexp.MustCompile(`^\[(\d+)\]$`)

// Segment is one step of a Path: an object key or an array index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key returns an object-key segment.
func Key(k string) Segment { return Segment{key: k} }

// Index returns an array-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether s addresses an array element.
func (s Segment) IsIndex() bool { return s.isIndex }

// Key returns the object key; empty for index segments.
func (s Segment) Key() string { return s.key }

// Index returns the array index; -1 for key segments.
func (s Segment) Index() int {
	if !s.isIndex {
		return -1
	}
	return s.index
}

// String renders the segment as it appears in tree labels.
func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.key
}

// ParseSegment decodes one label. "[<digits>]" is always an index.
func ParseSegment(label string) Segment {
	if m := indexPattern.FindStringSubmatch(label); m != nil {
		if i, err := strconv.Atoi(m[1]); err == nil {
			return Index(i)
		}
	}
	return Key(label)
}

// Path is an ordered walk from the document root.
type Path []Segment

// Root is the empty path.
var Root = Path{}

// Child returns a new path extended by seg.
func (p Path) Child(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// IsRoot reports whether p addresses the document root.
func (p Path) IsRoot() bool { return len(p) == 0 }

// Split separates the parent path from the final segment. ok is false for
// the root.
func (p Path) Split() (parent Path, last Segment, ok bool) {
	if len(p) == 0 {
		return nil, Segment{}, false
	}
	return p[:len(p)-1], p[len(p)-1], true
}

// String encodes p with "/" separators.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, Separator)
}

// Equal reports whether two paths have the same segments.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Decode parses the string form. The empty string is the root.
func Decode(s string) Path {
	if s == "" {
		return Root
	}
	return decodeLabels(strings.Split(s, Separator))
}

// FromLabels decodes a tree ancestry chain. The first label names the root
// (the file name) and is not part of the path.
func FromLabels(labels []string) Path {
	if len(labels) == 0 {
		return Root
	}
	return decodeLabels(labels[1:])
}

func decodeLabels(labels []string) Path {
	p := make(Path, 0, len(labels))
	for _, l := range labels {
		p = append(p, ParseSegment(l))
	}
	return p
}
