// Package tree projects a JSON document into a labeled hierarchy for display.
//
// The tree is rebuilt from the document after every change. Nodes carry only
// what a renderer needs: a label, a one-line summary, and the expand and
// search-hit flags. The path of a node is derived from its ancestry labels.
package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/jed/pkg/glyph"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/path"
)

// SummaryWidth is the widest scalar summary, in terminal cells, before it is
// cut and suffixed with SummaryTail.
const SummaryWidth = 50

// SummaryTail marks a truncated summary.
const SummaryTail = "..."

// Type classifies a node for styling.
type Type int

const (
	TypeObject Type = iota
	TypeArray
	TypeString
	TypeNumber
	TypeBoolean
	TypeOther
)

func (t Type) String() string {
	switch t {
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeOther:
		return "other"
	}
	return "unknown"
}

// TypeOf maps a value kind to a node type. Null is TypeOther.
func TypeOf(k jsonvalue.Kind) Type {
	switch k {
	case jsonvalue.KindObject:
		return TypeObject
	case jsonvalue.KindArray:
		return TypeArray
	case jsonvalue.KindString:
		return TypeString
	case jsonvalue.KindNumber:
		return TypeNumber
	case jsonvalue.KindBool:
		return TypeBoolean
	case jsonvalue.KindNull:
		return TypeOther
	}
	return TypeOther
}

// Labels are the localized container summaries.
type Labels struct {
	RootObject string
	Object     string
	Array      func(n int) string
}

// DefaultLabels returns the English summaries.
func DefaultLabels() Labels {
	return Labels{
		RootObject: "Root Object",
		Object:     "Object",
		Array: func(n int) string {
			return fmt.Sprintf("Array [%d items]", n)
		},
	}
}

// Node is one row of the tree.
type Node struct {
	Label    string
	Type     Type
	Summary  string
	Children []*Node
	Expanded bool
	Match    bool
	Parent   *Node
}

// Build projects v under a root node labeled rootLabel. Only the root
// starts expanded.
func Build(v jsonvalue.Value, rootLabel string, labels Labels) *Node {
	if labels.Array == nil {
		labels = DefaultLabels()
	}
	root := &Node{
		Label:    rootLabel,
		Type:     TypeOf(v.Kind()),
		Summary:  labels.RootObject,
		Expanded: true,
	}
	addChildren(root, v, labels)
	return root
}

func addChildren(parent *Node, v jsonvalue.Value, labels Labels) {
	switch v.Kind() {
	case jsonvalue.KindObject:
		for _, m := range v.Object().Members() {
			parent.Children = append(parent.Children, newNode(parent, m.Key, m.Value, labels))
		}
	case jsonvalue.KindArray:
		for i, it := range v.Array().Items() {
			label := "[" + strconv.Itoa(i) + "]"
			parent.Children = append(parent.Children, newNode(parent, label, it, labels))
		}
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
	}
}

func newNode(parent *Node, label string, v jsonvalue.Value, labels Labels) *Node {
	n := &Node{
		Label:  label,
		Type:   TypeOf(v.Kind()),
		Parent: parent,
	}
	switch v.Kind() {
	case jsonvalue.KindObject:
		n.Summary = labels.Object
	case jsonvalue.KindArray:
		n.Summary = labels.Array(v.Array().Len())
	case jsonvalue.KindNull, jsonvalue.KindBool, jsonvalue.KindNumber, jsonvalue.KindString:
		n.Summary = Summarize(v.Text())
	}
	addChildren(n, v, labels)
	return n
}

// Summarize flattens text to one line and truncates it to SummaryWidth.
func Summarize(text string) string {
	text = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(text)
	if ansi.PrintableRuneWidth(text) <= SummaryWidth {
		return text
	}
	return truncate.StringWithTail(text, SummaryWidth+uint(len(SummaryTail)), SummaryTail)
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// IsContainer reports whether n stands for an object or array.
func (n *Node) IsContainer() bool {
	return n.Type == TypeObject || n.Type == TypeArray
}

// Labels returns the ancestry labels from the root down to n.
func (n *Node) Labels() []string {
	var out []string
	for cur := n; cur != nil; cur = cur.Parent {
		out = append(out, cur.Label)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Path returns the document path n stands for.
func (n *Node) Path() path.Path {
	return path.FromLabels(n.Labels())
}

// Depth is the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		d++
	}
	return d
}

// Glyph returns the icon shown before the summary.
func (n *Node) Glyph() glyph.Glyph {
	switch {
	case n.IsRoot():
		return glyph.Root.Glyph()
	case n.Type == TypeObject:
		return glyph.Object.Glyph()
	case n.Type == TypeArray:
		return glyph.Array.Glyph()
	default:
		return glyph.Value.Glyph()
	}
}

// Marker returns the expand-state glyph.
func (n *Node) Marker() glyph.Glyph {
	switch {
	case len(n.Children) == 0:
		return glyph.Leaf.Glyph()
	case n.Expanded:
		return glyph.Expanded.Glyph()
	default:
		return glyph.Collapsed.Glyph()
	}
}

// Toggle flips the expand state of a node with children.
func (n *Node) Toggle() {
	if len(n.Children) > 0 {
		n.Expanded = !n.Expanded
	}
}
