package tree

import (
	"strings"

	"tableflip.dev/jed/pkg/path"
)

// Row is a visible node and its indent depth.
type Row struct {
	Depth int
	Node  *Node
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Visible flattens the rows a renderer shows: the root, and the children of
// every expanded node.
func Visible(root *Node) []Row {
	var rows []Row
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		rows = append(rows, Row{Depth: depth, Node: n})
		if !n.Expanded {
			return
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	if root != nil {
		visit(root, 0)
	}
	return rows
}

// ClearMatches resets every search flag.
func ClearMatches(root *Node) {
	Walk(root, func(n *Node) bool {
		n.Match = false
		return true
	})
}

// ExpandAncestors opens every ancestor of n so it becomes visible.
func ExpandAncestors(n *Node) {
	for p := n.Parent; p != nil; p = p.Parent {
		p.Expanded = true
	}
}

// Search flags every node below root whose label or summary contains term,
// ignoring case, and opens the ancestors of each hit. Previous flags are
// cleared first; other expand state is left alone. It returns the number of
// hits.
func Search(root *Node, term string) int {
	ClearMatches(root)
	term = strings.ToLower(term)
	if term == "" || root == nil {
		return 0
	}
	count := 0
	for _, c := range root.Children {
		Walk(c, func(n *Node) bool {
			if strings.Contains(strings.ToLower(n.Label), term) ||
				strings.Contains(strings.ToLower(n.Summary), term) {
				n.Match = true
				ExpandAncestors(n)
				count++
			}
			return true
		})
	}
	return count
}

// Matches returns the flagged nodes in display order.
func Matches(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.Match {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Find returns the node standing for p, or nil.
func Find(root *Node, p path.Path) *Node {
	cur := root
	for _, seg := range p {
		if cur == nil {
			return nil
		}
		label := seg.String()
		var next *Node
		for _, c := range cur.Children {
			if c.Label == label {
				next = c
				break
			}
		}
		cur = next
	}
	return cur
}
