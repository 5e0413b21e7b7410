package app

import (
	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/tree"
)

// RefreshTree shows a new or updated tree. The selection follows the same
// document path; if that value is gone the nearest surviving ancestor is
// selected instead.
func (m *Model) RefreshTree(root *tree.Node) {
	var want path.Path
	if sel := m.selected(); sel != nil {
		want = sel.Path()
	}
	rebuilt := root != m.root
	m.root = root

	target := tree.Find(root, want)
	for target == nil && len(want) > 0 {
		want, _, _ = want.Split()
		target = tree.Find(root, want)
	}
	if rebuilt && target != nil {
		tree.ExpandAncestors(target)
	}

	m.rows = tree.Visible(root)
	m.cursor = 0
	if target != nil {
		m.cursor = m.rowIndex(target)
	}
	m.scrollToCursor()
}

// RefreshRaw replaces the editor text without echoing it back to the
// service as a keystroke.
func (m *Model) RefreshRaw(text string) {
	if m.raw.Value() == text {
		return
	}
	m.raw.SetValue(text)
}

// RefreshStatus shows msg on the status line.
func (m *Model) RefreshStatus(msg string, sev appsvc.Severity) {
	m.status = msg
	m.severity = sev
}

func (m *Model) selected() *tree.Node {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].Node
}

// selectNode opens the ancestors of n and moves the cursor onto it.
func (m *Model) selectNode(n *tree.Node) {
	if n == nil {
		return
	}
	tree.ExpandAncestors(n)
	m.rows = tree.Visible(m.root)
	m.cursor = m.rowIndex(n)
	m.scrollToCursor()
}

func (m *Model) rowIndex(n *tree.Node) int {
	for i, r := range m.rows {
		if r.Node == n {
			return i
		}
	}
	return 0
}

// childOf finds the child of parent's replacement in the current tree that
// is labeled key. Array inserts may land anywhere, so for arrays the label is
// only a hint and the last child is the fallback.
func (m *Model) childOf(parent *tree.Node, key string) *tree.Node {
	if parent == nil || m.root == nil {
		return nil
	}
	p := tree.Find(m.root, parent.Path())
	if p == nil || len(p.Children) == 0 {
		return nil
	}
	label := key
	if p.Type == tree.TypeArray {
		label = "[" + key + "]"
	}
	for _, c := range p.Children {
		if c.Label == label {
			return c
		}
	}
	if p.Type == tree.TypeArray {
		return p.Children[len(p.Children)-1]
	}
	return nil
}
