package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jed/pkg/tree"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// ShowPath prefixes every tree row with its document path.
	ShowPath bool
}

const indent = "  "

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " match")
	default:
		_, _ = c.Fprintln(pp.out(), " matches")
	}
}

// Tree prints root and every node below it regardless of expand state,
// indented relative to root. Nodes flagged by a search are highlighted.
func (pp *PrettyPrint) Tree(root *tree.Node) {
	if root == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	base := root.Depth()
	tree.Walk(root, func(n *tree.Node) bool {
		pp.node(n, n.Depth()-base)
		return true
	})
}

func (pp *PrettyPrint) node(n *tree.Node, depth int) {
	label := color.New()
	if n.IsContainer() {
		label = color.New(color.Bold)
	}
	if n.Match {
		label = color.New(color.FgHiYellow, color.Bold)
	}
	summary := color.New(color.Faint)
	p := color.New(color.FgHiYellow, color.Italic, color.Faint)

	w := pp.out()
	if pp.ShowPath && !n.IsRoot() {
		_, _ = p.Fprintf(w, "%s  ", n.Path())
	}
	_, _ = fmt.Fprintf(w, "%s%s ", strings.Repeat(indent, depth), n.Glyph().Symbol)
	_, _ = label.Fprint(w, n.Label)
	_, _ = summary.Fprintf(w, "  %s\n", n.Summary)
}

// Matches prints search hits as a table of path, label and summary.
func (pp *PrettyPrint) Matches(nodes []*tree.Node) {
	if len(nodes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = tree.SummaryWidth + uint(len(tree.SummaryTail))
	tbl.AddRow(bold.Sprint("Path"), bold.Sprint("Label"), bold.Sprint("Summary"))
	for _, n := range nodes {
		tbl.AddRow(n.Path().String(), n.Label, n.Summary)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Settings prints key/value pairs as an aligned table.
func (pp *PrettyPrint) Settings(rows [][2]string) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Value"))
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
