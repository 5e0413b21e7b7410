// Package key provides CLI helpers to display the tree glyph legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jed/pkg/glyph"
)

// Key prints a glyph legend describing node icons and expand markers.
type Key struct{}

// Do renders the node and marker keys to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, glyph.DefaultGlyphs(), false)
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, glyph.DefaultGlyphs(), true)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// Key renders a glyph table; when marker is true, expand markers are shown.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph, marker bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if marker {
		tbl.AddRow(bold.Sprint("Markers"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("  Nodes"), bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if marker == v.Marker {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
