package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/printers"
	"tableflip.dev/jed/pkg/tree"
)

// Search lists the nodes whose label or summary contains Term, ignoring case.
type Search struct {
	Service *app.Service
	Term    string
	JSON    bool
	// Tree prints the whole document with matches highlighted instead of a
	// table of hits.
	Tree bool
}

type match struct {
	Path    string `json:"path"`
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Document() == nil {
		return errors.New("can not search, no document")
	}
	count := n.Service.Search(n.Term)
	hits := tree.Matches(n.Service.Tree())

	if n.JSON {
		out := make([]match, 0, len(hits))
		for _, h := range hits {
			out = append(out, match{Path: h.Path().String(), Label: h.Label, Summary: h.Summary})
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount(n.Term, count)
	if n.Tree {
		pp.Tree(n.Service.Tree())
		return nil
	}
	pp.Matches(hits)
	return nil
}
