package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/jed/pkg/app"
	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/printers"
)

// Get prints the whole document as a tree, or the value at Path.
type Get struct {
	Service *app.Service
	Path    string
	// JSON prints values as JSON text instead of a tree.
	JSON     bool
	ShowPath bool
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil || n.Service.Document() == nil {
		return errors.New("can not get, no document")
	}
	pp := printers.PrettyPrint{ShowPath: n.ShowPath}

	if n.Path == "" {
		if n.JSON {
			_, _ = fmt.Fprintln(color.Output, n.Service.Raw())
			return nil
		}
		pp.Tree(n.Service.Tree())
		return nil
	}

	p := path.Decode(n.Path)
	v, ok := path.Resolve(n.Service.Document().Value(), p)
	if !ok {
		return errs.New(errs.ErrCodePathNotFound, "no value at %q", n.Path)
	}
	switch {
	case n.JSON:
		_, _ = fmt.Fprintln(color.Output, jsonvalue.Serialize(v, n.Service.Indent()))
	case v.IsContainer():
		node, err := n.Service.Node(p)
		if err != nil {
			return err
		}
		pp.Tree(node)
	default:
		_, _ = fmt.Fprintln(color.Output, v.Text())
	}
	return nil
}
