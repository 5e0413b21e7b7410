package set

import (
	"context"
	"errors"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/printers"
)

// Set replaces the scalar at Path and saves the file.
type Set struct {
	Service *app.Service
	Path    string
	Value   string
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no document")
	}
	node, err := n.Service.Node(path.Decode(n.Path))
	if err != nil {
		return err
	}
	if err := n.Service.Edit(node, n.Value); err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("set", "path", n.Path, "file", n.Service.Document().Path())

	changed, err := n.Service.Node(path.Decode(n.Path))
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowPath: true}
	pp.Tree(changed)
	return nil
}
