package add

import (
	"context"
	"errors"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/printers"
)

// Add inserts a child under Parent and saves the file. For array parents Key
// is the position to insert at; anything else appends.
type Add struct {
	Service *app.Service
	Parent  string
	Key     string
	// Type is one of jsonvalue.Types, or empty to infer it from Value.
	Type  string
	Value string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no document")
	}
	parentPath := path.Decode(n.Parent)
	parent, err := n.Service.Node(parentPath)
	if err != nil {
		return err
	}
	in := app.AddInput{Key: n.Key, Type: n.Type, Value: n.Value}
	if err := n.Service.Add(parent, in); err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("added", "parent", parentPath.String(), "key", n.Key, "file", n.Service.Document().Path())

	// The tree was rebuilt, so look the parent up again.
	parent, err = n.Service.Node(parentPath)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Tree(parent)
	return nil
}
