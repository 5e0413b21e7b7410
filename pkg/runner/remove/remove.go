// Package remove implements "jed delete".
package remove

import (
	"context"
	"errors"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/path"
)

// Delete removes the value at Path and saves the file.
type Delete struct {
	Service *app.Service
	Path    string
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no document")
	}
	node, err := n.Service.Node(path.Decode(n.Path))
	if err != nil {
		return err
	}
	if err := n.Service.Delete(node); err != nil {
		return err
	}
	if !n.Service.Dirty() {
		logging.FromContext(ctx).Warn("nothing deleted", "path", n.Path)
		return nil
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("deleted", "path", n.Path, "file", n.Service.Document().Path())
	return nil
}
