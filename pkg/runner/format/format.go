package format

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/logging"
)

// Format re-indents the document. With Write the result is saved, otherwise
// it is printed.
type Format struct {
	Service *app.Service
	Write   bool
}

func (n *Format) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not format, no document")
	}
	if err := n.Service.Format(); err != nil {
		return err
	}
	if !n.Write {
		_, _ = fmt.Fprintln(color.Output, n.Service.Raw())
		return nil
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("formatted", "file", n.Service.Document().Path(), "indent", n.Service.Indent())
	return nil
}
