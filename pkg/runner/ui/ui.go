package ui

import (
	"context"
	"errors"

	"tableflip.dev/jed/pkg/app"
	tuiapp "tableflip.dev/jed/pkg/tui/app"
)

// UI opens the interactive editor on the service's document.
type UI struct {
	Service *app.Service
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil || d.Service.Document() == nil {
		return errors.New("can not start ui, no document")
	}
	return tuiapp.Run(ctx, d.Service)
}
