// Package template implements the "jed template" subcommands.
package template

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/templates"
)

var errNoLibrary = errors.New("can not use templates, no library")

// List prints every template, built-ins first.
type List struct {
	Library *templates.Library
}

func (n *List) Do(ctx context.Context) error {
	if n.Library == nil {
		return errNoLibrary
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Source"), bold.Sprint("Description"))
	for _, t := range n.Library.List(ctx) {
		source := "user"
		if t.BuiltIn {
			source = "built-in"
		}
		tbl.AddRow(t.Name, faint.Sprint(source), t.Description)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Show prints a template's JSON.
type Show struct {
	Library *templates.Library
	Name    string
	Indent  int
}

func (n *Show) Do(ctx context.Context) error {
	if n.Library == nil {
		return errNoLibrary
	}
	t, err := n.Library.Get(n.Name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, jsonvalue.Serialize(t.Value, n.Indent))
	return nil
}

// Save stores the value at Path of the open document as a user template.
type Save struct {
	Service *app.Service
	Path    string
	Name    string
}

func (n *Save) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not save template, no document")
	}
	node, err := n.Service.Node(path.Decode(n.Path))
	if err != nil {
		return err
	}
	if err := n.Service.SaveTemplate(node, n.Name); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("saved template", "name", n.Name, "from", n.Path)
	return nil
}

// Delete removes a user template.
type Delete struct {
	Library *templates.Library
	Name    string
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Library == nil {
		return errNoLibrary
	}
	if err := n.Library.Delete(n.Name); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("deleted template", "name", n.Name)
	return nil
}

// Insert adds a copy of a template at the document root under Key and saves
// the file.
type Insert struct {
	Service *app.Service
	Name    string
	Key     string
}

func (n *Insert) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not insert template, no document")
	}
	if err := n.Service.InsertTemplate(n.Name, n.Key); err != nil {
		return err
	}
	if err := n.Service.Save(); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("inserted template", "name", n.Name, "key", n.Key, "file", n.Service.Document().Path())
	return nil
}
