// Package templates provides the JSON snippets that can be inserted at the
// document root: a fixed set of built-ins plus templates the user saved.
package templates

import (
	"context"
	"errors"
	"strings"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/store"
)

// Template is a named value to insert.
type Template struct {
	Name        string
	Description string
	BuiltIn     bool
	Value       jsonvalue.Value
}

// Library resolves templates by name. User templates never shadow built-ins.
type Library struct {
	user store.Templates
}

// NewLibrary returns a library over the built-ins and, when user is not nil,
// the user's saved templates.
func NewLibrary(user store.Templates) *Library {
	return &Library{user: user}
}

// List returns the built-ins in their fixed order, then user templates by
// name. Unreadable user templates are skipped.
func (l *Library) List(ctx context.Context) []Template {
	out := Builtins()
	if l == nil || l.user == nil {
		return out
	}
	for _, name := range l.user.Names(ctx) {
		t, err := l.readUser(name)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Names lists every template name in List order.
func (l *Library) Names(ctx context.Context) []string {
	list := l.List(ctx)
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.Name
	}
	return out
}

// Get looks up a built-in or user template. The returned value is never
// shared with another Get, so the caller may insert it into a document.
func (l *Library) Get(name string) (Template, error) {
	name = strings.TrimSpace(name)
	if t, ok := builtin(name); ok {
		return t, nil
	}
	if l != nil && l.user != nil && l.user.Has(name) {
		return l.readUser(name)
	}
	return Template{}, errs.New(errs.ErrCodeInvalidInput, "unknown template %q", name)
}

// Save stores v as a user template.
func (l *Library) Save(name string, v jsonvalue.Value) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.New(errs.ErrCodeInvalidInput, "template name required")
	}
	if _, ok := builtin(name); ok {
		return errs.New(errs.ErrCodeInvalidInput, "%q is a built-in template", name)
	}
	if l == nil || l.user == nil {
		return errs.New(errs.ErrCodeIO, "no template store configured")
	}
	if err := l.user.Write(name, []byte(jsonvalue.Serialize(v, jsonvalue.DefaultIndent))); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "save template %q", name)
	}
	return nil
}

// Delete removes a user template.
func (l *Library) Delete(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := builtin(name); ok {
		return errs.New(errs.ErrCodeInvalidInput, "%q is a built-in template", name)
	}
	if l == nil || l.user == nil {
		return errs.New(errs.ErrCodeInvalidInput, "unknown template %q", name)
	}
	if err := l.user.Erase(name); err != nil {
		if errors.Is(err, store.ErrNoTemplate) {
			return errs.New(errs.ErrCodeInvalidInput, "unknown template %q", name)
		}
		return errs.Wrap(errs.ErrCodeIO, err, "delete template %q", name)
	}
	return nil
}

func (l *Library) readUser(name string) (Template, error) {
	data, err := l.user.Read(name)
	if err != nil {
		if errors.Is(err, store.ErrNoTemplate) {
			return Template{}, errs.New(errs.ErrCodeInvalidInput, "unknown template %q", name)
		}
		return Template{}, errs.Wrap(errs.ErrCodeIO, err, "read template %q", name)
	}
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return Template{}, err
	}
	return Template{Name: name, Value: v}, nil
}
