package app

import (
	"strings"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/tree"
)

// AddInput is what the add prompt collects.
type AddInput struct {
	Key string
	// Type is one of jsonvalue.Types; empty infers the type from Value.
	Type  string
	Value string
}

// Add inserts a new child under sel. For arrays the key is the position to
// insert at; anything that is not a valid position appends.
func (s *Service) Add(sel *tree.Node, in AddInput) error {
	if err := s.requireSelection(sel); err != nil {
		return err
	}
	if in.Key == "" {
		err := errs.New(errs.ErrCodeInvalidInput, "key must not be empty")
		s.views.RefreshStatus(s.tr.T(i18n.EmptyKey), SeverityWarning)
		return err
	}
	v, err := jsonvalue.FromTyped(in.Type, in.Value)
	if err != nil {
		s.fail(err)
		return err
	}
	p := sel.Path()
	if err := path.InsertAt(s.doc.Value(), p, in.Key, v); err != nil {
		s.fail(err)
		return err
	}
	s.logger.Debug("added", "parent", p.String(), "key", in.Key, "type", v.Kind())
	s.mutated()
	s.status(SeveritySuccess, i18n.Added, in.Key)
	return nil
}

// Current returns the text of the scalar at sel for the edit prompt. ok is
// false for containers and stale selections.
func (s *Service) Current(sel *tree.Node) (text string, ok bool) {
	if sel == nil || s.doc == nil {
		return "", false
	}
	v, found := path.Resolve(s.doc.Value(), sel.Path())
	if !found || v.IsContainer() {
		return "", false
	}
	return v.Text(), true
}

// Edit replaces the scalar at sel with text converted to the scalar's type.
// Containers are refused with an informational TypeMismatch. A selection
// that no longer resolves is a silent no-op.
func (s *Service) Edit(sel *tree.Node, text string) error {
	if err := s.requireSelection(sel); err != nil {
		return err
	}
	p := sel.Path()
	current, ok := path.Resolve(s.doc.Value(), p)
	if !ok {
		s.logger.Debug("edit target vanished", "path", p.String())
		return nil
	}
	if current.IsContainer() {
		s.views.RefreshStatus(s.tr.T(i18n.ContainerEdit), SeverityInfo)
		return errs.New(errs.ErrCodeTypeMismatch, "%s is a %s", p.String(), current.Kind())
	}
	var v jsonvalue.Value
	if current.Kind() == jsonvalue.KindNull {
		// Only the raw editor builds containers; "{}" typed here stays text.
		if v = jsonvalue.ParseScalarInput(text); v.IsContainer() {
			v = jsonvalue.String(text)
		}
	} else {
		v = jsonvalue.ConvertEdit(current, text)
	}
	if err := path.Write(s.doc.Value(), p, v); err != nil {
		s.logger.Debug("edit skipped", "path", p.String(), "err", err)
		return nil
	}
	s.logger.Debug("edited", "path", p.String(), "type", v.Kind())
	s.mutated()
	s.status(SeveritySuccess, i18n.Updated, p.String())
	return nil
}

// Delete removes sel from its parent. The root cannot be deleted; a
// selection that no longer resolves removes nothing.
func (s *Service) Delete(sel *tree.Node) error {
	if err := s.requireSelection(sel); err != nil {
		return err
	}
	p := sel.Path()
	parentPath, last, ok := p.Split()
	if !ok {
		s.views.RefreshStatus(s.tr.T(i18n.RootNotDeletable), SeverityWarning)
		return errs.New(errs.ErrCodeInvalidInput, "the root cannot be deleted")
	}
	removed := false
	if parent, found := path.Resolve(s.doc.Value(), parentPath); found {
		removed = path.Delete(parent, last.String())
	}
	if !removed {
		s.refresh()
		s.status(SeverityInfo, i18n.NothingDeleted)
		return nil
	}
	s.logger.Debug("deleted", "path", p.String())
	s.mutated()
	s.status(SeveritySuccess, i18n.Deleted, p.String())
	return nil
}

// Search flags nodes matching term and returns how many matched.
func (s *Service) Search(term string) int {
	if s.root == nil {
		return 0
	}
	n := tree.Search(s.root, term)
	s.views.RefreshTree(s.root)
	switch {
	case term == "":
		s.status(SeverityInfo, i18n.Ready)
	case n == 0:
		s.status(SeverityInfo, i18n.NoMatches, term)
	default:
		s.status(SeveritySuccess, i18n.Matches, n, term)
	}
	return n
}

// InsertTemplate adds a copy of the named template at the root under key.
func (s *Service) InsertTemplate(name, key string) error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		err := errs.New(errs.ErrCodeInvalidInput, "key must not be empty")
		s.views.RefreshStatus(s.tr.T(i18n.EmptyKey), SeverityWarning)
		return err
	}
	tpl, err := s.templates.Get(name)
	if err != nil {
		s.views.RefreshStatus(s.tr.T(i18n.UnknownTemplate, name), SeverityWarning)
		return err
	}
	if err := path.Insert(s.doc.Value(), key, tpl.Value); err != nil {
		s.fail(err)
		return err
	}
	s.logger.Debug("inserted template", "template", tpl.Name, "key", key)
	s.mutated()
	s.status(SeveritySuccess, i18n.InsertedTemplate, tpl.Name, key)
	return nil
}

// SaveTemplate stores a copy of the value at sel as a user template.
func (s *Service) SaveTemplate(sel *tree.Node, name string) error {
	if err := s.requireSelection(sel); err != nil {
		return err
	}
	v, ok := path.Resolve(s.doc.Value(), sel.Path())
	if !ok {
		err := errs.New(errs.ErrCodePathNotFound, "no value at %q", sel.Path().String())
		s.fail(err)
		return err
	}
	if err := s.templates.Save(name, v.Clone()); err != nil {
		s.fail(err)
		return err
	}
	s.status(SeveritySuccess, i18n.TemplateSaved, name)
	return nil
}

// mutated rebuilds the projections after a change and marks it unsaved.
func (s *Service) mutated() {
	s.refresh()
	s.doc.MarkDirty()
}

func (s *Service) requireSelection(sel *tree.Node) error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if sel == nil {
		err := errs.New(errs.ErrCodeNothingSelected, "nothing selected")
		s.fail(err)
		return err
	}
	return nil
}
