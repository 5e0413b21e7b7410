package app

import (
	"errors"

	"tableflip.dev/jed/pkg/document"
	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/i18n"
)

// SetRaw records text typed into the raw editor. The tree is not touched
// until the text is saved.
func (s *Service) SetRaw(text string) {
	if s.doc == nil || text == s.raw {
		return
	}
	s.raw = text
	s.doc.MarkDirty()
	s.status(SeverityInfo, i18n.Modified)
}

// Save writes the raw text to the file. Invalid text is reported with its
// position and nothing is written.
func (s *Service) Save() error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if err := s.doc.Save(s.raw); err != nil {
		s.fail(err)
		return err
	}
	s.logger.Info("saved", "path", s.doc.Path())
	s.refresh()
	s.status(SeveritySuccess, i18n.SaveSuccess)
	return nil
}

// Validate checks the raw text for syntax errors.
func (s *Service) Validate() error {
	if err := document.Validate(s.raw); err != nil {
		s.fail(err)
		return err
	}
	s.status(SeveritySuccess, i18n.Valid)
	return nil
}

// Format re-indents the raw text. It counts as an unsaved change.
func (s *Service) Format() error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	out, err := document.Format(s.raw, s.indent)
	if err != nil {
		var pe *errs.ParseError
		if errors.As(err, &pe) {
			s.views.RefreshStatus(s.parseDetail(i18n.CannotFormat, pe), SeverityError)
		} else {
			s.fail(err)
		}
		return err
	}
	s.raw = out
	s.views.RefreshRaw(out)
	s.doc.MarkDirty()
	s.status(SeveritySuccess, i18n.Formatted)
	return nil
}
