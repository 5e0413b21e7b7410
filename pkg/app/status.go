package app

import (
	"errors"
	"io/fs"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/i18n"
)

func (s *Service) status(sev Severity, key string, args ...any) {
	s.views.RefreshStatus(s.tr.T(key, args...), sev)
}

// fail reports err on the status line in the current language.
func (s *Service) fail(err error) {
	msg, sev := s.describe(err)
	s.logger.Debug("command failed", "code", errs.GetCode(err), "err", err)
	s.views.RefreshStatus(msg, sev)
}

func (s *Service) describe(err error) (string, Severity) {
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		return s.parseDetail(i18n.JSONError, pe), SeverityError
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeFileNotFound:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return s.tr.T(i18n.FileNotFound, pathErr.Path), SeverityError
		}
		return s.tr.T(i18n.ErrorMsg, errs.UserMessage(err)), SeverityError
	case errs.ErrCodeNothingSelected:
		return s.tr.T(i18n.SelectFirst), SeverityWarning
	case errs.ErrCodeInvalidInput, errs.ErrCodePathNotFound, errs.ErrCodeTypeMismatch:
		return s.tr.T(i18n.ErrorMsg, errs.UserMessage(err)), SeverityWarning
	}
	return s.tr.T(i18n.ErrorMsg, errs.UserMessage(err)), SeverityError
}

// parseDetail renders a parse error as three lines: the message, the
// position, and the offending source line with a caret under the column.
func (s *Service) parseDetail(key string, pe *errs.ParseError) string {
	return s.tr.T(key, pe.Message) + "\n" +
		s.tr.T(i18n.Position, pe.Line, pe.Column) + "\n" +
		pe.Caret()
}
