package validate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"tableflip.dev/jed/pkg/document"
	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/i18n"
)

// Validate checks that a file holds well-formed JSON. It reads the file
// itself so that broken files can be reported, not just refused.
type Validate struct {
	FS         afero.Fs
	File       string
	Translator *i18n.Translator
}

func (n *Validate) Do(ctx context.Context) error {
	if n.FS == nil {
		n.FS = afero.NewOsFs()
	}
	b, err := afero.ReadFile(n.FS, n.File)
	if errors.Is(err, fs.ErrNotExist) {
		return errs.Wrap(errs.ErrCodeFileNotFound, err, "file not found: %s", n.File)
	} else if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "can not read %s", n.File)
	}

	if err := document.Validate(string(b)); err != nil {
		var pe *errs.ParseError
		if errors.As(err, &pe) {
			red := color.New(color.FgRed, color.Bold)
			_, _ = red.Fprintln(color.Output, n.Translator.T(i18n.JSONError, pe.Message))
			_, _ = fmt.Fprintln(color.Output, n.Translator.T(i18n.Position, pe.Line, pe.Column))
			_, _ = fmt.Fprintln(color.Output, pe.Caret())
		}
		return err
	}

	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(color.Output, n.Translator.T(i18n.Valid))
	return nil
}
