// Package document holds the JSON document being edited: its value, the file
// it came from, and whether it has unsaved changes.
package document

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
)

const defaultPerm os.FileMode = 0o644

// Document is a loaded JSON file. The root value is always an object.
type Document struct {
	fs    afero.Fs
	path  string
	value jsonvalue.Value
	dirty bool
}

// Load reads and parses path from fs.
func Load(fs afero.Fs, path string) (*Document, error) {
	d := &Document{fs: fs, path: path}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string { return d.path }

// Value returns the root value. Mutating its containers mutates the
// document; callers are expected to MarkDirty afterwards.
func (d *Document) Value() jsonvalue.Value { return d.value }

// Dirty reports whether there are unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// MarkDirty records an unsaved change.
func (d *Document) MarkDirty() { d.dirty = true }

// MarkClean clears the unsaved-changes flag.
func (d *Document) MarkClean() { d.dirty = false }

// Reload replaces the in-memory value with the file contents and resets the
// dirty flag. On failure the document is unchanged.
func (d *Document) Reload() error {
	data, err := afero.ReadFile(d.fs, d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errs.Wrap(errs.ErrCodeFileNotFound, err, "file not found: %s", d.path)
		}
		return errs.Wrap(errs.ErrCodeIO, err, "read %s", d.path)
	}
	v, err := parseRoot(data)
	if err != nil {
		return err
	}
	d.value = v
	d.dirty = false
	return nil
}

// Save validates text, writes it to the file byte for byte, then reloads.
// Invalid text leaves both the file and the in-memory value untouched.
func (d *Document) Save(text string) error {
	if _, err := parseRoot([]byte(text)); err != nil {
		return err
	}
	perm := defaultPerm
	if fi, err := d.fs.Stat(d.path); err == nil {
		perm = fi.Mode().Perm()
	}
	if err := afero.WriteFile(d.fs, d.path, []byte(text), perm); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", d.path)
	}
	return d.Reload()
}

// Validate parses text and reports the first syntax error.
func Validate(text string) error {
	_, err := jsonvalue.ParseString(text)
	return err
}

// Format re-serializes text with the given indent.
func Format(text string, indent int) (string, error) {
	v, err := jsonvalue.ParseString(text)
	if err != nil {
		return "", err
	}
	return jsonvalue.Serialize(v, indent), nil
}

func parseRoot(data []byte) (jsonvalue.Value, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return jsonvalue.Value{}, err
	}
	if v.Kind() != jsonvalue.KindObject {
		return jsonvalue.Value{}, errs.New(errs.ErrCodeTypeMismatch, "document root must be an object, got %s", v.Kind())
	}
	return v, nil
}
