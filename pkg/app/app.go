package app

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"tableflip.dev/jed/pkg/document"
	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/templates"
	"tableflip.dev/jed/pkg/tree"
)

// Severity ranks a status message.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Views receives the projections after every change. The TUI implements it;
// the CLI usually does not care.
type Views interface {
	RefreshTree(root *tree.Node)
	RefreshRaw(text string)
	RefreshStatus(msg string, sev Severity)
}

// Options configure a Service.
type Options struct {
	FS        afero.Fs
	Indent    int
	Language  string
	Theme     string
	Templates *templates.Library
	Logger    *log.Logger
	Views     Views
}

// Service is the command layer shared by the TUI and the CLI. It owns the
// open document and both of its projections: the tree and the raw text.
// Every command that changes the document rebuilds both projections and
// marks the document dirty once.
type Service struct {
	fs        afero.Fs
	indent    int
	tr        *i18n.Translator
	theme     string
	templates *templates.Library
	logger    *log.Logger
	views     Views

	doc  *document.Document
	root *tree.Node
	raw  string
}

// New returns a Service with no document open.
func New(opts Options) *Service {
	s := &Service{
		fs:        opts.FS,
		indent:    opts.Indent,
		tr:        i18n.New(opts.Language),
		theme:     opts.Theme,
		templates: opts.Templates,
		logger:    opts.Logger,
		views:     opts.Views,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.indent < 0 {
		s.indent = 0
	}
	if s.templates == nil {
		s.templates = templates.NewLibrary(nil)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.views == nil {
		s.views = nopViews{}
	}
	return s
}

// SetViews swaps the view sink, e.g. once the TUI model exists.
func (s *Service) SetViews(v Views) {
	if v == nil {
		v = nopViews{}
	}
	s.views = v
}

// Open loads path and shows it.
func (s *Service) Open(path string) error {
	doc, err := document.Load(s.fs, path)
	if err != nil {
		s.fail(err)
		return err
	}
	s.doc = doc
	s.logger.Debug("opened document", "path", path)
	s.refresh()
	s.status(SeverityInfo, i18n.Opened, filepath.Base(path))
	return nil
}

// Reload discards unsaved changes and re-reads the file. Asking the user
// first is the caller's job; see Dirty.
func (s *Service) Reload() error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if err := s.doc.Reload(); err != nil {
		s.fail(err)
		return err
	}
	s.refresh()
	s.status(SeverityInfo, i18n.Reloaded, filepath.Base(s.doc.Path()))
	return nil
}

// Document returns the open document, or nil.
func (s *Service) Document() *document.Document { return s.doc }

// Tree returns the current tree projection, or nil.
func (s *Service) Tree() *tree.Node { return s.root }

// Raw returns the raw text projection, including unsaved edits.
func (s *Service) Raw() string { return s.raw }

// Dirty reports whether the open document has unsaved changes.
func (s *Service) Dirty() bool { return s.doc != nil && s.doc.Dirty() }

// Indent is the indent width used for the raw text.
func (s *Service) Indent() int { return s.indent }

// Translator formats user-facing messages in the current language.
func (s *Service) Translator() *i18n.Translator { return s.tr }

// Theme is the name of the current theme.
func (s *Service) Theme() string { return s.theme }

// Templates is the template library used by InsertTemplate.
func (s *Service) Templates() *templates.Library { return s.templates }

// TemplateNames lists insertable template names.
func (s *Service) TemplateNames(ctx context.Context) []string {
	return s.templates.Names(ctx)
}

// Title is the window title: the file name, starred when dirty.
func (s *Service) Title() string {
	if s.doc == nil {
		return "jed"
	}
	title := "jed - " + filepath.Base(s.doc.Path())
	if s.doc.Dirty() {
		title += " *"
	}
	return title
}

// SetLanguage switches the message language and relabels the tree.
func (s *Service) SetLanguage(lang string) {
	s.tr = i18n.New(lang)
	if s.doc != nil {
		s.rebuildTree()
	}
	s.status(SeverityInfo, i18n.Language, s.tr.Lang())
}

// SetTheme records the theme name. Rendering is up to the views.
func (s *Service) SetTheme(name string) {
	s.theme = name
	s.status(SeverityInfo, i18n.Theme, name)
}

// Node returns the tree node standing for p, the way a selection in the
// TUI would. It fails with PathNotFound when p names nothing.
func (s *Service) Node(p path.Path) (*tree.Node, error) {
	if err := s.requireDocument(); err != nil {
		return nil, err
	}
	n := tree.Find(s.root, p)
	if n == nil {
		return nil, errs.New(errs.ErrCodePathNotFound, "no value at %q", p.String())
	}
	return n, nil
}

// Toggle opens or closes node.
func (s *Service) Toggle(node *tree.Node) {
	if node == nil {
		return
	}
	node.Toggle()
	s.views.RefreshTree(s.root)
}

// refresh rebuilds both projections from the document.
func (s *Service) refresh() {
	s.rebuildTree()
	s.raw = jsonvalue.Serialize(s.doc.Value(), s.indent)
	s.views.RefreshRaw(s.raw)
}

func (s *Service) rebuildTree() {
	s.root = tree.Build(s.doc.Value(), filepath.Base(s.doc.Path()), s.labels())
	s.views.RefreshTree(s.root)
}

func (s *Service) labels() tree.Labels {
	tr := s.tr
	return tree.Labels{
		RootObject: tr.T(i18n.RootObject),
		Object:     tr.T(i18n.Object),
		Array: func(n int) string {
			return tr.T(i18n.ArrayItems, n)
		},
	}
}

func (s *Service) requireDocument() error {
	if s.doc == nil {
		err := errs.New(errs.ErrCodeFileNotFound, "no document open")
		s.fail(err)
		return err
	}
	return nil
}

type nopViews struct{}

func (nopViews) RefreshTree(*tree.Node)         {}
func (nopViews) RefreshRaw(string)              {}
func (nopViews) RefreshStatus(string, Severity) {}
