package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/path"
	"tableflip.dev/jed/pkg/tree"
)

type status struct {
	msg string
	sev Severity
}

type recordingViews struct {
	trees    int
	raws     []string
	statuses []status
	root     *tree.Node
}

func (r *recordingViews) RefreshTree(root *tree.Node) {
	r.trees++
	r.root = root
}

func (r *recordingViews) RefreshRaw(text string) { r.raws = append(r.raws, text) }

func (r *recordingViews) RefreshStatus(msg string, sev Severity) {
	r.statuses = append(r.statuses, status{msg: msg, sev: sev})
}

func (r *recordingViews) last() status {
	if len(r.statuses) == 0 {
		return status{}
	}
	return r.statuses[len(r.statuses)-1]
}

func newService(t *testing.T, doc string) (*Service, *recordingViews, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/data.json", []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	views := &recordingViews{}
	s := New(Options{
		FS:       fs,
		Indent:   2,
		Language: "en",
		Logger:   log.New(&strings.Builder{}),
		Views:    views,
	})
	if err := s.Open("/work/data.json"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s, views, fs
}

func node(t *testing.T, s *Service, p string) *tree.Node {
	t.Helper()
	n := tree.Find(s.Tree(), path.Decode(p))
	if n == nil {
		t.Fatalf("no node at %q", p)
	}
	return n
}

func compact(t *testing.T, s *Service) string {
	t.Helper()
	return jsonvalue.Serialize(s.Document().Value(), 0)
}

func TestOpenRefreshesProjections(t *testing.T) {
	s, views, _ := newService(t, `{"a":1,"b":[1,2,3]}`)

	if views.trees != 1 || len(views.raws) != 1 {
		t.Fatalf("refreshes = %d trees, %d raws", views.trees, len(views.raws))
	}
	if got, want := s.Raw(), "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2,\n    3\n  ]\n}"; got != want {
		t.Errorf("raw = %q, want %q", got, want)
	}
	if s.Tree().Label != "data.json" || s.Tree().Summary != "Root Object" {
		t.Errorf("root = %q %q", s.Tree().Label, s.Tree().Summary)
	}
	if views.last().msg != "Opened data.json" {
		t.Errorf("status = %q", views.last().msg)
	}
	if s.Dirty() {
		t.Error("freshly opened document is dirty")
	}
	if s.Title() != "jed - data.json" {
		t.Errorf("title = %q", s.Title())
	}
}

func TestOpenMissingFile(t *testing.T) {
	views := &recordingViews{}
	s := New(Options{FS: afero.NewMemMapFs(), Language: "de", Views: views})
	err := s.Open("/nope.json")
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Fatalf("err = %v", err)
	}
	if got := views.last(); got.sev != SeverityError || !strings.Contains(got.msg, "nicht gefunden") {
		t.Errorf("status = %+v", got)
	}
}

func TestAddIntoArrayAtIndex(t *testing.T) {
	s, views, _ := newService(t, `{"a":1,"b":[1,2,3]}`)
	before := views.trees

	err := s.Add(node(t, s, "b"), AddInput{Key: "1", Value: "99"})
	if err != nil {
		t.Fatal(err)
	}
	if got := compact(t, s); got != `{"a":1,"b":[1,99,2,3]}` {
		t.Errorf("doc = %s", got)
	}
	if views.trees != before+1 {
		t.Errorf("tree refreshed %d times, want once", views.trees-before)
	}
	if !s.Dirty() || s.Title() != "jed - data.json *" {
		t.Errorf("dirty = %v, title = %q", s.Dirty(), s.Title())
	}
	if !strings.Contains(s.Raw(), "99") {
		t.Error("raw text not refreshed")
	}
}

func TestAddTyped(t *testing.T) {
	s, _, _ := newService(t, `{"o":{}}`)
	o := node(t, s, "o")
	for _, in := range []AddInput{
		{Key: "s", Type: "string", Value: "42"},
		{Key: "n", Type: "number", Value: "4.5"},
		{Key: "b", Type: "boolean", Value: "ja"},
		{Key: "list", Type: "array"},
	} {
		if err := s.Add(o, in); err != nil {
			t.Fatalf("%+v: %v", in, err)
		}
		o = node(t, s, "o")
	}
	if got := compact(t, s); got != `{"o":{"s":"42","n":4.5,"b":true,"list":[]}}` {
		t.Errorf("doc = %s", got)
	}
}

func TestAddRejections(t *testing.T) {
	s, views, _ := newService(t, `{"a":"x"}`)

	if err := s.Add(nil, AddInput{Key: "k"}); !errs.Is(err, errs.ErrCodeNothingSelected) {
		t.Errorf("nil selection err = %v", err)
	}
	if views.last().sev != SeverityWarning {
		t.Errorf("nothing selected severity = %v", views.last().sev)
	}
	if err := s.Add(s.Tree(), AddInput{Key: ""}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("empty key err = %v", err)
	}
	if err := s.Add(node(t, s, "a"), AddInput{Key: "k", Value: "v"}); !errs.Is(err, errs.ErrCodeTypeMismatch) {
		t.Errorf("scalar parent err = %v", err)
	}
	if err := s.Add(s.Tree(), AddInput{Key: "k", Type: "number", Value: "x"}); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("bad number err = %v", err)
	}
	if s.Dirty() || compact(t, s) != `{"a":"x"}` {
		t.Errorf("rejected adds changed the document: %s", compact(t, s))
	}
}

func TestEditConvertsByCurrentType(t *testing.T) {
	s, _, _ := newService(t, `{"a":1,"f":true,"s":"x","n":null}`)

	steps := []struct {
		path, text string
	}{
		{"a", "2.5"},
		{"f", "nein"},
		{"s", "12"},
		{"n", "7"},
	}
	for _, st := range steps {
		if err := s.Edit(node(t, s, st.path), st.text); err != nil {
			t.Fatalf("edit %s: %v", st.path, err)
		}
	}
	if got := compact(t, s); got != `{"a":2.5,"f":false,"s":"12","n":7}` {
		t.Errorf("doc = %s", got)
	}
	if !s.Dirty() {
		t.Error("edit did not mark dirty")
	}
}

func TestEditNullKeepsScalar(t *testing.T) {
	s, _, _ := newService(t, `{"a":null,"b":null,"c":null,"d":null}`)

	for p, text := range map[string]string{"a": "{}", "b": "[]", "c": "5", "d": "true"} {
		if err := s.Edit(node(t, s, p), text); err != nil {
			t.Fatalf("edit %s: %v", p, err)
		}
	}
	if got := compact(t, s); got != `{"a":"{}","b":"[]","c":5,"d":true}` {
		t.Errorf("doc = %s", got)
	}
}

func TestEditContainerIsInformational(t *testing.T) {
	s, views, _ := newService(t, `{"o":{"k":1}}`)
	err := s.Edit(node(t, s, "o"), "x")
	if !errs.Is(err, errs.ErrCodeTypeMismatch) {
		t.Fatalf("err = %v", err)
	}
	if views.last().sev != SeverityInfo {
		t.Errorf("severity = %v, want info", views.last().sev)
	}
	if s.Dirty() {
		t.Error("container edit marked dirty")
	}
}

func TestEditStaleSelectionIsNoop(t *testing.T) {
	s, _, _ := newService(t, `{"a":1,"b":2}`)
	stale := node(t, s, "a")
	if err := s.Delete(stale); err != nil {
		t.Fatal(err)
	}
	s.Document().MarkClean()
	if err := s.Edit(stale, "5"); err != nil {
		t.Fatalf("err = %v", err)
	}
	if s.Dirty() || compact(t, s) != `{"b":2}` {
		t.Errorf("stale edit changed document: %s", compact(t, s))
	}
}

func TestDelete(t *testing.T) {
	s, _, _ := newService(t, `{"b":[10,20]}`)
	if err := s.Delete(node(t, s, "b/[0]")); err != nil {
		t.Fatal(err)
	}
	if got := compact(t, s); got != `{"b":[20]}` {
		t.Errorf("doc = %s", got)
	}
	if !s.Dirty() {
		t.Error("delete did not mark dirty")
	}
}

func TestDeleteNoops(t *testing.T) {
	s, views, _ := newService(t, `{"a":{"x":1}}`)

	if err := s.Delete(s.Tree()); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("root delete err = %v", err)
	}
	stale := node(t, s, "a/x")
	if err := s.Delete(node(t, s, "a")); err != nil {
		t.Fatal(err)
	}
	s.Document().MarkClean()
	before := views.trees
	if err := s.Delete(stale); err != nil {
		t.Fatalf("stale delete err = %v", err)
	}
	if s.Dirty() {
		t.Error("no-op delete marked dirty")
	}
	if views.trees != before+1 {
		t.Error("no-op delete should still refresh")
	}
	if views.last().msg != "Nothing to delete" {
		t.Errorf("status = %q", views.last().msg)
	}
}

func TestSearchReportsMatches(t *testing.T) {
	s, views, _ := newService(t, `{"config":{"Name":"demo"},"names":["x"]}`)
	if n := s.Search("NAME"); n != 2 {
		t.Fatalf("matches = %d", n)
	}
	if views.root != s.Tree() {
		t.Error("search did not refresh tree")
	}
	if !node(t, s, "config").Expanded {
		t.Error("ancestor of match not expanded")
	}
	if views.last().msg != `2 matches for "NAME"` {
		t.Errorf("status = %q", views.last().msg)
	}
	if s.Dirty() {
		t.Error("search marked dirty")
	}
}

func TestInsertTemplate(t *testing.T) {
	s, _, _ := newService(t, `{}`)
	if err := s.InsertTemplate("test_case", "t1"); err != nil {
		t.Fatal(err)
	}
	if err := s.InsertTemplate("test_case", "t2"); err != nil {
		t.Fatal(err)
	}
	t1, _ := path.Resolve(s.Document().Value(), path.Decode("t1"))
	t1.Object().Set("status", jsonvalue.String("passed"))
	t2, _ := path.Resolve(s.Document().Value(), path.Decode("t2/status"))
	if t2.Str() != "not_tested" {
		t.Error("template insertions share state")
	}

	if err := s.InsertTemplate("nope", "k"); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("unknown template err = %v", err)
	}
	if err := s.InsertTemplate("feature", " "); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("empty key err = %v", err)
	}
}

func TestSaveInvalidRawKeepsFile(t *testing.T) {
	s, views, fs := newService(t, `{"a":1}`)
	s.SetRaw("{\n  \"a\": 1,\n  \"b\": \n}")
	if !s.Dirty() {
		t.Fatal("SetRaw did not mark dirty")
	}

	err := s.Save()
	var pe *errs.ParseError
	if !errors.As(err, &pe) || pe.Line != 4 || pe.Column != 1 {
		t.Fatalf("err = %v", err)
	}
	msg := views.last().msg
	if !strings.Contains(msg, "Line 4, column 1") || !strings.HasSuffix(msg, "}\n^") {
		t.Errorf("status = %q", msg)
	}
	data, _ := afero.ReadFile(fs, "/work/data.json")
	if string(data) != `{"a":1}` {
		t.Errorf("file changed: %s", data)
	}
	if compact(t, s) != `{"a":1}` {
		t.Errorf("memory changed: %s", compact(t, s))
	}
}

func TestSaveWritesRawVerbatim(t *testing.T) {
	s, _, fs := newService(t, `{"a":1}`)
	text := "{\"a\": 2, \"ö\": [ ]}"
	s.SetRaw(text)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := afero.ReadFile(fs, "/work/data.json")
	if string(data) != text {
		t.Errorf("file = %q", data)
	}
	if s.Dirty() {
		t.Error("save left document dirty")
	}
	if s.Raw() != "{\n  \"a\": 2,\n  \"ö\": []\n}" {
		t.Errorf("raw after save = %q", s.Raw())
	}
}

func TestMutationThenSave(t *testing.T) {
	s, _, fs := newService(t, `{"a":1}`)
	if err := s.Add(s.Tree(), AddInput{Key: "größe", Value: "groß"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := afero.ReadFile(fs, "/work/data.json")
	if string(data) != "{\n  \"a\": 1,\n  \"größe\": \"groß\"\n}" {
		t.Errorf("file = %q", data)
	}
}

func TestValidateAndFormat(t *testing.T) {
	s, views, _ := newService(t, `{"a":1}`)
	s.SetRaw(`{"a":[1,2]}`)
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if views.last().sev != SeveritySuccess {
		t.Errorf("validate severity = %v", views.last().sev)
	}

	s.Document().MarkClean()
	if err := s.Format(); err != nil {
		t.Fatal(err)
	}
	if s.Raw() != "{\n  \"a\": [\n    1,\n    2\n  ]\n}" {
		t.Errorf("formatted = %q", s.Raw())
	}
	if !s.Dirty() {
		t.Error("format did not mark dirty")
	}

	s.SetRaw(`{"a":`)
	if err := s.Format(); !errs.Is(err, errs.ErrCodeParse) {
		t.Errorf("format err = %v", err)
	}
	if !strings.HasPrefix(views.last().msg, "Cannot format:") {
		t.Errorf("status = %q", views.last().msg)
	}
	if err := s.Validate(); !errs.Is(err, errs.ErrCodeParse) {
		t.Errorf("validate err = %v", err)
	}
}

func TestReloadDiscardsChanges(t *testing.T) {
	s, _, _ := newService(t, `{"a":1}`)
	if err := s.Delete(node(t, s, "a")); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	if s.Dirty() || compact(t, s) != `{"a":1}` {
		t.Errorf("reload = %s dirty=%v", compact(t, s), s.Dirty())
	}
}

func TestSetLanguageRelabelsTree(t *testing.T) {
	s, views, _ := newService(t, `{"l":[1]}`)
	s.SetLanguage("de")
	if s.Tree().Summary != "Wurzelobjekt" {
		t.Errorf("root summary = %q", s.Tree().Summary)
	}
	if node(t, s, "l").Summary != "Array [1 Einträge]" {
		t.Errorf("array summary = %q", node(t, s, "l").Summary)
	}
	if views.last().msg != "Sprache: de" {
		t.Errorf("status = %q", views.last().msg)
	}
}

func TestToggle(t *testing.T) {
	s, _, _ := newService(t, `{"o":{"k":1}}`)
	o := node(t, s, "o")
	s.Toggle(o)
	if !o.Expanded {
		t.Error("toggle did not expand")
	}
	s.Toggle(nil)
}

func TestNodeByPath(t *testing.T) {
	s, _, _ := newService(t, `{"o":{"k":[true]}}`)
	n, err := s.Node(path.Decode("o/k/[0]"))
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if n.Summary != "true" {
		t.Errorf("summary = %q", n.Summary)
	}
	if _, err := s.Node(path.Decode("o/missing")); !errs.Is(err, errs.ErrCodePathNotFound) {
		t.Errorf("err = %v", err)
	}
}
