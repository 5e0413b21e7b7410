package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"

	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/jsonvalue"
)

const sample = `{"name":"jed","tags":["a","b"],"meta":{"v":1}}`

func stripANSI(s string) string {
	return ansi.Strip(s)
}

func newTestModel(t *testing.T, doc string) (*Model, *appsvc.Service, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/data.json", []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := appsvc.New(appsvc.Options{
		FS:       fs,
		Indent:   2,
		Language: "en",
		Theme:    "dark",
		Logger:   log.New(&strings.Builder{}),
	})
	if err := svc.Open("/work/data.json"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	m := New(context.Background(), svc)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, svc, fs
}

func press(m *Model, keys ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func char(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Text: string(r), Code: r} }

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	tab   = tea.KeyPressMsg{Code: tea.KeyTab}
	ctrlS = tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
)

// submit types value into the open prompt and presses enter.
func submit(m *Model, value string) {
	m.input.SetValue(value)
	press(m, enter)
}

func compact(svc *appsvc.Service) string {
	return jsonvalue.Serialize(svc.Document().Value(), 0)
}

func TestViewRendersBothPanes(t *testing.T) {
	m, _, _ := newTestModel(t, sample)

	view := stripANSI(m.View())
	for _, want := range []string{"Structure", "Raw JSON Editor", "data.json", "Root Object", "Array [2 items]", `"name": "jed"`} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q; view=%q", want, view)
		}
	}
	if strings.Contains(view, "[0]") {
		t.Errorf("collapsed array children should be hidden; view=%q", view)
	}
}

func TestNavigateAndToggle(t *testing.T) {
	m, _, _ := newTestModel(t, sample)

	press(m, down, down)
	if got := m.selected().Label; got != "tags" {
		t.Fatalf("selected = %q", got)
	}
	press(m, enter)
	view := stripANSI(m.View())
	if !strings.Contains(view, "▾ 📋 tags") || !strings.Contains(view, "[1]  b") {
		t.Errorf("expected tags expanded; view=%q", view)
	}
}

func TestAddThroughPrompts(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, down, down, char('a'))
	if m.mode != modePrompt || m.action != actionAddKey {
		t.Fatalf("mode=%v action=%v", m.mode, m.action)
	}
	if !strings.Contains(stripANSI(m.View()), "Key/name:") {
		t.Errorf("key prompt not shown")
	}

	submit(m, "0")
	submit(m, "")
	submit(m, "99")

	if m.mode != modeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	if got := compact(svc); got != `{"name":"jed","tags":[99,"a","b"],"meta":{"v":1}}` {
		t.Errorf("document = %s", got)
	}
	if !svc.Dirty() || !strings.HasSuffix(svc.Title(), "*") {
		t.Errorf("expected dirty document, title %q", svc.Title())
	}
	if sel := m.selected(); sel == nil || sel.Label != "[0]" {
		t.Errorf("expected new element selected, got %+v", sel)
	}
}

func TestAddContainerSkipsValuePrompt(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, char('a'))
	submit(m, "extra")
	submit(m, "object")

	if m.mode != modeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	if !strings.HasSuffix(compact(svc), `"extra":{}}`) {
		t.Errorf("document = %s", compact(svc))
	}
}

func TestEscCancelsPrompt(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, down, char('a'))
	m.input.SetValue("k")
	press(m, esc)

	if m.mode != modeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	if svc.Dirty() || compact(svc) != sample {
		t.Errorf("cancelled prompt changed the document: %s", compact(svc))
	}
	if m.status != "Cancelled" {
		t.Errorf("status = %q", m.status)
	}
}

func TestEditScalar(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, down, char('e'))
	if m.input.Value() != "jed" {
		t.Fatalf("edit prompt prefilled with %q", m.input.Value())
	}
	if !strings.Contains(stripANSI(m.View()), "Current value: jed") {
		t.Errorf("current value not shown")
	}
	submit(m, "json editor")
	if !strings.Contains(compact(svc), `"name":"json editor"`) {
		t.Errorf("document = %s", compact(svc))
	}
	if sel := m.selected(); sel == nil || sel.Label != "name" {
		t.Errorf("selection lost after edit: %+v", sel)
	}
}

func TestEditContainerIsRefused(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, down, down, down, char('e'))
	if m.mode != modeNormal {
		t.Fatalf("mode = %v", m.mode)
	}
	if !strings.Contains(m.status, "raw editor") {
		t.Errorf("status = %q", m.status)
	}
	if svc.Dirty() {
		t.Error("document marked dirty")
	}
}

func TestDeleteAsksFirst(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, down, char('d'))
	if m.mode != modeConfirm {
		t.Fatalf("mode = %v", m.mode)
	}
	if !strings.Contains(stripANSI(m.View()), "Really delete name?") {
		t.Errorf("confirm not shown; view=%q", stripANSI(m.View()))
	}
	press(m, char('n'))
	if compact(svc) != sample {
		t.Fatalf("declined delete changed the document")
	}

	press(m, char('d'), char('y'))
	if got := compact(svc); got != `{"tags":["a","b"],"meta":{"v":1}}` {
		t.Errorf("document = %s", got)
	}
	if sel := m.selected(); sel == nil || !sel.IsRoot() {
		t.Errorf("expected selection to fall back to the root, got %+v", sel)
	}
}

func TestSearchSelectsFirstMatch(t *testing.T) {
	m, _, _ := newTestModel(t, `{"a":{"b":{"needle":1}},"c":"Needle too"}`)
	press(m, char('/'))
	submit(m, "needle")

	if m.status != `2 matches for "needle"` {
		t.Errorf("status = %q", m.status)
	}
	if sel := m.selected(); sel == nil || sel.Label != "needle" {
		t.Fatalf("selected = %+v", sel)
	}
	press(m, char('n'))
	if sel := m.selected(); sel == nil || sel.Label != "c" {
		t.Errorf("next match = %+v", sel)
	}
}

func TestRawEditingAndInvalidSave(t *testing.T) {
	m, svc, fs := newTestModel(t, sample)
	press(m, tab)
	if m.focus != focusRaw {
		t.Fatal("tab did not focus the raw editor")
	}
	before := svc.Raw()
	press(m, char('x'))
	if svc.Raw() == before || !svc.Dirty() {
		t.Fatalf("keystroke not recorded; raw=%q", svc.Raw())
	}
	if m.status != "Modified" {
		t.Errorf("status = %q", m.status)
	}

	press(m, ctrlS)
	if !strings.Contains(m.status, "JSON error") || m.severity != appsvc.SeverityError {
		t.Errorf("status = %q (%v)", m.status, m.severity)
	}
	data, _ := afero.ReadFile(fs, "/work/data.json")
	if string(data) != sample {
		t.Errorf("invalid text was written: %s", data)
	}
}

func TestQuitWithUnsavedChangesAsks(t *testing.T) {
	m, _, _ := newTestModel(t, sample)
	if cmd := press(m, char('q')); cmd == nil {
		t.Fatal("clean quit should return a command")
	}

	press(m, down, char('d'), char('y'))
	press(m, char('q'))
	if m.mode != modeConfirm || m.confirm != confirmQuit {
		t.Fatalf("mode=%v confirm=%v", m.mode, m.confirm)
	}
	if !strings.Contains(stripANSI(m.View()), "Unsaved changes will be lost") {
		t.Errorf("discard warning not shown")
	}
	press(m, esc)
	if m.mode != modeNormal {
		t.Errorf("esc did not cancel quit")
	}
}

func TestLanguageAndThemeSwitch(t *testing.T) {
	m, svc, _ := newTestModel(t, sample)
	press(m, char('L'))
	if svc.Translator().Lang() != "de" {
		t.Fatalf("lang = %q", svc.Translator().Lang())
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Struktur-Ansicht") || !strings.Contains(view, "Wurzelobjekt") {
		t.Errorf("expected German labels; view=%q", view)
	}

	press(m, char('C'))
	if m.theme.Name != "light" || svc.Theme() != "light" {
		t.Errorf("theme = %q / %q", m.theme.Name, svc.Theme())
	}
}
