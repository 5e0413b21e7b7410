// Package keys defines the key bindings of the TUI and their localized help.
package keys

import (
	"github.com/charmbracelet/bubbles/v2/key"

	"tableflip.dev/jed/pkg/i18n"
)

// KeyMap holds every binding. Tree bindings are single letters and only
// apply while the structure pane has focus; global bindings use ctrl so they
// also work while typing in the raw editor.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding

	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	Search       key.Binding
	Next         key.Binding
	Template     key.Binding
	SaveTemplate key.Binding
	Language     key.Binding
	Theme        key.Binding
	Help         key.Binding
	Quit         key.Binding

	Focus     key.Binding
	Save      key.Binding
	Reload    key.Binding
	Validate  key.Binding
	Format    key.Binding
	ForceQuit key.Binding
}

// New returns the default bindings with help text in tr's language.
func New(tr *i18n.Translator) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", tr.T(i18n.HelpMove)),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", tr.T(i18n.HelpMove)),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", "space", " "),
			key.WithHelp("enter", tr.T(i18n.HelpToggle)),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", tr.T(i18n.HelpAdd)),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", tr.T(i18n.HelpEdit)),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", tr.T(i18n.HelpDelete)),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", tr.T(i18n.HelpSearch)),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", tr.T(i18n.HelpNext)),
		),
		Template: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", tr.T(i18n.HelpTemplate)),
		),
		SaveTemplate: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", tr.T(i18n.HelpSaveTemplate)),
		),
		Language: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", tr.T(i18n.HelpLanguage)),
		),
		Theme: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", tr.T(i18n.HelpTheme)),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", tr.T(i18n.HelpMore)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", tr.T(i18n.HelpQuit)),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", tr.T(i18n.HelpFocus)),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", tr.T(i18n.HelpSave)),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", tr.T(i18n.HelpReload)),
		),
		Validate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", tr.T(i18n.HelpValidate)),
		),
		Format: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", tr.T(i18n.HelpFormat)),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", tr.T(i18n.HelpQuit)),
		),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.Focus, k.Save, k.Help, k.Quit}
}

// FullHelp is shown after pressing ?.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Focus},
		{k.Add, k.Edit, k.Delete, k.Search, k.Next},
		{k.Template, k.SaveTemplate, k.Language, k.Theme},
		{k.Save, k.Reload, k.Validate, k.Format, k.Quit},
	}
}
