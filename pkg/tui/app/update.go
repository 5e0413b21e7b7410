package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/jsonvalue"
	"tableflip.dev/jed/pkg/tree"
	"tableflip.dev/jed/pkg/tui/keys"
	"tableflip.dev/jed/pkg/tui/theme"
)

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg)
	case modePrompt:
		m.handlePromptKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	case modeNormal:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "q", "esc", "?", "enter":
		m.mode = modeNormal
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y", "j":
		action := m.confirm
		m.confirm = confirmNone
		m.mode = modeNormal
		m.runConfirmed(action, cmds)
	case "n", "esc", "q":
		m.confirm = confirmNone
		m.pendingSel = nil
		m.mode = modeNormal
		m.setStatus(i18n.Cancelled, appsvc.SeverityInfo)
	}
}

func (m *Model) runConfirmed(action confirmAction, cmds *[]tea.Cmd) {
	switch action {
	case confirmDelete:
		_ = m.svc.Delete(m.pendingSel)
		m.pendingSel = nil
	case confirmReload:
		_ = m.svc.Reload()
	case confirmQuit:
		*cmds = append(*cmds, tea.Quit)
	case confirmNone:
	}
}

// handleNormalKey routes global bindings first, then the focused pane's.
func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.requestQuit(cmds)
		return
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus(cmds)
		return
	case key.Matches(msg, m.keys.Save):
		_ = m.svc.Save()
		return
	case key.Matches(msg, m.keys.Reload):
		if m.svc.Dirty() {
			m.askConfirm(confirmReload, nil)
			return
		}
		_ = m.svc.Reload()
		return
	case key.Matches(msg, m.keys.Validate):
		_ = m.svc.Validate()
		return
	case key.Matches(msg, m.keys.Format):
		_ = m.svc.Format()
		return
	}

	if m.focus == focusRaw {
		if msg.String() == "esc" {
			m.toggleFocus(cmds)
			return
		}
		m.updateRaw(msg, cmds)
		return
	}
	m.handleTreeKey(msg, cmds)
}

func (m *Model) handleTreeKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	sel := m.selected()
	tr := m.svc.Translator()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		m.svc.Toggle(sel)
	case key.Matches(msg, m.keys.Add):
		if !m.requireSelection(sel) {
			return
		}
		m.pendingAdd = appsvc.AddInput{}
		m.openPrompt(actionAddKey, sel, tr.T(i18n.PromptKey), "", cmds)
	case key.Matches(msg, m.keys.Edit):
		if !m.requireSelection(sel) {
			return
		}
		current, ok := m.svc.Current(sel)
		if !ok {
			// Containers are refused by the service with an explanation.
			_ = m.svc.Edit(sel, "")
			return
		}
		title := tr.T(i18n.PromptCurrent, current) + "\n" + tr.T(i18n.PromptNew)
		m.openPrompt(actionEdit, sel, title, current, cmds)
	case key.Matches(msg, m.keys.Delete):
		if !m.requireSelection(sel) {
			return
		}
		if sel.IsRoot() {
			_ = m.svc.Delete(sel)
			return
		}
		m.askConfirm(confirmDelete, sel)
	case key.Matches(msg, m.keys.Search):
		m.openPrompt(actionSearch, nil, tr.T(i18n.PromptSearch), "", cmds)
	case key.Matches(msg, m.keys.Next):
		m.nextMatch()
	case key.Matches(msg, m.keys.Template):
		names := strings.Join(m.svc.TemplateNames(m.ctx), ", ")
		m.openPrompt(actionTemplateName, nil, tr.T(i18n.PromptTemplate, names), "", cmds)
	case key.Matches(msg, m.keys.SaveTemplate):
		if !m.requireSelection(sel) {
			return
		}
		m.openPrompt(actionSaveTemplate, sel, tr.T(i18n.PromptTemplateName), "", cmds)
	case key.Matches(msg, m.keys.Language):
		m.svc.SetLanguage(nextLanguage(tr.Lang()))
		m.keys = keys.New(m.svc.Translator())
	case key.Matches(msg, m.keys.Theme):
		name := theme.Next(m.theme.Name)
		m.theme, _ = theme.Lookup(name)
		m.svc.SetTheme(name)
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	case key.Matches(msg, m.keys.Quit):
		m.requestQuit(cmds)
	}
}

func (m *Model) updateRaw(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	before := m.raw.Value()
	var cmd tea.Cmd
	m.raw, cmd = m.raw.Update(msg)
	*cmds = append(*cmds, cmd)
	if after := m.raw.Value(); after != before {
		m.svc.SetRaw(after)
	}
}

func (m *Model) toggleFocus(cmds *[]tea.Cmd) {
	if m.focus == focusTree {
		m.focus = focusRaw
		*cmds = append(*cmds, m.raw.Focus())
		return
	}
	m.focus = focusTree
	m.raw.Blur()
}

func (m *Model) requestQuit(cmds *[]tea.Cmd) {
	if m.svc.Dirty() {
		m.askConfirm(confirmQuit, nil)
		return
	}
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) askConfirm(action confirmAction, sel *tree.Node) {
	m.confirm = action
	m.pendingSel = sel
	m.mode = modeConfirm
}

func (m *Model) requireSelection(sel *tree.Node) bool {
	if sel == nil {
		m.setStatus(i18n.SelectFirst, appsvc.SeverityWarning)
		return false
	}
	return true
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.scrollToCursor()
}

// nextMatch selects the next search hit after the current one, wrapping.
func (m *Model) nextMatch() {
	hits := tree.Matches(m.root)
	if len(hits) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + 1) % len(hits)
	m.selectNode(hits[m.matchIdx])
}

func nextLanguage(current string) string {
	langs := i18n.Supported()
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// typeIsContainer reports whether an add of typ takes no value.
func typeIsContainer(typ string) bool {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case jsonvalue.TypeObject, jsonvalue.TypeArray:
		return true
	}
	return false
}
