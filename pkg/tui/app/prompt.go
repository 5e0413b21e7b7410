package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/tree"
)

// openPrompt shows a one-line input for action. sel is the node the command
// will act on; it is captured now so moving the cursor cannot retarget it.
func (m *Model) openPrompt(a action, sel *tree.Node, title, value string, cmds *[]tea.Cmd) {
	m.mode = modePrompt
	m.action = a
	m.pendingSel = sel
	m.promptTitle = title
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	*cmds = append(*cmds, m.input.Focus())
}

// closePrompt leaves prompt mode without running anything.
func (m *Model) closePrompt() {
	m.mode = modeNormal
	m.action = actionNone
	m.promptTitle = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pendingSel = nil
		m.pendingAdd = appsvc.AddInput{}
		m.pendingName = ""
		m.closePrompt()
		m.setStatus(i18n.Cancelled, appsvc.SeverityInfo)
	case "enter":
		m.submitPrompt(cmds)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// submitPrompt runs the pending command, or moves on to the next prompt of a
// multi-step command.
func (m *Model) submitPrompt(cmds *[]tea.Cmd) {
	value := m.input.Value()
	sel := m.pendingSel
	tr := m.svc.Translator()
	a := m.action
	m.closePrompt()

	switch a {
	case actionAddKey:
		m.pendingAdd.Key = strings.TrimSpace(value)
		if m.pendingAdd.Key == "" {
			// The service reports the empty key.
			_ = m.svc.Add(sel, m.pendingAdd)
			return
		}
		m.openPrompt(actionAddType, sel, tr.T(i18n.PromptType), "", cmds)
		return
	case actionAddType:
		m.pendingAdd.Type = strings.TrimSpace(value)
		if typeIsContainer(m.pendingAdd.Type) {
			m.finishAdd(sel)
			return
		}
		m.openPrompt(actionAddValue, sel, tr.T(i18n.PromptValue), "", cmds)
		return
	case actionAddValue:
		m.pendingAdd.Value = value
		m.finishAdd(sel)
	case actionEdit:
		_ = m.svc.Edit(sel, value)
	case actionSearch:
		m.search(value)
	case actionTemplateName:
		m.pendingName = strings.TrimSpace(value)
		if m.pendingName == "" {
			m.setStatus(i18n.Cancelled, appsvc.SeverityInfo)
			return
		}
		m.openPrompt(actionTemplateKey, nil, tr.T(i18n.PromptEntry), m.pendingName, cmds)
		return
	case actionTemplateKey:
		_ = m.svc.InsertTemplate(m.pendingName, strings.TrimSpace(value))
		m.pendingName = ""
	case actionSaveTemplate:
		_ = m.svc.SaveTemplate(sel, strings.TrimSpace(value))
	case actionNone:
	}
	m.pendingSel = nil
}

func (m *Model) finishAdd(sel *tree.Node) {
	in := m.pendingAdd
	m.pendingAdd = appsvc.AddInput{}
	m.pendingSel = nil
	if err := m.svc.Add(sel, in); err == nil {
		if added := m.childOf(sel, in.Key); added != nil {
			m.selectNode(added)
		}
	}
}

// search flags hits and selects the first one.
func (m *Model) search(term string) {
	m.matchIdx = 0
	if m.svc.Search(term) == 0 {
		return
	}
	if hits := tree.Matches(m.root); len(hits) > 0 {
		m.selectNode(hits[0])
	}
}
