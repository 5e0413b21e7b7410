// Package app hosts the Bubble Tea program for the jed TUI: a structure pane,
// a raw JSON editor pane, a status line and modal prompts.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/logging"
	"tableflip.dev/jed/pkg/tree"
	"tableflip.dev/jed/pkg/tui/keys"
	"tableflip.dev/jed/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modePrompt
	modeConfirm
	modeHelp
)

type focus int

const (
	focusTree focus = iota
	focusRaw
)

// action is the command a prompt collects input for.
type action int

const (
	actionNone action = iota
	actionAddKey
	actionAddType
	actionAddValue
	actionEdit
	actionSearch
	actionTemplateName
	actionTemplateKey
	actionSaveTemplate
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmReload
	confirmQuit
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Model contains UI state. It implements app.Views so the service can push
// both projections and the status line after every command.
type Model struct {
	svc *appsvc.Service
	ctx context.Context

	mode    mode
	action  action
	confirm confirmAction
	focus   focus

	keys  keys.KeyMap
	help  help.Model
	theme theme.Theme

	root   *tree.Node
	rows   []tree.Row
	cursor int
	offset int

	raw textarea.Model

	input       textinput.Model
	promptTitle string
	pendingSel  *tree.Node
	pendingAdd  appsvc.AddInput
	pendingName string
	matchIdx    int

	status   string
	severity appsvc.Severity
	title    string

	termWidth  int
	termHeight int
	treeWidth  int
	rawWidth   int
	bodyHeight int
}

// New creates the UI model and registers it as the service's view sink.
func New(ctx context.Context, svc *appsvc.Service) *Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""

	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Styles.Cursor.Shape = tea.CursorBlock

	th, _ := theme.Lookup(svc.Theme())

	m := &Model{
		svc:        svc,
		ctx:        ctx,
		mode:       modeNormal,
		focus:      focusTree,
		keys:       keys.New(svc.Translator()),
		help:       help.New(),
		theme:      th,
		raw:        ta,
		input:      ti,
		status:     svc.Translator().T(i18n.Ready),
		termWidth:  defaultWidth,
		termHeight: defaultHeight,
	}
	svc.SetViews(m)
	if root := svc.Tree(); root != nil {
		m.RefreshTree(root)
		m.RefreshRaw(svc.Raw())
	}
	m.applySizes()
	return m
}

// Init sets the window title.
func (m *Model) Init() tea.Cmd {
	m.title = m.svc.Title()
	return tea.SetWindowTitle(m.title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		if m.mode == modeNormal && m.focus == focusRaw {
			var cmd tea.Cmd
			m.raw, cmd = m.raw.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.applySizes()
	if t := m.svc.Title(); t != m.title {
		m.title = t
		cmds = append(cmds, tea.SetWindowTitle(t))
	}
	return m, tea.Batch(cmds...)
}

// View renders both panes side by side with the footer below, and any
// prompt on top.
func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderTreePane(), m.renderRawPane())
	screen := lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())

	if modal := m.renderModal(); modal != "" {
		return composeModal(screen, m.termWidth, m.termHeight, modal)
	}
	return screen
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc *appsvc.Service) error {
	m := New(ctx, svc)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	logging.FromContext(ctx).Debug("tui stopped", "err", err)
	return err
}

// applySizes recalculates pane sizes from the terminal size and the current
// footer height.
func (m *Model) applySizes() {
	width := max(m.termWidth, 40)
	height := max(m.termHeight, 10)

	m.treeWidth = width * 2 / 5
	m.rawWidth = width - m.treeWidth
	m.bodyHeight = max(height-lipgloss.Height(m.renderFooter()), 5)

	frameX := m.theme.Panel.Frame.GetHorizontalFrameSize()
	frameY := m.theme.Panel.Frame.GetVerticalFrameSize()
	m.raw.SetWidth(max(m.rawWidth-frameX, 1))
	m.raw.SetHeight(max(m.bodyHeight-frameY-1, 1))
	m.scrollToCursor()
}

// treeRows is how many tree rows fit in the structure pane.
func (m *Model) treeRows() int {
	frameY := m.theme.Panel.Frame.GetVerticalFrameSize()
	return max(m.bodyHeight-frameY-1, 1)
}

func (m *Model) scrollToCursor() {
	visible := m.treeRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) setStatus(key string, sev appsvc.Severity, args ...any) {
	m.status = m.svc.Translator().T(key, args...)
	m.severity = sev
}
