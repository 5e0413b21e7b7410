package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	appsvc "tableflip.dev/jed/pkg/app"
	"tableflip.dev/jed/pkg/i18n"
	"tableflip.dev/jed/pkg/tree"
	"tableflip.dev/jed/pkg/tui/ui/overlay"
)

const ellipsis = "…"

func (m *Model) paneFrame(focused bool) lipgloss.Style {
	if focused {
		return m.theme.Panel.Focused
	}
	return m.theme.Panel.Frame
}

// renderPane frames title and body lines into exactly width x height cells.
func (m *Model) renderPane(title string, lines []string, width, height int, focused bool) string {
	frame := m.paneFrame(focused)
	innerW := max(width-frame.GetHorizontalFrameSize(), 1)
	innerH := max(height-frame.GetVerticalFrameSize(), 1)

	content := make([]string, 0, innerH)
	content = append(content, fit(m.theme.Panel.Title.Render(title), innerW))
	for _, l := range lines {
		if len(content) == innerH {
			break
		}
		content = append(content, fit(l, innerW))
	}
	for len(content) < innerH {
		content = append(content, strings.Repeat(" ", innerW))
	}
	return frame.Render(strings.Join(content, "\n"))
}

func (m *Model) renderTreePane() string {
	tr := m.svc.Translator()
	frame := m.paneFrame(m.focus == focusTree)
	innerW := max(m.treeWidth-frame.GetHorizontalFrameSize(), 1)

	end := min(m.offset+m.treeRows(), len(m.rows))
	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.cursor, innerW))
	}
	return m.renderPane(tr.T(i18n.PaneTree), lines, m.treeWidth, m.bodyHeight, m.focus == focusTree)
}

// renderRow draws one tree row: indent, expand marker, icon, label, summary.
func (m *Model) renderRow(r tree.Row, selected bool, width int) string {
	n := r.Node
	th := m.theme.Tree
	indent := strings.Repeat("  ", r.Depth)
	marker := n.Marker().Symbol
	icon := n.Glyph().Symbol

	var whole *lipgloss.Style
	switch {
	case selected && n.Match:
		whole = &th.MatchSelected
	case selected:
		whole = &th.Selected
	case n.Match:
		whole = &th.Match
	}
	if whole != nil {
		text := indent + marker + " " + icon + " " + n.Label + "  " + n.Summary
		return whole.Render(ansi.Truncate(text, width, ellipsis))
	}

	label := th.Label
	if n.IsContainer() {
		label = th.Container
	}
	line := indent + th.Marker.Render(marker) + " " + icon + " " +
		label.Render(n.Label) + "  " + th.Summary.Render(n.Summary)
	return ansi.Truncate(line, width, ellipsis)
}

func (m *Model) renderRawPane() string {
	tr := m.svc.Translator()
	lines := strings.Split(m.raw.View(), "\n")
	return m.renderPane(tr.T(i18n.PaneRaw), lines, m.rawWidth, m.bodyHeight, m.focus == focusRaw)
}

// renderFooter is the status line, which may span several lines for parse
// errors, followed by the short help.
func (m *Model) renderFooter() string {
	width := max(m.termWidth, 40)
	style := m.statusStyle()

	var lines []string
	for _, l := range strings.Split(m.status, "\n") {
		lines = append(lines, style.Render(ansi.Truncate(l, width, ellipsis)))
	}
	helpLine := m.help.ShortHelpView(m.keys.ShortHelp())
	lines = append(lines, ansi.Truncate(helpLine, width, ellipsis))
	return strings.Join(lines, "\n")
}

func (m *Model) statusStyle() lipgloss.Style {
	f := m.theme.Footer
	switch m.severity {
	case appsvc.SeveritySuccess:
		return f.Success
	case appsvc.SeverityWarning:
		return f.Warning
	case appsvc.SeverityError:
		return f.Error
	case appsvc.SeverityInfo:
	}
	return f.Info
}

// renderModal returns the overlay for the current mode, or "".
func (m *Model) renderModal() string {
	tr := m.svc.Translator()
	md := m.theme.Modal

	var body string
	switch m.mode {
	case modePrompt:
		body = md.Title.Render(m.promptTitle) + "\n\n" + m.input.View()
	case modeConfirm:
		var question string
		switch m.confirm {
		case confirmDelete:
			target := ""
			if m.pendingSel != nil {
				target = m.pendingSel.Path().String()
			}
			question = tr.T(i18n.ConfirmDelete, target)
		case confirmReload, confirmQuit, confirmNone:
			question = tr.T(i18n.ConfirmDiscard)
		}
		body = md.Title.Render(question) + "\n\n" + md.Body.Render(tr.T(i18n.YesNo))
	case modeHelp:
		body = m.help.FullHelpView(m.keys.FullHelp())
	case modeNormal:
		return ""
	}
	return md.Frame.Render(body)
}

func composeModal(screen string, width, height int, modal string) string {
	return overlay.Compose(screen, max(width, 40), max(height, 10), modal, overlay.Centered)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, ellipsis)
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
