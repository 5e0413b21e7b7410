// Package overlay draws modal boxes on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Placement positions the overlay. Horizontal and Vertical use lipgloss
// positions: 0 is left/top, 0.5 centered, 1 right/bottom.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
}

// Centered places the overlay in the middle of the screen.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose draws foreground over background. The background is padded or
// clipped to width x height first; cells outside the overlay keep their
// content and styling.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	fw := min(lipgloss.Width(foreground), width)
	fh := min(len(fgLines), height)

	x := offset(width, fw, placement.Horizontal)
	y := offset(height, fh, placement.Vertical)

	for row := 0; row < fh; row++ {
		base := bgLines[y+row]
		line := pad(ansi.Truncate(fgLines[row], fw, ""), fw)
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+fw, "")
		bgLines[y+row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(ansi.Truncate(lines[i], width, ""), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func offset(total, size int, pos lipgloss.Position) int {
	off := int(float64(total-size) * float64(pos))
	if off < 0 {
		return 0
	}
	if off > total-size {
		return total - size
	}
	return off
}
