// Package theme centralizes Lip Gloss styles for the Bubble Tea UI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Auto picks dark or light from the terminal background.
const Auto = "auto"

// Theme is one complete set of styles.
type Theme struct {
	Name   string
	Tree   TreeTheme
	Panel  PanelTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// TreeTheme styles rows of the structure pane.
type TreeTheme struct {
	Label         lipgloss.Style
	Container     lipgloss.Style
	Summary       lipgloss.Style
	Marker        lipgloss.Style
	Selected      lipgloss.Style
	Match         lipgloss.Style
	MatchSelected lipgloss.Style
}

// PanelTheme styles the two framed panes and their headings.
type PanelTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Title   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help lines.
type FooterTheme struct {
	Help    lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// ModalTheme styles prompt and confirm overlays.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

type palette struct {
	background string
	foreground string
	muted      string
	accent     string
	border     string
	match      string
	success    string
	warning    string
	error      string
}

var palettes = map[string]palette{
	"dark": {
		background: "#1c1c1c",
		foreground: "#d0d0d0",
		muted:      "#808080",
		accent:     "#ff87d7",
		border:     "#5f5f87",
		match:      "#ffd75f",
		success:    "#87d787",
		warning:    "#ffaf5f",
		error:      "#ff5f5f",
	},
	"light": {
		background: "#fafafa",
		foreground: "#262626",
		muted:      "#767676",
		accent:     "#af005f",
		border:     "#8787af",
		match:      "#d78700",
		success:    "#008700",
		warning:    "#af5f00",
		error:      "#d70000",
	},
	"solarized": {
		background: "#002b36",
		foreground: "#839496",
		muted:      "#586e75",
		accent:     "#268bd2",
		border:     "#073642",
		match:      "#b58900",
		success:    "#859900",
		warning:    "#cb4b16",
		error:      "#dc322f",
	},
}

// Names lists the built-in themes in cycling order.
func Names() []string {
	return []string{"dark", "light", "solarized"}
}

// Default returns the dark theme.
func Default() Theme {
	t, _ := Lookup("dark")
	return t
}

// Lookup returns the named theme. "auto" and "" resolve to dark or light
// depending on the terminal background. Unknown names report false and
// return the default.
func Lookup(name string) (Theme, bool) {
	name = Resolve(name)
	p, ok := palettes[name]
	if !ok {
		return build("dark", palettes["dark"]), false
	}
	return build(name, p), true
}

// Resolve maps "auto" to a concrete theme name.
func Resolve(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == Auto {
		if termenv.HasDarkBackground() {
			return "dark"
		}
		return "light"
	}
	return name
}

// Next returns the theme after name in Names, wrapping around.
func Next(name string) string {
	names := Names()
	name = Resolve(name)
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Blend mixes two hex colors in Lab space; t=0 is a, t=1 is b. Unparseable
// input returns a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

func build(name string, p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	muted := lipgloss.Color(p.muted)
	accent := lipgloss.Color(p.accent)
	border := lipgloss.Color(p.border)
	match := lipgloss.Color(p.match)

	// Selection and match backgrounds are tinted toward the page background.
	selectedBg := lipgloss.Color(Blend(p.accent, p.background, 0.55))
	matchBg := lipgloss.Color(Blend(p.match, p.background, 0.7))

	return Theme{
		Name: name,
		Tree: TreeTheme{
			Label:         lipgloss.NewStyle().Foreground(fg),
			Container:     lipgloss.NewStyle().Foreground(fg).Bold(true),
			Summary:       lipgloss.NewStyle().Foreground(muted),
			Marker:        lipgloss.NewStyle().Foreground(accent),
			Selected:      lipgloss.NewStyle().Foreground(fg).Background(selectedBg).Bold(true),
			Match:         lipgloss.NewStyle().Foreground(match).Background(matchBg),
			MatchSelected: lipgloss.NewStyle().Foreground(match).Background(selectedBg).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Padding(0, 1),
			Focused: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(muted),
			Info:    lipgloss.NewStyle().Foreground(fg),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color(p.success)),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.warning)),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.error)).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
