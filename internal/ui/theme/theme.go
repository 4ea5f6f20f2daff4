package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one Catppuccin flavour.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
}

var Mocha = Palette{
	Base:     lipgloss.Color("#1e1e2e"),
	Mantle:   lipgloss.Color("#181825"),
	Surface1: lipgloss.Color("#45475a"),
	Text:     lipgloss.Color("#cdd6f4"),
	Subtext0: lipgloss.Color("#a6adc8"),
	Lavender: lipgloss.Color("#b4befe"),
	Sapphire: lipgloss.Color("#74c7ec"),
	Green:    lipgloss.Color("#a6e3a1"),
	Peach:    lipgloss.Color("#fab387"),
	Red:      lipgloss.Color("#f38ba8"),
}

var Latte = Palette{
	Base:     lipgloss.Color("#eff1f5"),
	Mantle:   lipgloss.Color("#e6e9ef"),
	Surface1: lipgloss.Color("#bcc0cc"),
	Text:     lipgloss.Color("#4c4f69"),
	Subtext0: lipgloss.Color("#6c6f85"),
	Lavender: lipgloss.Color("#7287fd"),
	Sapphire: lipgloss.Color("#209fb5"),
	Green:    lipgloss.Color("#40a02b"),
	Peach:    lipgloss.Color("#fe640b"),
	Red:      lipgloss.Color("#d20f39"),
}

type Styles struct {
	Palette Palette

	App    lipgloss.Style
	Bar    lipgloss.Style
	Pane   lipgloss.Style
	Popup  lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Hot    lipgloss.Style
	Done   lipgloss.Style
	Failed lipgloss.Style
}

// For picks Mocha when dark is set and Latte otherwise.
func For(dark bool) Styles {
	if dark {
		return New(Mocha)
	}
	return New(Latte)
}

func New(p Palette) Styles {
	pane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Foreground(p.Text).
		Padding(0, 1)
	return Styles{
		Palette: p,
		App:     lipgloss.NewStyle().Background(p.Base).Foreground(p.Text),
		Bar:     lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text),
		Pane:    pane,
		Popup:   pane.BorderForeground(p.Peach).Background(p.Mantle).Padding(1, 2),
		Title:   lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Subtext0),
		Hot:     lipgloss.NewStyle().Foreground(p.Peach).Bold(true),
		Done:    lipgloss.NewStyle().Foreground(p.Green),
		Failed:  lipgloss.NewStyle().Foreground(p.Red),
	}
}
