// Package theme provides the Lip Gloss palettes and reusable styles for the
// terminal client. It is a leaf package with no internal imports to avoid
// import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one color scheme.
type Palette struct {
	Bg      lipgloss.Color
	Surface lipgloss.Color
	Text    lipgloss.Color
	Dimmed  lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Accent2 lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
}

var Light = Palette{
	Bg:      lipgloss.Color("#ffffff"),
	Surface: lipgloss.Color("#f3f4f6"),
	Text:    lipgloss.Color("#111827"),
	Dimmed:  lipgloss.Color("#6b7280"),
	Border:  lipgloss.Color("#d1d5db"),
	Accent:  lipgloss.Color("#2563eb"),
	Accent2: lipgloss.Color("#7c3aed"),
	Success: lipgloss.Color("#16a34a"),
	Warning: lipgloss.Color("#d97706"),
	Danger:  lipgloss.Color("#dc2626"),
}

var Dark = Palette{
	Bg:      lipgloss.Color("#111827"),
	Surface: lipgloss.Color("#1f2937"),
	Text:    lipgloss.Color("#f9fafb"),
	Dimmed:  lipgloss.Color("#9ca3af"),
	Border:  lipgloss.Color("#4b5563"),
	Accent:  lipgloss.Color("#3b82f6"),
	Accent2: lipgloss.Color("#a855f7"),
	Success: lipgloss.Color("#22c55e"),
	Warning: lipgloss.Color("#f59e0b"),
	Danger:  lipgloss.Color("#ef4444"),
}

// Styles are the reusable styles derived from a palette.
type Styles struct {
	Palette Palette

	Border      lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
	Dimmed      lipgloss.Style
	Accent      lipgloss.Style
	Selected    lipgloss.Style
	Tag         lipgloss.Style
	Nav         lipgloss.Style
	NavScrolled lipgloss.Style
	Card        lipgloss.Style
}

// NewStyles builds the style set for p.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Dimmed: lipgloss.NewStyle().
			Foreground(p.Dimmed),
		Accent: lipgloss.NewStyle().
			Foreground(p.Accent2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Tag: lipgloss.NewStyle().
			Foreground(p.Accent).
			Background(p.Surface).
			Padding(0, 1),
		Nav: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),
		NavScrolled: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
	}
}

// For returns the styles for mode.
func For(mode Mode) Styles {
	if mode == ModeDark {
		return NewStyles(Dark)
	}
	return NewStyles(Light)
}

// LevelColor returns the bar color for a skill level in [0,1].
func (p Palette) LevelColor(level float64) lipgloss.Color {
	switch {
	case level >= 0.8:
		return p.Success
	case level >= 0.5:
		return p.Accent
	default:
		return p.Warning
	}
}
