// Package navbar renders the top navigation bar.
package navbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/theme"
)

// Link is a numbered section shortcut.
type Link struct {
	Key   string
	Label string
}

// Conn is the live content feed state.
type Conn int

const (
	ConnOffline Conn = iota
	ConnConnecting
	ConnLive
)

// Model holds navbar state.
type Model struct {
	Name     string
	Links    []Link
	Active   int // index into Links, -1 for none
	Scrolled bool
	Mode     theme.Mode
	Conn     Conn
	Version  uint64
	Width    int
}

// View renders the bar as a single row.
func (m Model) View(st theme.Styles) string {
	width := max(m.Width, 40)

	links := make([]string, len(m.Links))
	for i, l := range m.Links {
		label := st.Dimmed.Render(l.Key) + " " + l.Label
		if i == m.Active {
			label = st.Selected.Render(l.Key + " " + l.Label)
		}
		links[i] = label
	}

	left := st.Title.Render(m.Name) + "  " + strings.Join(links, "  ")
	right := m.themeIcon() + "  " + m.connView(st)

	gap := max(width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	row := left + strings.Repeat(" ", gap) + right

	style := st.Nav
	if m.Scrolled {
		style = st.NavScrolled
	}
	return style.Width(width).MaxHeight(1).Render(row)
}

func (m Model) themeIcon() string {
	if m.Mode == theme.ModeDark {
		return "☾"
	}
	return "☀"
}

func (m Model) connView(st theme.Styles) string {
	switch m.Conn {
	case ConnLive:
		return lipgloss.NewStyle().Foreground(st.Palette.Success).Render(fmt.Sprintf("● live v%d", m.Version))
	case ConnConnecting:
		return lipgloss.NewStyle().Foreground(st.Palette.Warning).Render("○ connecting")
	default:
		return st.Dimmed.Render("offline")
	}
}
