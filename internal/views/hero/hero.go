// Package hero renders the landing section: badge, headline, bio and
// call-to-action row.
package hero

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
)

// View renders the hero for the given width.
func View(h content.Hero, p content.Profile, width int, st theme.Styles) string {
	w := max(width-4, 20)
	var b strings.Builder

	b.WriteString(st.Tag.Render(h.Badge))
	b.WriteString("\n\n")
	b.WriteString(st.Header.Render(h.Headline.Primary))
	b.WriteString("\n")
	b.WriteString(st.Title.Render(h.Headline.Accent))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(w).Foreground(st.Palette.Text).Render(h.Bio))
	b.WriteString("\n\n")

	primary := st.Selected.Render("[ " + h.CTA.Primary + " → ]")
	secondary := st.Dimmed.Render("[ " + h.CTA.Secondary + " ]")
	b.WriteString(primary + "  " + secondary)
	b.WriteString("\n\n")

	motto := make([]string, len(h.Motto))
	for i, m := range h.Motto {
		motto[i] = st.Accent.Render(m)
	}
	b.WriteString(strings.Join(motto, st.Dimmed.Render(" · ")))

	if p.Email != "" {
		b.WriteString("\n")
		b.WriteString(st.Dimmed.Render(p.Email))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
