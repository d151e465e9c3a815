// Package career renders the companies strip.
package career

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
	"github.com/zhaoyu-io/folio/internal/views"
)

func View(e content.Experience, width int, st theme.Styles) string {
	inner := max(width-4, 20)
	names := make([]string, len(e.Companies))
	for i, c := range e.Companies {
		names[i] = st.Header.Render(c)
	}
	strip := lipgloss.NewStyle().Width(inner).Render(strings.Join(names, st.Dimmed.Render("  ◆  ")))
	body := views.Heading("04", "Career", inner, st.Title, st.Dimmed) + "\n\n" + strip
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
