// Package projects renders the work section. Each project card ends in a
// small architecture strip that is drawn progressively.
package projects

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/format"
	"github.com/zhaoyu-io/folio/internal/theme"
	"github.com/zhaoyu-io/folio/internal/views"
)

// View renders every project. draw[i] in [0,1] is how much of project i's
// diagram is drawn. It also returns the row at which each card starts.
func View(ps []content.Project, draw []float64, width int, st theme.Styles) (string, []int) {
	inner := max(width-4, 24)
	parts := []string{views.Heading("03", "Selected Work", inner, st.Title, st.Dimmed)}
	tops := make([]int, len(ps))
	row := 1 + views.Height(parts[0]) // top padding + heading

	for i, p := range ps {
		var d float64
		if i < len(draw) {
			d = draw[i]
		}
		c := card(p, d, inner, st)
		row++ // blank separator
		tops[i] = row
		parts = append(parts, "", c)
		row += views.Height(c)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(parts, "\n")), tops
}

func card(p content.Project, draw float64, width int, st theme.Styles) string {
	textWidth := max(width-4, 16)
	lines := []string{st.Header.Render(p.Title)}
	if p.Image != "" {
		lines = append(lines, st.Dimmed.Render("["+format.KebabToTitle(p.Image)+"]"))
	}
	lines = append(lines, "", lipgloss.NewStyle().Width(textWidth).Render(p.Description), "")

	if len(p.Metrics) > 0 {
		ms := make([]string, len(p.Metrics))
		for i, m := range p.Metrics {
			ms[i] = st.Selected.Render(m.Value) + " " + st.Dimmed.Render(m.Label)
		}
		lines = append(lines, strings.Join(ms, "   "))
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = st.Tag.Render(t)
		}
		lines = append(lines, lipgloss.NewStyle().Width(textWidth).Render(strings.Join(tags, " ")))
	}
	if p.Diagram != "" {
		lines = append(lines, "", st.Accent.Render(Diagram(p, draw, textWidth)))
	}
	return st.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Diagram draws the project's stack as a left-to-right pipeline, revealing
// progress of it. The blank remainder keeps the width stable.
func Diagram(p content.Project, progress float64, width int) string {
	nodes := make([]string, 0, len(p.Tags)+1)
	nodes = append(nodes, format.KebabToTitle(p.Diagram))
	nodes = append(nodes, p.Tags...)
	for i, n := range nodes {
		nodes[i] = "[" + n + "]"
	}
	full := ansi.Truncate(strings.Join(nodes, "──▶"), width, "…")

	runes := []rune(full)
	progress = min(max(progress, 0), 1)
	shown := int(progress*float64(len(runes)) + 0.5)
	return string(runes[:shown]) + strings.Repeat(" ", len(runes)-shown)
}
