// Package skills renders the skills chart with animated bars.
package skills

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
	"github.com/zhaoyu-io/folio/internal/views"
)

const (
	labelWidth = 18
	minBar     = 10
)

// View renders the chart. fill[i] is how far bar i has grown, from 0 to
// the skill's value as a fraction of 100. Missing entries draw empty bars.
func View(s content.Skills, fill []float64, width int, st theme.Styles) string {
	inner := max(width-4, labelWidth+minBar+6)
	barWidth := inner - labelWidth - 6

	lines := []string{views.Heading("02", "Skills", inner, st.Title, st.Dimmed), ""}
	for i, sk := range s.Skills {
		var f float64
		if i < len(fill) {
			f = fill[i]
		}
		lines = append(lines, row(sk, f, barWidth, st))
	}
	lines = append(lines, "", stats(s.Stats, st))
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}

func row(sk content.Skill, fill float64, barWidth int, st theme.Styles) string {
	filled := int(fill*float64(barWidth) + 0.5)
	filled = min(max(filled, 0), barWidth)

	goal := -1
	if sk.Goal > sk.Value {
		goal = min(sk.Goal*barWidth/100, barWidth-1)
	}

	var bar strings.Builder
	fillStyle := lipgloss.NewStyle().Foreground(st.Palette.LevelColor(float64(sk.Value) / 100))
	bar.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
	for i := filled; i < barWidth; i++ {
		if i == goal {
			bar.WriteString(st.Accent.Render("│"))
		} else {
			bar.WriteString(st.Dimmed.Render("░"))
		}
	}

	label := lipgloss.NewStyle().Width(labelWidth).Foreground(st.Palette.Text).Render(sk.Name)
	pct := st.Dimmed.Render(fmt.Sprintf("%3d%%", int(fill*100+0.5)))
	return label + bar.String() + "  " + pct
}

func stats(s content.Stats, st theme.Styles) string {
	items := []struct{ value, label string }{
		{s.YearsExp, "years"},
		{s.Lighthouse, "lighthouse"},
		{s.HalfMarathon, "half marathon"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.value == "" {
			continue
		}
		parts = append(parts, st.Header.Render(it.value)+" "+st.Dimmed.Render(it.label))
	}
	return strings.Join(parts, "   ")
}

// Targets returns each bar's final fill fraction.
func Targets(s content.Skills) []float64 {
	out := make([]float64, len(s.Skills))
	for i, sk := range s.Skills {
		out[i] = float64(min(max(sk.Value, 0), 100)) / 100
	}
	return out
}
