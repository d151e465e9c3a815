// Package views holds helpers shared by the page sections. Each section
// lives in its own sub-package.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/anim"
)

// Reveal applies an entrance to a rendered block without changing its
// height: a hidden block is blank and an entering block is pushed down by
// the entrance offset, its tail clipped.
func Reveal(block string, e *anim.Entrance) string {
	if e == nil {
		return block
	}
	lines := strings.Split(block, "\n")
	n := len(lines)
	if !e.Shown() {
		return strings.Repeat("\n", n-1)
	}
	off := min(e.Offset(), n)
	out := make([]string, 0, n)
	for i := 0; i < off; i++ {
		out = append(out, "")
	}
	out = append(out, lines[:n-off]...)
	return strings.Join(out, "\n")
}

// Heading renders a numbered section title with a rule under it.
func Heading(index, title string, width int, titleStyle, ruleStyle lipgloss.Style) string {
	head := titleStyle.Render(index + " " + title)
	rule := ruleStyle.Render(strings.Repeat("─", max(width, 1)))
	return head + "\n" + rule
}

// Height counts the rows of a rendered block.
func Height(block string) int {
	return strings.Count(block, "\n") + 1
}
