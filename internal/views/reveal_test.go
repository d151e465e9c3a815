package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/anim"
)

func TestRevealKeepsHeight(t *testing.T) {
	block := "one\ntwo\nthree\nfour"
	e := anim.NewEntrance(60, 2)

	hidden := Reveal(block, e)
	if Height(hidden) != 4 {
		t.Errorf("hidden height = %d, want 4", Height(hidden))
	}
	if strings.TrimSpace(hidden) != "" {
		t.Errorf("hidden block should be blank, got %q", hidden)
	}

	e.Show()
	entering := Reveal(block, e)
	if entering != "\n\none\ntwo" {
		t.Errorf("entering block = %q", entering)
	}

	for e.Update() {
	}
	if got := Reveal(block, e); got != block {
		t.Errorf("settled block = %q, want original", got)
	}
}

func TestRevealNilEntrance(t *testing.T) {
	if got := Reveal("a\nb", nil); got != "a\nb" {
		t.Errorf("Reveal(nil) = %q", got)
	}
}

func TestHeading(t *testing.T) {
	plain := lipgloss.NewStyle()
	got := Heading("02", "Skills", 5, plain, plain)
	if got != "02 Skills\n─────" {
		t.Errorf("Heading = %q", got)
	}
}
