package navbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/theme"
)

func links() []Link {
	return []Link{{"1", "Intro"}, {"2", "Skills"}, {"3", "Projects"}}
}

func TestView(t *testing.T) {
	st := theme.For(theme.ModeDark)
	m := Model{Name: "Zhao Yu", Links: links(), Active: 1, Mode: theme.ModeDark, Conn: ConnLive, Version: 7, Width: 100}

	out := m.View(st)
	if got := lipgloss.Height(out); got != 1 {
		t.Errorf("navbar should be one row, got %d", got)
	}
	if got := ansi.StringWidth(out); got != 100 {
		t.Errorf("navbar width = %d, want 100", got)
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Zhao Yu", "1 Intro", "2 Skills", "3 Projects", "☾", "● live v7"} {
		if !strings.Contains(plain, want) {
			t.Errorf("navbar missing %q: %q", want, plain)
		}
	}
}

func TestConnStates(t *testing.T) {
	st := theme.For(theme.ModeLight)
	cases := map[Conn]string{
		ConnOffline:    "offline",
		ConnConnecting: "○ connecting",
	}
	for conn, want := range cases {
		m := Model{Name: "x", Mode: theme.ModeLight, Conn: conn, Active: -1, Width: 60}
		plain := ansi.Strip(m.View(st))
		if !strings.Contains(plain, want) {
			t.Errorf("conn %d: missing %q in %q", conn, want, plain)
		}
		if !strings.Contains(plain, "☀") {
			t.Errorf("light mode icon missing in %q", plain)
		}
	}
}

func TestScrolledKeepsLayout(t *testing.T) {
	st := theme.For(theme.ModeLight)
	m := Model{Name: "x", Links: links(), Active: -1, Width: 60}
	flat := ansi.Strip(m.View(st))
	m.Scrolled = true
	if got := ansi.Strip(m.View(st)); got != flat {
		t.Errorf("scrolled bar changed layout:\n%q\n%q", flat, got)
	}
}
