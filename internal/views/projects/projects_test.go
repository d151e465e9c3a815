package projects

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
)

func TestDiagramProgress(t *testing.T) {
	p := content.Project{Diagram: "edge-arch", Tags: []string{"Go", "Redis"}}
	full := Diagram(p, 1, 80)
	if full != "[Edge Arch]──▶[Go]──▶[Redis]" {
		t.Errorf("Diagram(1) = %q", full)
	}
	if got := Diagram(p, 0, 80); strings.TrimSpace(got) != "" || len([]rune(got)) != len([]rune(full)) {
		t.Errorf("Diagram(0) = %q, want blanks of the same width", got)
	}
	half := Diagram(p, 0.5, 80)
	if !strings.HasPrefix(half, "[Edge") || strings.Contains(half, "Redis") {
		t.Errorf("Diagram(0.5) = %q", half)
	}
	if got := Diagram(p, 1, 12); ansi.StringWidth(got) > 12 {
		t.Errorf("narrow Diagram = %q exceeds width", got)
	}
}

func TestViewCardTops(t *testing.T) {
	ps := content.Default().Projects
	out, tops := View(ps, []float64{1, 0}, 90, theme.For(theme.ModeDark))
	plain := ansi.Strip(out)
	lines := strings.Split(plain, "\n")

	if len(tops) != len(ps) {
		t.Fatalf("tops = %v", tops)
	}
	for i, top := range tops {
		if top >= len(lines) {
			t.Fatalf("top %d beyond block of %d rows", top, len(lines))
		}
		if !strings.Contains(lines[top], "╭") {
			t.Errorf("card %d should start with a border at row %d, got %q", i, top, lines[top])
		}
		if !strings.Contains(lines[top+1], ps[i].Title[:10]) {
			t.Errorf("card %d title not under its top border: %q", i, lines[top+1])
		}
	}
	if !strings.Contains(plain, "[Migration Ui]") {
		t.Error("image caption missing")
	}
	if !strings.Contains(plain, "[Migration Arch]") {
		t.Error("drawn diagram missing")
	}
	if strings.Contains(plain, "[Ai State Machine]") {
		t.Error("undrawn diagram should be blank")
	}
}
