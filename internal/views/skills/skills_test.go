package skills

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
)

func TestTargets(t *testing.T) {
	got := Targets(content.Skills{Skills: []content.Skill{{Value: 98}, {Value: 45}, {Value: 140}, {Value: -3}}})
	want := []float64{0.98, 0.45, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Targets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestViewBars(t *testing.T) {
	s := content.Skills{Skills: []content.Skill{
		{Name: "Go", Value: 50, Goal: 80},
		{Name: "Rust", Value: 20},
	}}
	out := ansi.Strip(View(s, []float64{0.5}, 60, theme.For(theme.ModeLight)))

	var goLine, rustLine string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Go "):
			goLine = line
		case strings.Contains(line, "Rust"):
			rustLine = line
		}
	}
	if goLine == "" || rustLine == "" {
		t.Fatalf("missing bars in:\n%s", out)
	}
	if !strings.Contains(goLine, "█") || !strings.Contains(goLine, "│") || !strings.Contains(goLine, " 50%") {
		t.Errorf("half-filled bar with goal marker expected, got %q", goLine)
	}
	if strings.Contains(rustLine, "█") || !strings.Contains(rustLine, "  0%") {
		t.Errorf("bar without fill data should be empty, got %q", rustLine)
	}
	if !strings.Contains(out, "02 Skills") {
		t.Error("missing heading")
	}
}
