package hero

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
)

func TestView(t *testing.T) {
	c := content.Default()
	out := ansi.Strip(View(c.Hero, c.Profile, 80, theme.For(theme.ModeDark)))

	for _, want := range []string{
		c.Hero.Badge,
		c.Hero.Headline.Primary,
		c.Hero.Headline.Accent,
		c.Hero.CTA.Primary,
		"Low Latency · Type Safe · Deep Focus",
		c.Profile.Email,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("hero view missing %q", want)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) > 80 {
			t.Errorf("line wider than 80 columns: %q", line)
		}
	}
}
