package notes

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/theme"
)

var now = time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

func TestMarkdown(t *testing.T) {
	notes := []content.Note{{
		Title:   "Streaming UIs",
		Date:    "Feb 2026",
		Tags:    []string{"SSE", "60fps"},
		Content: []string{"First **bold** paragraph."},
	}}
	posts := []content.PostSummary{{Slug: "hello", Title: "Hello", Date: "2026-03-04"}}

	md := Markdown(notes, posts, now)
	for _, want := range []string{
		"## Streaming UIs",
		"*Feb 2026 (8 months ago) · SSE, 60fps*",
		"First **bold** paragraph.",
		"## Blog",
		"- **Hello** Mar 4, 2026",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownUnparsableDate(t *testing.T) {
	md := Markdown([]content.Note{{Title: "T", Date: "someday"}}, nil, now)
	if !strings.Contains(md, "*someday*") {
		t.Errorf("raw date expected:\n%s", md)
	}
	if strings.Contains(md, "## Blog") {
		t.Error("blog heading without posts")
	}
}

func TestRendererCaches(t *testing.T) {
	r := NewRenderer()
	r.now = func() time.Time { return now }
	notes := content.Default().Notes
	st := theme.For(theme.ModeDark)

	first := r.View(notes, nil, 80, theme.ModeDark, st)
	plain := ansi.Strip(first)
	if !strings.Contains(plain, "05 Engineering Notes") {
		t.Errorf("heading missing:\n%s", plain)
	}
	if !strings.Contains(plain, "reconciliation") {
		t.Errorf("note body missing:\n%s", plain)
	}

	r.now = func() time.Time { panic("cache miss re-rendered markdown") }
	if again := r.View(notes, nil, 80, theme.ModeDark, st); again != first {
		t.Error("unchanged input should reuse the cached render")
	}
}
