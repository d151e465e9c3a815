// Package notes renders engineering notes and blog posts as Markdown.
package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/format"
	"github.com/zhaoyu-io/folio/internal/theme"
	"github.com/zhaoyu-io/folio/internal/views"
)

// Renderer renders notes through glamour and caches the result, since
// Markdown rendering is far too slow to repeat every frame.
type Renderer struct {
	width int
	mode  theme.Mode
	key   string
	out   string
	now   func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// View renders the notes section. Output is reused while the notes, width
// and theme are unchanged.
func (r *Renderer) View(notes []content.Note, posts []content.PostSummary, width int, mode theme.Mode, st theme.Styles) string {
	key := cacheKey(notes, posts)
	if r.out != "" && r.width == width && r.mode == mode && r.key == key {
		return r.out
	}

	inner := max(width-4, 24)
	body := views.Heading("05", "Engineering Notes", inner, st.Title, st.Dimmed)
	md, err := r.markdown(notes, posts, inner, mode)
	if err != nil {
		md = st.Dimmed.Render("notes unavailable: " + err.Error())
	}
	body += "\n" + strings.TrimRight(md, "\n")

	r.width, r.mode, r.key = width, mode, key
	r.out = lipgloss.NewStyle().Padding(1, 2).Render(body)
	return r.out
}

func (r *Renderer) markdown(notes []content.Note, posts []content.PostSummary, width int, mode theme.Mode) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(string(mode)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return tr.Render(Markdown(notes, posts, r.now()))
}

// Markdown assembles the section source. Note dates that parse get a
// relative age appended.
func Markdown(notes []content.Note, posts []content.PostSummary, now time.Time) string {
	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintf(&b, "## %s\n\n", n.Title)
		meta := n.Date
		if t, err := format.ParseDate(n.Date); err == nil {
			meta += " (" + format.RelativeTime(t, now) + ")"
		}
		if len(n.Tags) > 0 {
			meta += " · " + strings.Join(n.Tags, ", ")
		}
		fmt.Fprintf(&b, "*%s*\n\n", meta)
		for _, p := range n.Content {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
	}
	if len(posts) > 0 {
		b.WriteString("## Blog\n\n")
		for _, p := range posts {
			date := p.Date
			if t, err := format.ParseDate(p.Date); err == nil {
				date = format.Date(t, format.DateShort)
			}
			fmt.Fprintf(&b, "- **%s** %s\n", format.Truncate(p.Title, 60, "..."), date)
		}
	}
	return b.String()
}

func cacheKey(notes []content.Note, posts []content.PostSummary) string {
	var b strings.Builder
	for _, n := range notes {
		b.WriteString(n.Title)
		b.WriteString(n.Date)
		for _, p := range n.Content {
			b.WriteString(p)
		}
	}
	for _, p := range posts {
		b.WriteString(p.Slug)
		b.WriteString(p.Title)
	}
	return b.String()
}
