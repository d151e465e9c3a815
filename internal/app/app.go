package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/zhaoyu-io/folio/internal/anim"
	"github.com/zhaoyu-io/folio/internal/client"
	"github.com/zhaoyu-io/folio/internal/config"
	"github.com/zhaoyu-io/folio/internal/content"
	"github.com/zhaoyu-io/folio/internal/scroll"
	"github.com/zhaoyu-io/folio/internal/theme"
	"github.com/zhaoyu-io/folio/internal/views"
	"github.com/zhaoyu-io/folio/internal/views/career"
	"github.com/zhaoyu-io/folio/internal/views/debug"
	"github.com/zhaoyu-io/folio/internal/views/hero"
	"github.com/zhaoyu-io/folio/internal/views/navbar"
	"github.com/zhaoyu-io/folio/internal/views/notes"
	"github.com/zhaoyu-io/folio/internal/views/projects"
	"github.com/zhaoyu-io/folio/internal/views/skills"
	"github.com/zhaoyu-io/folio/internal/visibility"
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDebug
)

// Section indexes the page sections in document order.
type Section int

const (
	SectionHero Section = iota
	SectionSkills
	SectionProjects
	SectionCareer
	SectionNotes
	sectionCount
)

// sectionIDs are the in-page anchors, as in "/#projects".
var sectionIDs = [sectionCount]string{"hero", "skills", "projects", "career", "notes"}

var navLinks = []navbar.Link{
	{Key: "1", Label: "Intro"},
	{Key: "2", Label: "Skills"},
	{Key: "3", Label: "Work"},
	{Key: "4", Label: "Career"},
	{Key: "5", Label: "Notes"},
}

const (
	barDuration  = 1500 * time.Millisecond
	drawDuration = 1200 * time.Millisecond
)

// section is the per-section state observer callbacks write to. It lives
// behind a pointer so it outlives the Model copies Bubble Tea makes.
type section struct {
	id       string
	block    *visibility.Block
	entrance *anim.Entrance
}

// Options configures the root model. HTTP and WS are nil in offline mode.
type Options struct {
	Content   *content.Content
	HTTP      *client.HTTPClient
	WS        *client.WSClient
	Themes    *theme.Store
	Animation config.AnimationConfig
	Logger    *zap.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	ws     *client.WSClient
	http   *client.HTTPClient
	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
	cfg    config.AnimationConfig

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	overlay  Overlay

	content *content.Content
	version uint64
	conn    navbar.Conn

	// Page geometry and observers.
	loop     *visibility.Loop
	doc      *visibility.Document
	tracker  *visibility.Tracker
	scroll   *scroll.Store
	themes   *theme.Store
	sections [sectionCount]*section
	projects []*visibility.Block
	cleanups []visibility.Cleanup
	mounted  bool
	mobile   bool

	// Animations.
	glide *anim.Glide
	fills []*anim.Fill
	draws []*anim.Fill
	notes *notes.Renderer
	debug *debug.Model

	ticking bool
}

// New creates the root model.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := opts.Content
	if c == nil {
		c = content.Default()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewStore("", nil)
	}
	themes.Init()

	ctx, cancel := context.WithCancel(context.Background())
	loop := visibility.NewLoop()
	doc := visibility.NewDocument()
	rate := fps(opts.Animation)

	m := Model{
		ws:       opts.WS,
		http:     opts.HTTP,
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
		cfg:      opts.Animation,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
		loop:     loop,
		doc:      doc,
		tracker:  visibility.New(doc, doc, loop, opts.Animation.Config, log.Named("visibility")),
		scroll:   scroll.NewStore(loop, opts.Animation.NavScrollThreshold, opts.Animation.NavHysteresis, opts.Animation.NavDebounce),
		themes:   themes,
		glide:    anim.NewGlide(rate),
		notes:    notes.NewRenderer(),
		debug:    debug.New(),
	}
	if m.ws != nil {
		m.conn = navbar.ConnConnecting
	}
	for i := range m.sections {
		m.sections[i] = &section{
			id:       sectionIDs[i],
			block:    doc.Block(sectionIDs[i]),
			entrance: anim.NewEntrance(rate, anim.DefaultRise),
		}
	}

	dbg := m.debug
	m.scroll.SubscribeScrolled(func(scrolled bool) {
		dbg.Addf("nav", "scrolled=%t", scrolled)
	})
	themes.Subscribe(func(mode theme.Mode) {
		dbg.Addf("thm", "theme %s", mode)
	})
	m.setContent(c, 0)
	return m
}

func fps(cfg config.AnimationConfig) int {
	if cfg.FrameInterval <= 0 {
		return 60
	}
	return max(int(1e9/cfg.FrameInterval.Nanoseconds()), 1)
}

type frameMsg struct{}

type contentMsg struct{ snap *content.Snapshot }

type reloadedMsg struct{ version uint64 }

type errMsg struct {
	op  string
	err error
}

// Init fetches live content and connects the feed when a server is set.
func (m Model) Init() tea.Cmd {
	if m.http == nil {
		return nil
	}
	cmds := []tea.Cmd{m.fetchContent()}
	if m.ws != nil {
		cmds = append(cmds, m.ws.Listen(m.ctx))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		cmd := m.startTicking()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay != OverlayNone {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		if m.scrolled() {
			m.glide.Stop()
		}
		tick := m.startTicking()
		return m, tea.Batch(cmd, tick)

	case frameMsg:
		m.ticking = false
		m.step()
		cmd := m.startTicking()
		return m, cmd

	case contentMsg:
		if msg.snap.Version >= m.version && msg.snap.Content != nil {
			m.debug.Addf("ws", "content v%d fetched", msg.snap.Version)
			m.setContent(msg.snap.Content, msg.snap.Version)
		}
		cmd := m.startTicking()
		return m, cmd

	case reloadedMsg:
		m.debug.Addf("ws", "server reloaded content v%d", msg.version)
		return m, nil

	case errMsg:
		m.debug.Addf("err", "%s: %v", msg.op, msg.err)
		m.log.Warn(msg.op+" failed", zap.Error(msg.err))
		return m, nil

	case client.WSConnectedMsg:
		m.conn = navbar.ConnLive
		m.debug.Add("ws", "connected")
		return m, m.ws.ReadLoop()

	case client.WSDisconnectedMsg:
		m.conn = navbar.ConnConnecting
		m.debug.Addf("ws", "disconnected: %v", msg.Err)
		return m, m.ws.Listen(m.ctx)

	case client.WSContentMsg:
		if msg.Payload.Version >= m.version {
			m.debug.Addf("ws", "%s v%d", msg.Type, msg.Payload.Version)
			m.setContent(msg.Payload.Content, msg.Payload.Version)
		}
		tick := m.startTicking()
		return m, tea.Batch(m.ws.ReadLoop(), tick)

	case client.WSErrorMsg:
		m.debug.Add("err", msg.Message)
		return m, m.ws.ReadLoop()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Debug):
			m.overlay = OverlayNone
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Up):
			m.debug.ScrollUp(1)
		case key.Matches(msg, m.keys.Down):
			m.debug.ScrollDown(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Top):
		cmd = m.jumpTo(0)
		return m, cmd

	case key.Matches(msg, m.keys.Section1):
		cmd = m.jumpToSection(SectionHero)
		return m, cmd

	case key.Matches(msg, m.keys.Section2):
		cmd = m.jumpToSection(SectionSkills)
		return m, cmd

	case key.Matches(msg, m.keys.Section3):
		cmd = m.jumpToSection(SectionProjects)
		return m, cmd

	case key.Matches(msg, m.keys.Section4):
		cmd = m.jumpToSection(SectionCareer)
		return m, cmd

	case key.Matches(msg, m.keys.Section5):
		cmd = m.jumpToSection(SectionNotes)
		return m, cmd

	case key.Matches(msg, m.keys.Enter):
		cmd = m.follow("/#projects")
		return m, cmd

	case key.Matches(msg, m.keys.Theme):
		if _, err := m.themes.Toggle(); err != nil {
			m.debug.Addf("err", "save theme: %v", err)
		}
		m.render()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.http == nil {
			m.debug.Add("err", "reload needs a server")
			return m, nil
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.Debug):
		m.overlay = OverlayDebug
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	if m.scrolled() {
		m.glide.Stop()
	}
	tick := m.startTicking()
	return m, tea.Batch(cmd, tick)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	if m.ws != nil {
		m.ws.Close()
	}
	for _, c := range m.cleanups {
		c()
	}
	m.scroll.Close()
	return m, tea.Quit
}

// follow handles an in-page link; anything else is ignored.
func (m *Model) follow(href string) tea.Cmd {
	id, ok := scroll.AnchorTarget(href)
	if !ok {
		return nil
	}
	for i, s := range m.sections {
		if s.id == id {
			return m.jumpToSection(Section(i))
		}
	}
	return nil
}

func (m *Model) jumpToSection(s Section) tea.Cmd {
	m.debug.Addf("nav", "jump to #%s", sectionIDs[s])
	return m.jumpTo(m.sections[s].block.Top())
}

// jumpTo glides the page so row is at the top, clamped to the last page.
func (m *Model) jumpTo(row int) tea.Cmd {
	maxOffset := max(m.viewport.TotalLineCount()-m.viewport.Height, 0)
	m.glide.Start(m.viewport.YOffset, min(max(row, 0), maxOffset))
	return m.startTicking()
}

// scrolled pushes a changed viewport offset into the document and the
// scroll store. It reports whether the offset moved.
func (m *Model) scrolled() bool {
	off := m.viewport.YOffset
	if off == m.doc.Offset() {
		return false
	}
	m.doc.ScrollTo(off)
	m.scroll.Set(float64(off * visibility.CellHeight))
	m.doc.Refresh()
	return true
}

// resize lays the page out for the current window and (re)mounts the
// observers when the viewport class changes.
func (m *Model) resize() {
	m.help.Width = m.width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-1-footer, 1)
	m.doc.SetSize(m.viewport.Width, m.viewport.Height)

	m.render()
	mobile := m.tracker.IsMobileViewport(true)
	if m.mounted && mobile != m.mobile {
		m.debug.Addf("vis", "viewport class changed (mobile=%t), remounting", mobile)
		m.unmount()
	}
	m.mobile = mobile
	if !m.mounted {
		m.mount()
	}
	m.scrolled()
	m.doc.Refresh()
}

// setContent swaps the page copy and rebuilds everything sized by it.
func (m *Model) setContent(c *content.Content, version uint64) {
	m.content = c
	m.version = version

	m.fills = nil
	for _, target := range skills.Targets(c.Skills) {
		f := anim.NewFill(target, barDuration)
		if m.sections[SectionSkills].entrance.Shown() {
			f.Start()
		}
		m.fills = append(m.fills, f)
	}
	m.draws = nil
	m.projects = nil
	for i := range c.Projects {
		m.draws = append(m.draws, anim.NewFill(1, drawDuration))
		m.projects = append(m.projects, m.doc.Block(fmt.Sprintf("project-%d", i)))
	}

	if m.width == 0 {
		return
	}
	m.render()
	if m.mounted {
		m.unmount()
		m.mount()
	}
	m.doc.Refresh()
}

// mount attaches the section observers. Entrance sections reanimate once
// scrolled well past; the tail sections reveal once and stay.
func (m *Model) mount() {
	dbg := m.debug
	for _, s := range []Section{SectionHero, SectionSkills, SectionProjects} {
		sec := m.sections[s]
		onVisible, onPast := func() {}, func() {}
		switch s {
		case SectionSkills:
			fills := m.fills
			onVisible = func() {
				for _, f := range fills {
					f.Start()
				}
			}
			onPast = func() {
				for _, f := range fills {
					f.Reset()
				}
			}
		}
		m.attach(sec.block.Name, func() (visibility.Cleanup, error) {
			return m.tracker.CreateSectionObserver(sec.block, visibility.Handlers{
				OnVisible: func() {
					dbg.Addf("vis", "#%s visible", sec.id)
					sec.entrance.Show()
					onVisible()
				},
				OnScrolledPast: func() {
					dbg.Addf("vis", "#%s scrolled past", sec.id)
					sec.entrance.Hide()
					onPast()
				},
			}, visibility.EnableReanimation())
		})
	}

	for _, s := range []Section{SectionCareer, SectionNotes} {
		sec := m.sections[s]
		m.attach(sec.block.Name, func() (visibility.Cleanup, error) {
			return m.tracker.ObserveSection(sec.block, func() {
				if !sec.entrance.Shown() {
					dbg.Addf("vis", "#%s visible", sec.id)
				}
				sec.entrance.Show()
			})
		})
	}

	for i, b := range m.projects {
		draw := m.draws[i]
		m.attach(b.Name, func() (visibility.Cleanup, error) {
			return m.tracker.ObserveRedraw(b, func() {
				draw.Reset()
				draw.Start()
			})
		})
	}
	m.mounted = true
}

func (m *Model) attach(name string, observe func() (visibility.Cleanup, error)) {
	cleanup, err := observe()
	if err != nil {
		m.debug.Addf("err", "observe %s: %v", name, err)
		m.log.Error("observe failed", zap.String("block", name), zap.Error(err))
		return
	}
	m.cleanups = append(m.cleanups, cleanup)
}

func (m *Model) unmount() {
	for _, c := range m.cleanups {
		c()
	}
	m.cleanups = m.cleanups[:0]
	m.mounted = false
}

// step advances one frame: due timers and frame callbacks first, so
// observer callbacks land before the animations they start are stepped.
func (m *Model) step() {
	dt := m.cfg.FrameInterval
	m.loop.Advance(dt)
	m.loop.Frame()

	if m.glide.Active() {
		m.viewport.SetYOffset(m.glide.Update())
		m.scrolled()
	}
	for _, s := range m.sections {
		s.entrance.Update()
	}
	for _, f := range m.fills {
		f.Update(dt)
	}
	for _, d := range m.draws {
		d.Update(dt)
	}
	m.render()
}

// busy reports whether another frame is needed.
func (m *Model) busy() bool {
	if timers, frames := m.loop.Pending(); timers > 0 || frames > 0 {
		return true
	}
	if m.glide.Active() {
		return true
	}
	for _, s := range m.sections {
		if !s.entrance.Settled() {
			return true
		}
	}
	for _, f := range m.fills {
		if f.Running() {
			return true
		}
	}
	for _, d := range m.draws {
		if d.Running() {
			return true
		}
	}
	return false
}

func (m *Model) startTicking() tea.Cmd {
	if m.ticking || m.width == 0 || !m.busy() {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

// render redraws every section into the viewport and places the section
// blocks. The hero fills at least one screen. Entrances never change a
// block's height, so the layout is stable while animations run.
func (m *Model) render() {
	if m.width == 0 {
		return
	}
	mode := m.themes.Mode()
	st := theme.For(mode)
	c := m.content

	fill := make([]float64, len(m.fills))
	for i, f := range m.fills {
		fill[i] = f.Value()
	}
	draw := make([]float64, len(m.draws))
	for i, d := range m.draws {
		draw[i] = d.Value()
	}
	work, tops := projects.View(c.Projects, draw, m.width, st)

	blocks := [sectionCount]string{
		lipgloss.PlaceVertical(m.viewport.Height, lipgloss.Center, hero.View(c.Hero, c.Profile, m.width, st)),
		skills.View(c.Skills, fill, m.width, st),
		work,
		career.View(c.Experience, m.width, st),
		m.notes.View(c.Notes, c.Summaries(), m.width, mode, st),
	}

	row := 0
	out := make([]string, 0, sectionCount)
	for i, b := range blocks {
		h := views.Height(b)
		m.doc.Place(m.sections[i].block, row, h)
		if Section(i) == SectionProjects {
			m.placeProjects(row, h, tops)
		}
		out = append(out, views.Reveal(b, m.sections[i].entrance))
		row += h
	}
	m.viewport.SetContent(strings.Join(out, "\n"))
}

// placeProjects gives each card its own block so its diagram can redraw
// independently. A card runs until the separator before the next one.
func (m *Model) placeProjects(top, height int, tops []int) {
	for i, b := range m.projects {
		if i >= len(tops) {
			break
		}
		end := height - 1 // bottom padding
		if i+1 < len(tops) {
			end = tops[i+1] - 1
		}
		m.doc.Place(b, top+tops[i], end-tops[i])
	}
}

// activeSection is the last section whose top has reached the viewport.
func (m Model) activeSection() int {
	active := -1
	for i, s := range m.sections {
		if s.block.Top() <= m.viewport.YOffset+1 {
			active = i
		}
	}
	return active
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	st := theme.For(m.themes.Mode())

	bar := navbar.Model{
		Name:     m.content.Profile.Name,
		Links:    navLinks,
		Active:   m.activeSection(),
		Scrolled: m.scroll.Scrolled(),
		Mode:     m.themes.Mode(),
		Conn:     m.conn,
		Version:  m.version,
		Width:    m.width,
	}

	body := m.viewport.View()
	if m.overlay == OverlayDebug {
		panel := m.debug.View(m.width-4, m.viewport.Height, st)
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar.View(st), body, m.help.View(m.keys))
}

func (m Model) fetchContent() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.http.GetContent(m.ctx)
		if err != nil {
			return errMsg{op: "fetch content", err: err}
		}
		return contentMsg{snap: snap}
	}
}

func (m Model) reload() tea.Cmd {
	return func() tea.Msg {
		v, err := m.http.Reload(m.ctx)
		if err != nil {
			return errMsg{op: "reload", err: err}
		}
		return reloadedMsg{version: v}
	}
}
