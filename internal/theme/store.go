package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the selected color scheme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts "light" or "dark", ignoring case and whitespace.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, true
	case ModeDark:
		return ModeDark, true
	}
	return "", false
}

// DefaultPath is $XDG_CONFIG_HOME/folio/theme or its platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio", "theme"), nil
}

// Store keeps the active mode, persisted to a small file. A stored choice
// wins over the terminal's background; with neither the mode is light.
type Store struct {
	mu         sync.Mutex
	path       string
	detectDark func() bool
	mode       Mode
	nextID     int
	subs       map[int]func(Mode)
}

// NewStore reads the initial mode. An empty path disables persistence.
// detectDark may be nil to use the terminal's reported background.
func NewStore(path string, detectDark func() bool) *Store {
	if detectDark == nil {
		detectDark = lipgloss.HasDarkBackground
	}
	s := &Store{
		path:       path,
		detectDark: detectDark,
		subs:       make(map[int]func(Mode)),
	}
	s.mode = s.initial()
	return s
}

func (s *Store) initial() Mode {
	if s.path != "" {
		if data, err := os.ReadFile(s.path); err == nil {
			if m, ok := ParseMode(string(data)); ok {
				return m
			}
		}
	}
	if s.detectDark() {
		return ModeDark
	}
	return ModeLight
}

// Mode returns the active mode.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Init re-reads the persisted choice and notifies subscribers when it
// differs from the active mode.
func (s *Store) Init() {
	s.mu.Lock()
	m := s.initial()
	s.mu.Unlock()
	s.apply(m)
}

// Toggle flips between light and dark and persists the result.
func (s *Store) Toggle() (Mode, error) {
	s.mu.Lock()
	next := ModeDark
	if s.mode == ModeDark {
		next = ModeLight
	}
	s.mu.Unlock()
	return next, s.Set(next)
}

// Set makes m active and persists it. The in-memory mode changes even when
// writing the file fails.
func (s *Store) Set(m Mode) error {
	if m != ModeLight && m != ModeDark {
		return fmt.Errorf("unknown theme %q", m)
	}
	err := s.persist(m)
	s.apply(m)
	return err
}

// Subscribe calls fn with the active mode now and on every change.
func (s *Store) Subscribe(fn func(Mode)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	m := s.mode
	s.mu.Unlock()
	fn(m)
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) apply(m Mode) {
	s.mu.Lock()
	if s.mode == m {
		s.mu.Unlock()
		return
	}
	s.mode = m
	subs := make([]func(Mode), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(m)
	}
}

func (s *Store) persist(m Mode) error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create theme dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(string(m)+"\n"), 0o644); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
