package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func never() bool  { return false }
func always() bool { return true }

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", ModeLight, true},
		{" Dark\n", ModeDark, true},
		{"sepia", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStoreInitialMode(t *testing.T) {
	dir := t.TempDir()
	stored := filepath.Join(dir, "theme")
	if err := os.WriteFile(stored, []byte("dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	garbage := filepath.Join(dir, "garbage")
	if err := os.WriteFile(garbage, []byte("sepia"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		detect func() bool
		want   Mode
	}{
		{"stored choice wins", stored, never, ModeDark},
		{"missing file falls back to terminal", filepath.Join(dir, "none"), always, ModeDark},
		{"unparsable file falls back", garbage, never, ModeLight},
		{"no persistence", "", never, ModeLight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewStore(tt.path, tt.detect).Mode(); got != tt.want {
				t.Errorf("Mode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStoreTogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme")
	s := NewStore(path, never)

	var seen []Mode
	s.Subscribe(func(m Mode) { seen = append(seen, m) })

	m, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if m != ModeDark {
		t.Errorf("Toggle() = %q, want dark", m)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read persisted theme: %v", err)
	}
	if string(data) != "dark\n" {
		t.Errorf("persisted %q, want %q", data, "dark\n")
	}

	if _, err := s.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(seen) != 3 || seen[0] != ModeLight || seen[1] != ModeDark || seen[2] != ModeLight {
		t.Errorf("subscriber saw %v", seen)
	}
	if got := NewStore(path, always).Mode(); got != ModeLight {
		t.Errorf("reloaded Mode() = %q, want light", got)
	}
}

func TestStoreSetRejectsUnknown(t *testing.T) {
	s := NewStore("", never)
	if err := s.Set("sepia"); err == nil {
		t.Error("Set(sepia) should fail")
	}
	if s.Mode() != ModeLight {
		t.Errorf("Mode() = %q after rejected Set", s.Mode())
	}
}

func TestStoreSetSameModeIsQuiet(t *testing.T) {
	s := NewStore("", never)
	calls := 0
	unsub := s.Subscribe(func(Mode) { calls++ })
	if err := s.Set(ModeLight); err != nil {
		t.Fatal(err)
	}
	unsub()
	if err := s.Set(ModeDark); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}
}

func TestStoreInitPicksUpExternalChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	s := NewStore(path, never)
	if err := os.WriteFile(path, []byte("dark"), 0o644); err != nil {
		t.Fatal(err)
	}
	s.Init()
	if s.Mode() != ModeDark {
		t.Errorf("Mode() = %q after Init, want dark", s.Mode())
	}
}

func TestForAndLevelColor(t *testing.T) {
	if For(ModeDark).Palette != Dark {
		t.Error("For(dark) should use the dark palette")
	}
	if For(ModeLight).Palette != Light {
		t.Error("For(light) should use the light palette")
	}
	if Dark.LevelColor(0.9) != Dark.Success {
		t.Error("high level should use success color")
	}
	if Dark.LevelColor(0.6) != Dark.Accent {
		t.Error("mid level should use accent color")
	}
	if Dark.LevelColor(0.2) != Dark.Warning {
		t.Error("low level should use warning color")
	}
}
