package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  host: "127.0.0.1"
content:
  path: /srv/folio/content.yaml
  watch: false
animation:
  breakpoint: 640
  scroll_past_threshold: 120
  desktop:
    threshold: 0.3
    root_margin: "0px 0px -80px 0px"
    debounce: 20ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.Content.Watch {
		t.Error("Content.Watch = true, want false")
	}
	if cfg.Animation.Breakpoint != 640 {
		t.Errorf("Animation.Breakpoint = %v, want 640", cfg.Animation.Breakpoint)
	}
	if cfg.Animation.ScrollPastThreshold != 120 {
		t.Errorf("Animation.ScrollPastThreshold = %v, want 120", cfg.Animation.ScrollPastThreshold)
	}
	if cfg.Animation.Desktop.Debounce != 20*time.Millisecond {
		t.Errorf("Desktop.Debounce = %v, want 20ms", cfg.Animation.Desktop.Debounce)
	}

	// Defaults should still be applied for unspecified fields.
	if cfg.Animation.Mobile.Threshold != 0.1 {
		t.Errorf("Mobile.Threshold = %v, want default 0.1", cfg.Animation.Mobile.Threshold)
	}
	if cfg.Animation.NavScrollThreshold != 20 {
		t.Errorf("NavScrollThreshold = %v, want default 20", cfg.Animation.NavScrollThreshold)
	}
	if cfg.Content.ReloadThrottle != 250*time.Millisecond {
		t.Errorf("ReloadThrottle = %v, want default", cfg.Content.ReloadThrottle)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("Load() on missing file should return error")
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Server.MaxConnections != 256 || cfg.Server.BroadcastThrottle != 100*time.Millisecond {
		t.Errorf("Server limits = %d, %v", cfg.Server.MaxConnections, cfg.Server.BroadcastThrottle)
	}
	if cfg.Animation.Desktop.RootMargin != "0px 0px -50px 0px" {
		t.Errorf("Desktop.RootMargin = %q", cfg.Animation.Desktop.RootMargin)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "server: [unclosed"},
		{"bad port", "server:\n  port: 70000\n"},
		{"bad threshold", "animation:\n  mobile:\n    threshold: 2\n"},
		{"bad margin", "animation:\n  desktop:\n    root_margin: \"1em\"\n"},
		{"zero breakpoint", "animation:\n  breakpoint: 0\n"},
		{"negative max connections", "server:\n  max_connections: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoadOrDefaultSurfacesParseErrors(t *testing.T) {
	if _, err := LoadOrDefault(writeConfig(t, "server: [")); err == nil {
		t.Fatal("LoadOrDefault() should not hide parse errors")
	}
}
