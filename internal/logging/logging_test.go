package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDiscard(t *testing.T) {
	logger, err := New(Options{Path: "-"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("dropped")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.log")
	logger, err := New(Options{Path: path, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("section visible")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "section visible") {
		t.Errorf("log file missing debug entry: %q", data)
	}
}
