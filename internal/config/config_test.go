package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dmguide/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.StartSection() != model.SectionOverview {
		t.Errorf("Expected overview, got %q", cfg.StartSection())
	}
	if cfg.UI.DarkMode {
		t.Error("Expected light mode by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected missing file to be fine, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
ui:
  start_section: Flashcards
  dark_mode: true
  word_wrap: 72
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.StartSection() != model.SectionFlashcards {
		t.Errorf("Expected flashcards, got %q", cfg.StartSection())
	}
	if !cfg.UI.DarkMode || cfg.UI.WordWrap != 72 {
		t.Errorf("Unexpected UI config %+v", cfg.UI)
	}
	if cfg.Web.Addr != "127.0.0.1:8080" {
		t.Errorf("Expected default web addr to survive, got %q", cfg.Web.Addr)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{"ui:\n  start_section: history\n", "ui.start_section"},
		{"ui:\n  word_wrap: -3\n", "ui.word_wrap"},
		{"web:\n  addr: \"\"\n", "web.addr"},
		{"ui: [not, a, map]\n", "parsing config"},
	}
	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("Load(%q) error = %v, want mention of %q", tt.body, err, tt.want)
		}
	}
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "dmguide") {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := ConfigPath(); got != filepath.Join("/tmp/xdg", "dmguide", "config.yaml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestEmptyStartSectionFallsBack(t *testing.T) {
	path := writeConfig(t, "ui:\n  start_section: \"\"\n  dark_mode: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected empty start_section to load, got %v", err)
	}
	if cfg.StartSection() != model.SectionOverview {
		t.Errorf("Expected overview, got %q", cfg.StartSection())
	}
	if !cfg.UI.DarkMode {
		t.Error("Expected dark_mode from file")
	}
}
