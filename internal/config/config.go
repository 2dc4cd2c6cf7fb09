// Package config handles loading the dmguide configuration file.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/dmguide/config.yaml
//
// The file is optional. Every field has a default, and command-line flags
// override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dmguide/internal/model"
)

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	StartSection string `yaml:"start_section,omitempty"` // overview, algorithms, flashcards, formulas, tips
	DarkMode     bool   `yaml:"dark_mode,omitempty"`     // Start in dark mode
	WordWrap     int    `yaml:"word_wrap,omitempty"`     // Max text width; 0 fits the terminal
}

// WebConfig holds settings for --web.
type WebConfig struct {
	Addr string `yaml:"addr,omitempty"` // host:port to listen on
}

// Config is the top-level configuration.
type Config struct {
	UI  UIConfig  `yaml:"ui,omitempty"`
	Web WebConfig `yaml:"web,omitempty"`
}

// DefaultConfig returns a Config with the defaults of a fresh session.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			StartSection: string(model.SectionOverview),
		},
		Web: WebConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// ConfigDir returns the XDG config directory for dmguide.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "dmguide")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dmguide")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file at path over the defaults. An empty path means
// ConfigPath. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that yaml cannot.
func (c Config) Validate() error {
	if c.UI.StartSection != "" {
		if _, err := model.ParseSection(c.UI.StartSection); err != nil {
			return fmt.Errorf("ui.start_section: %w", err)
		}
	}
	if c.UI.WordWrap < 0 {
		return fmt.Errorf("ui.word_wrap: must not be negative, got %d", c.UI.WordWrap)
	}
	if c.Web.Addr == "" {
		return errors.New("web.addr: must not be empty")
	}
	return nil
}

// StartSection returns the parsed start section, overview when unset. Call
// Validate first.
func (c Config) StartSection() model.Section {
	s, err := model.ParseSection(c.UI.StartSection)
	if err != nil {
		return model.SectionOverview
	}
	return s
}
