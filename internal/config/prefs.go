package config

// User preferences live in <home>/config.toml, separate from environment
// configuration: prefs are chosen by the reader, env vars by the operator.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for the CLI and the browse view.
type Prefs struct {
	PageSize    int    `toml:"page_size"`
	DefaultMood string `toml:"default_mood"`
	Theme       string `toml:"theme"`
}

const (
	defaultPageSize = 20
	defaultMood     = "All"
	defaultTheme    = "sage"
)

// PrefsPath returns the preferences file location under the home dir.
func PrefsPath(homeDir string) string {
	return filepath.Join(homeDir, "config.toml")
}

// LoadPrefs reads preferences from path, falling back to defaults when the
// file is missing or unreadable. Never fails: broken prefs degrade gracefully.
func LoadPrefs(path string) Prefs {
	prefs := Prefs{
		PageSize:    defaultPageSize,
		DefaultMood: defaultMood,
		Theme:       defaultTheme,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			// Unreadable prefs are not worth blocking startup over.
			return prefs
		}
		return prefs
	}

	if err := toml.Unmarshal(raw, &prefs); err != nil {
		return Prefs{PageSize: defaultPageSize, DefaultMood: defaultMood, Theme: defaultTheme}
	}

	if prefs.PageSize <= 0 {
		prefs.PageSize = defaultPageSize
	}
	if strings.TrimSpace(prefs.DefaultMood) == "" {
		prefs.DefaultMood = defaultMood
	}
	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	return prefs
}

// SavePrefs writes preferences to path, creating directories as needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	raw, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
