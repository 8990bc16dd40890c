package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Tokens   saveTokensConfig `json:"tokens"`
	CSS      CSSConfig        `json:"css"`
	JS       JSConfig         `json:"js"`
	Contrast ContrastConfig   `json:"contrast"`
	Watch    saveWatchConfig  `json:"watch"`
}

type saveTokensConfig struct {
	Input    string   `json:"input"`
	Themes   []string `json:"themes,omitempty"`
	MaxDepth int      `json:"maxDepth,omitempty"`
}

type saveWatchConfig struct {
	Debounce string `json:"debounce,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Tokens: saveTokensConfig{
			Input:    cfg.Tokens.Input,
			Themes:   cfg.Tokens.Themes,
			MaxDepth: cfg.Tokens.MaxDepth,
		},
		CSS:      cfg.CSS,
		JS:       cfg.JS,
		Contrast: cfg.Contrast,
		Watch: saveWatchConfig{
			Debounce: cfg.Watch.Debounce.String(),
		},
	}
}

// Save writes cfg to path, or DefaultPath when path is empty. Top-level keys
// of an existing file that Config does not manage are kept.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath
	}

	merged := make(map[string]json.RawMessage)
	if existing, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return fmt.Errorf("parse existing config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
