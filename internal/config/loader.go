package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "designtokens.json"

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Tokens   rawTokensConfig   `json:"tokens"`
	CSS      CSSConfig         `json:"css"`
	JS       rawJSConfig       `json:"js"`
	Contrast rawContrastConfig `json:"contrast"`
	Watch    rawWatchConfig    `json:"watch"`
}

type rawTokensConfig struct {
	Input    string   `json:"input"`
	Themes   []string `json:"themes"`
	MaxDepth *int     `json:"maxDepth"`
}

type rawJSConfig struct {
	Output string  `json:"output"`
	Types  *string `json:"types"`
}

type rawContrastConfig struct {
	Palette            string `json:"palette"`
	ReportDir          string `json:"reportDir"`
	ComprehensiveLimit *int   `json:"comprehensiveLimit"`
	TopPairs           *int   `json:"topPairs"`
}

type rawWatchConfig struct {
	Debounce string `json:"debounce"`
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses DefaultPath. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := mergeConfig(cfg, &raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.Tokens.Input = ExpandPath(cfg.Tokens.Input)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) error {
	// Tokens
	if raw.Tokens.Input != "" {
		cfg.Tokens.Input = raw.Tokens.Input
	}
	if len(raw.Tokens.Themes) > 0 {
		cfg.Tokens.Themes = append([]string(nil), raw.Tokens.Themes...)
	}
	if raw.Tokens.MaxDepth != nil {
		cfg.Tokens.MaxDepth = *raw.Tokens.MaxDepth
	}

	// Outputs
	if raw.CSS.Output != "" {
		cfg.CSS.Output = raw.CSS.Output
	}
	if raw.JS.Output != "" {
		cfg.JS.Output = raw.JS.Output
	}
	if raw.JS.Types != nil {
		cfg.JS.Types = *raw.JS.Types
	}

	// Contrast
	if raw.Contrast.Palette != "" {
		cfg.Contrast.Palette = raw.Contrast.Palette
	}
	if raw.Contrast.ReportDir != "" {
		cfg.Contrast.ReportDir = raw.Contrast.ReportDir
	}
	if raw.Contrast.ComprehensiveLimit != nil {
		cfg.Contrast.ComprehensiveLimit = *raw.Contrast.ComprehensiveLimit
	}
	if raw.Contrast.TopPairs != nil {
		cfg.Contrast.TopPairs = *raw.Contrast.TopPairs
	}

	// Watch
	if raw.Watch.Debounce != "" {
		d, err := time.ParseDuration(raw.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("watch.debounce: %w", err)
		}
		cfg.Watch.Debounce = d
	}
	return nil
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ReportPaths returns the all, valid and forbidden report file paths.
func (c *Config) ReportPaths() (all, valid, forbidden string) {
	dir := c.Contrast.ReportDir
	return filepath.Join(dir, AllReportFile),
		filepath.Join(dir, ValidReportFile),
		filepath.Join(dir, ForbiddenReportFile)
}
