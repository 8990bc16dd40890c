package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/marcus/designtokens/internal/report"
	"github.com/marcus/designtokens/internal/theme"
)

// Config is the root configuration structure.
type Config struct {
	Tokens   TokensConfig   `json:"tokens"`
	CSS      CSSConfig      `json:"css"`
	JS       JSConfig       `json:"js"`
	Contrast ContrastConfig `json:"contrast"`
	Watch    WatchConfig    `json:"watch"`
}

// TokensConfig configures the token source and resolution.
type TokensConfig struct {
	Input    string   `json:"input"`    // token document path
	Themes   []string `json:"themes"`   // supported theme names, first is the default
	MaxDepth int      `json:"maxDepth"` // alias hop limit, 0 = unbounded
}

// CSSConfig configures the stylesheet output.
type CSSConfig struct {
	Output string `json:"output"`
}

// JSConfig configures the ES module output.
type JSConfig struct {
	Output string `json:"output"`
	// Types is the TypeScript declaration path. Empty disables it.
	Types string `json:"types"`
}

// ContrastConfig configures the accessibility reports.
type ContrastConfig struct {
	// Palette is the group of the resolved tree holding color families.
	Palette            string `json:"palette"`
	ReportDir          string `json:"reportDir"`
	ComprehensiveLimit int    `json:"comprehensiveLimit"`
	// TopPairs is the number of best and worst pairs in the terminal summary.
	TopPairs int `json:"topPairs"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce time.Duration `json:"debounce"`
}

// Report file names inside ContrastConfig.ReportDir.
const (
	AllReportFile       = "contrast-all.json"
	ValidReportFile     = "contrast-valid.json"
	ForbiddenReportFile = "contrast-forbidden.json"
)

const defaultDebounce = 200 * time.Millisecond

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Tokens: TokensConfig{
			Input:  "tokens/tokens.json",
			Themes: []string{theme.DefaultTheme},
		},
		CSS: CSSConfig{
			Output: "dist/tokens.css",
		},
		JS: JSConfig{
			Output: "dist/tokens.js",
			Types:  "dist/tokens.d.ts",
		},
		Contrast: ContrastConfig{
			Palette:            "colors",
			ReportDir:          "reports",
			ComprehensiveLimit: report.DefaultComprehensiveLimit,
			TopPairs:           report.DefaultTopPairs,
		},
		Watch: WatchConfig{
			Debounce: defaultDebounce,
		},
	}
}

// Validate checks the configuration for errors and repairs values that have
// a safe default.
func (c *Config) Validate() error {
	if c.Tokens.Input == "" {
		return errors.New("tokens.input must not be empty")
	}
	if c.CSS.Output == "" || c.JS.Output == "" {
		return errors.New("css.output and js.output must not be empty")
	}
	if c.Tokens.MaxDepth < 0 {
		return fmt.Errorf("tokens.maxDepth must not be negative, got %d", c.Tokens.MaxDepth)
	}
	if len(c.Tokens.Themes) == 0 {
		c.Tokens.Themes = []string{theme.DefaultTheme}
	}
	if c.Contrast.Palette == "" {
		c.Contrast.Palette = "colors"
	}
	if c.Contrast.ReportDir == "" {
		c.Contrast.ReportDir = "reports"
	}
	if c.Contrast.TopPairs <= 0 {
		c.Contrast.TopPairs = report.DefaultTopPairs
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = defaultDebounce
	}
	return nil
}
