// Package theme interprets the base/ and theme/<name>/ scopes of a token
// document and builds the CSS selectors for the supported themes.
package theme

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/marcus/designtokens/internal/token"
)

// DefaultTheme is the theme selected when none is configured.
const DefaultTheme = "light"

const (
	basePrefix  = "base/"
	themePrefix = "theme/"
)

// themeNameRegex limits theme names to what is safe inside a CSS attribute selector.
var themeNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Scope describes a top-level key of a token document.
type Scope struct {
	Key   string // original top-level key
	Base  bool   // key starts with "base/"
	Theme string // theme name for "theme/<name>/..." keys
	Name  string // remainder below the prefix, may be empty
}

// ParseKey splits a top-level key into its scope prefix and name.
// Keys without a known prefix are returned with Name set to the whole key.
func ParseKey(key string) Scope {
	switch {
	case strings.HasPrefix(key, basePrefix):
		return Scope{Key: key, Base: true, Name: strings.TrimPrefix(key, basePrefix)}
	case strings.HasPrefix(key, themePrefix):
		rest := strings.TrimPrefix(key, themePrefix)
		name, remainder, _ := strings.Cut(rest, "/")
		return Scope{Key: key, Theme: name, Name: remainder}
	}
	return Scope{Key: key, Name: key}
}

// Segments returns the name split into variable path segments.
func (s Scope) Segments() []string {
	if s.Name == "" {
		return nil
	}
	return strings.Split(s.Name, "/")
}

// Normalize dedupes the configured theme names, drops invalid ones and
// falls back to DefaultTheme when nothing usable is left.
func Normalize(names []string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		if !themeNameRegex.MatchString(n) {
			logger.Warn("ignoring invalid theme name", "theme", n)
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		out = append(out, DefaultTheme)
	}
	return out
}

// Selector returns the merged CSS selector list for the given themes.
func Selector(themes []string) string {
	parts := make([]string, 0, len(themes)+1)
	parts = append(parts, ":root")
	for _, name := range themes {
		parts = append(parts, ":root[data-theme='"+name+"']")
	}
	return strings.Join(parts, ",\n")
}

// Candidates returns the top-level keys whose scoped name equals name,
// base groups first and then theme groups in document order.
func Candidates(root *token.Group, name string) []string {
	var base, themed []string
	root.Each(func(key string, _ token.Token) {
		s := ParseKey(key)
		if s.Name != name || s.Key == name {
			return
		}
		if s.Base {
			base = append(base, key)
		} else if s.Theme != "" {
			themed = append(themed, key)
		}
	})
	return append(base, themed...)
}
