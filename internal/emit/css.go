// Package emit turns token trees into CSS custom properties and JS bindings.
package emit

import (
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/marcus/designtokens/internal/theme"
	"github.com/marcus/designtokens/internal/token"
)

const banner = "Generated by designtokens. Do not edit."

// CSSOptions configures CSS emission.
type CSSOptions struct {
	// Themes lists the supported theme names. Empty means theme.DefaultTheme.
	Themes []string
	Logger *slog.Logger
}

// CSS flattens tree into custom-property declarations inside one rule shared
// by :root and every supported theme selector. Only literal leaves produce a
// declaration; references and plain scalars are skipped silently.
// Declarations keep document order, so a theme token declared after a base
// token with the same name overrides it.
func CSS(tree *token.Group, opts CSSOptions) string {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	themes := opts.Themes
	if len(themes) == 0 {
		themes = []string{theme.DefaultTheme}
	}
	supported := make(map[string]bool, len(themes))
	for _, name := range themes {
		supported[name] = true
	}

	var decls []string
	tree.Each(func(key string, node token.Token) {
		scope := theme.ParseKey(key)
		if scope.Theme != "" && !supported[scope.Theme] {
			logger.Debug("skipping unsupported theme group", "key", key, "theme", scope.Theme)
			return
		}
		collect(node, scope.Segments(), &decls)
	})

	var b strings.Builder
	b.WriteString("/* " + banner + " */\n\n")
	b.WriteString(theme.Selector(themes))
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func collect(t token.Token, path []string, out *[]string) {
	switch n := t.(type) {
	case *token.Group:
		n.Each(func(key string, child token.Token) {
			collect(child, appendSegment(path, key), out)
		})
	case *token.List:
		for i, item := range n.Items {
			collect(item, appendSegment(path, strconv.Itoa(i)), out)
		}
	case *token.Literal:
		if len(path) == 0 {
			return
		}
		*out = append(*out, VariableName(path)+": "+cssValue(n.Value)+";")
	}
}

// cssValue turns a leftover alias into a var() lookup so the browser can
// still follow it.
func cssValue(v string) string {
	path, ok := token.ParseReference(v)
	if !ok {
		return v
	}
	segments := strings.Split(path, ".")
	scoped := theme.ParseKey(segments[0]).Segments()
	return "var(" + VariableName(append(scoped, segments[1:]...)) + ")"
}

// VariableName returns the custom property name for a token path:
// segments are kebab-cased and joined with dashes.
func VariableName(path []string) string {
	parts := make([]string, 0, len(path))
	for _, seg := range path {
		parts = append(parts, Kebab(strings.ReplaceAll(seg, "/", "-")))
	}
	return "--" + strings.Join(parts, "-")
}

// Kebab inserts a dash before every uppercase letter and lowercases it.
func Kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func appendSegment(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
