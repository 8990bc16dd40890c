// Package preview prints emitted artifacts with syntax highlighting.
package preview

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	DefaultFormatter = "terminal256"
	DefaultStyle     = "monokai"
)

// Options selects the chroma formatter and style. Empty fields use the
// defaults; formatter "noop" writes the source unchanged.
type Options struct {
	Formatter string
	Style     string
}

// Highlight writes src to w, colorized as language (for example "css",
// "javascript" or "typescript"). Unknown languages fall back to plain text.
func Highlight(w io.Writer, src, language string, opts Options) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	name := opts.Formatter
	if name == "" {
		name = DefaultFormatter
	}
	formatter := formatters.Get(name)
	if formatter == nil {
		formatter = formatters.Fallback
	}

	styleName := opts.Style
	if styleName == "" {
		styleName = DefaultStyle
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", language, err)
	}
	return formatter.Format(w, style, iterator)
}

// Language maps an artifact kind to its chroma lexer name.
func Language(kind string) (string, bool) {
	switch kind {
	case "css":
		return "css", true
	case "js", "javascript":
		return "javascript", true
	case "ts", "d.ts", "typescript":
		return "typescript", true
	}
	return "", false
}
