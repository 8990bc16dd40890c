// Package pipeline runs the batch steps: load, resolve, emit and report.
package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/marcus/designtokens/internal/config"
	"github.com/marcus/designtokens/internal/emit"
	"github.com/marcus/designtokens/internal/output"
	"github.com/marcus/designtokens/internal/palette"
	"github.com/marcus/designtokens/internal/report"
	"github.com/marcus/designtokens/internal/resolve"
	"github.com/marcus/designtokens/internal/theme"
	"github.com/marcus/designtokens/internal/token"
)

// Resolved is a loaded and resolved token document.
type Resolved struct {
	Source      *token.Group
	Tree        *token.Group
	Themes      []string
	Diagnostics []resolve.Diagnostic
}

// Artifacts holds the emitted file contents.
type Artifacts struct {
	CSS   string
	JS    string
	Types string
}

// BuildResult describes a build run.
type BuildResult struct {
	Resolved *Resolved
	Written  []string // paths whose content changed
}

// ContrastResult describes a contrast run.
type ContrastResult struct {
	Reports *report.Reports
	Written []string
}

// Load reads the token document named in cfg and resolves it.
func Load(cfg *config.Config, logger *slog.Logger) (*Resolved, error) {
	if logger == nil {
		logger = slog.Default()
	}
	source, err := token.LoadFile(cfg.Tokens.Input)
	if err != nil {
		return nil, err
	}

	ctx := resolve.NewContext(source, logger)
	ctx.MaxDepth = cfg.Tokens.MaxDepth
	tree := resolve.Resolve(ctx, source)

	diags := ctx.Diagnostics()
	logger.Debug("resolved tokens", "input", cfg.Tokens.Input, "diagnostics", len(diags))
	return &Resolved{
		Source:      source,
		Tree:        tree,
		Themes:      theme.Normalize(cfg.Tokens.Themes, logger),
		Diagnostics: diags,
	}, nil
}

// Emit renders the CSS, JS and type declaration artifacts.
func Emit(r *Resolved, logger *slog.Logger) (*Artifacts, error) {
	js, err := emit.JS(r.Tree)
	if err != nil {
		return nil, err
	}
	return &Artifacts{
		CSS:   emit.CSS(r.Tree, emit.CSSOptions{Themes: r.Themes, Logger: logger}),
		JS:    js,
		Types: emit.TypeScript(),
	}, nil
}

// Build writes the CSS and JS artifacts of a resolved document.
func Build(r *Resolved, cfg *config.Config, logger *slog.Logger) (*BuildResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a, err := Emit(r, logger)
	if err != nil {
		return nil, err
	}

	files := []struct {
		path string
		data string
	}{
		{cfg.CSS.Output, a.CSS},
		{cfg.JS.Output, a.JS},
		{cfg.JS.Types, a.Types},
	}
	result := &BuildResult{Resolved: r}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		changed, err := writeFile(f.path, []byte(f.data), logger)
		if err != nil {
			return nil, err
		}
		if changed {
			result.Written = append(result.Written, f.path)
		}
	}
	return result, nil
}

// Contrast classifies every palette pair of a resolved document and writes
// the three report documents stamped with now.
func Contrast(r *Resolved, cfg *config.Config, logger *slog.Logger, now time.Time) (*ContrastResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	swatches, err := palette.FromTree(r.Tree, cfg.Contrast.Palette, logger)
	if err != nil {
		return nil, err
	}
	reports, err := report.Build(swatches, report.Options{ComprehensiveLimit: cfg.Contrast.ComprehensiveLimit})
	if err != nil {
		return nil, err
	}

	docs := reports.Documents(now)
	allPath, validPath, forbiddenPath := cfg.ReportPaths()
	files := []struct {
		path string
		doc  any
	}{
		{allPath, docs.Comprehensive},
		{validPath, docs.Valid},
		{forbiddenPath, docs.Forbidden},
	}

	result := &ContrastResult{Reports: reports}
	for _, f := range files {
		data, err := json.MarshalIndent(f.doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.path, err)
		}
		changed, err := writeFile(f.path, append(data, '\n'), logger)
		if err != nil {
			return nil, err
		}
		if changed {
			result.Written = append(result.Written, f.path)
		}
	}
	logger.Debug("contrast reports", "total", reports.Summary.Total, "valid", reports.Summary.Valid)
	return result, nil
}

func writeFile(path string, data []byte, logger *slog.Logger) (bool, error) {
	changed, err := output.WriteFile(path, data)
	if err != nil {
		return false, err
	}
	if changed {
		logger.Debug("wrote artifact", "path", path, "digest", output.Digest(data))
	} else {
		logger.Debug("artifact unchanged", "path", path)
	}
	return changed, nil
}
