package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus/designtokens/internal/config"
	"github.com/marcus/designtokens/internal/contrast"
	"github.com/marcus/designtokens/internal/pipeline"
	"github.com/marcus/designtokens/internal/preview"
	"github.com/marcus/designtokens/internal/report"
	"github.com/marcus/designtokens/internal/styles"
	"github.com/marcus/designtokens/internal/watch"
)

// summaryWidth is the word wrap of the contrast summary.
const summaryWidth = 100

func runAll(cmd *cobra.Command, args []string) error {
	return buildAndCheck(cmd.OutOrStdout())
}

func runBuild(cmd *cobra.Command, args []string) error {
	resolved, err := pipeline.Load(cfg, logger)
	if err != nil {
		return err
	}
	return build(cmd.OutOrStdout(), resolved)
}

func runContrast(cmd *cobra.Command, args []string) error {
	resolved, err := pipeline.Load(cfg, logger)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	reports, err := contrastReports(out, resolved)
	if err != nil {
		return err
	}

	rendered, err := report.Render(report.Markdown(reports, cfg.Contrast.TopPairs), summaryStyle, summaryWidth)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.StatusLine(styles.Title, "watching", cfg.Tokens.Input))
	err := watch.Run(ctx, cfg.Tokens.Input, cfg.Watch.Debounce, logger, func() error {
		return buildAndCheck(out)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runPreview(cmd *cobra.Command, args []string) error {
	lang, ok := preview.Language(args[0])
	if !ok {
		return fmt.Errorf("unknown artifact %q, want css, js or ts", args[0])
	}

	resolved, err := pipeline.Load(cfg, logger)
	if err != nil {
		return err
	}
	artifacts, err := pipeline.Emit(resolved, logger)
	if err != nil {
		return err
	}

	src := artifacts.CSS
	switch lang {
	case "javascript":
		src = artifacts.JS
	case "typescript":
		src = artifacts.Types
	}

	opts := preview.Options{Style: previewStyle}
	if previewPlain {
		opts.Formatter = "noop"
	}
	return preview.Highlight(cmd.OutOrStdout(), src, lang, opts)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := config.Save(config.Default(), configPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.StatusLine(styles.StatusOK, "created", configPath))
	return nil
}

// buildAndCheck resolves the token file once and runs both the emitters and
// the contrast reports on that result.
func buildAndCheck(out io.Writer) error {
	resolved, err := pipeline.Load(cfg, logger)
	if err != nil {
		return err
	}
	if err := build(out, resolved); err != nil {
		return err
	}
	_, err = contrastReports(out, resolved)
	return err
}

func build(out io.Writer, resolved *pipeline.Resolved) error {
	res, err := pipeline.Build(resolved, cfg, logger)
	if err != nil {
		return err
	}
	printWritten(out, res.Written)
	if n := len(res.Resolved.Diagnostics); n > 0 {
		fmt.Fprintln(out, styles.StatusLine(styles.StatusWarn, "warning",
			fmt.Sprintf("%d reference(s) could not be resolved", n)))
	}
	return nil
}

func contrastReports(out io.Writer, resolved *pipeline.Resolved) (*report.Reports, error) {
	res, err := pipeline.Contrast(resolved, cfg, logger, time.Now())
	if err != nil {
		return nil, err
	}
	printWritten(out, res.Written)

	s := res.Reports.Summary
	fmt.Fprintf(out, "%s %d  %s %d  %s %d  %s\n",
		styles.LevelBadge(contrast.LevelAAA), s.ValidAAA,
		styles.LevelBadge(contrast.LevelAA), s.ValidAA,
		styles.LevelBadge(contrast.LevelFail), s.Forbidden,
		styles.Muted.Render(s.ValidPercentage+" valid"))
	if len(res.Reports.Valid) > 0 {
		best := res.Reports.Valid[0]
		fmt.Fprintln(out, styles.StatusLine(styles.StatusInfo, "best", fmt.Sprintf("%s on %s %.2f:1",
			styles.Chip(best.Text.Hex), styles.Chip(best.Background.Hex), best.Ratio)))
	}
	return res.Reports, nil
}

func printWritten(out io.Writer, paths []string) {
	if len(paths) == 0 {
		fmt.Fprintln(out, styles.StatusLine(styles.StatusInfo, "unchanged", styles.Muted.Render("no files written")))
		return
	}
	for _, p := range paths {
		fmt.Fprintln(out, styles.StatusLine(styles.StatusOK, "wrote", p))
	}
}
