package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/designtokens/internal/config"
)

var (
	configPath   string
	debugFlag    bool
	previewStyle string
	previewPlain bool
	summaryStyle string
	initForce    bool

	// set by PersistentPreRunE
	cfg    *config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "designtokens",
		Short: "Resolve design tokens into CSS, JS and WCAG contrast reports",
		Long: `designtokens reads a design-token JSON document, resolves alias
references and emits CSS custom properties, an ES module with a getToken
accessor, and accessibility reports for every color pair of the palette.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runAll,
	}

	allCmd = &cobra.Command{
		Use:   "all",
		Short: "Build the CSS and JS artifacts and the contrast reports (default)",
		Args:  cobra.NoArgs,
		RunE:  runAll,
	}

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Resolve tokens and emit CSS custom properties and JS bindings",
		Args:  cobra.NoArgs,
		RunE:  runBuild,
	}

	contrastCmd = &cobra.Command{
		Use:   "contrast",
		Short: "Write the WCAG contrast reports and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runContrast,
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Rebuild everything whenever the token file changes",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}

	previewCmd = &cobra.Command{
		Use:       "preview [css|js|ts]",
		Short:     "Print an emitted artifact with syntax highlighting",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"css", "js", "ts"},
		RunE:      runPreview,
	}

	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
)

func init() {
	rootCmd.Version = effectiveVersion(Version)
	rootCmd.SetVersionTemplate("designtokens version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(buildCmd)

	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().StringVar(&summaryStyle, "style", "", "glamour style for the summary (default: detect)")

	rootCmd.AddCommand(watchCmd)

	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "chroma style name")
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "print without highlighting")

	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

// setup configures logging and loads the configuration for every command.
func setup(cmd *cobra.Command, args []string) error {
	logLevel := slog.LevelInfo
	if debugFlag {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cmd == initCmd {
		return nil
	}
	loaded, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("config loaded", "path", configPath, "input", cfg.Tokens.Input)
	return nil
}
