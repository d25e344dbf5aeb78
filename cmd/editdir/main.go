package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/schaermu/editdir/internal/config"
	"github.com/schaermu/editdir/internal/editor"
	"github.com/schaermu/editdir/internal/rename"
)

var (
	// Set by goreleaser
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile    string
	logLevel   string
	logFormat  string
	editorFlag string
	verbose    bool
	dryRun     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "editdir [flags] [path...]",
		Short: "Rename and delete files by editing a listing in your text editor",
		Long: `editdir lists the entries of one or more directories as numbered rows and
opens the listing in your text editor.

Change the path on a row to rename that entry, or remove the row to delete it.
The number at the start of each row identifies the entry and must be kept.
Directories are deleted together with their contents.

The editor is taken from --editor, the config file, $EDITOR, or vi, in that
order. Without arguments the current directory is listed.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
		RunE:         runEdit,
	}
	bindFlags(cmd.Flags())
	return cmd
}

func bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/editdir/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	flags.StringVarP(&editorFlag, "editor", "e", "", "editor command (overrides config and $EDITOR)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print every rename and delete")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "show what would be done without making changes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	logger := setupLogger(cmd.ErrOrStderr()).With("run", uuid.NewString())

	cfg, err := loadConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd.Flags(), cfg)

	ed := editor.NewShellEditor(editor.Resolve(cfg.Editor))
	ed.Stdin = cmd.InOrStdin()
	ed.Stdout = cmd.OutOrStdout()
	ed.Stderr = cmd.ErrOrStderr()
	logger.Debug("using editor", "command", ed.Command())

	engine := rename.NewEngine(cfg, ed, cmd.OutOrStdout(), logger, dryRun)
	return engine.Run(args)
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("editor") {
		cfg.Editor = editorFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
}

func setupLogger(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	// Create handler based on format
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: level}

	if logFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// loadConfig reads the config file. The default location is optional; a
// path given with --config must exist.
func loadConfig(logger *slog.Logger) (*config.Config, error) {
	if cfgFile != "" {
		logger.Debug("loading configuration", "path", cfgFile)
		return config.Load(cfgFile)
	}

	path, err := config.DefaultPath()
	if err != nil {
		logger.Debug("no default config location", "error", err)
		return &config.Config{}, nil
	}

	logger.Debug("loading configuration", "path", path)
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		"editor", cfg.Editor,
		"verbose", cfg.Verbose,
		"temp_dir", cfg.TempDir)

	return cfg, nil
}
