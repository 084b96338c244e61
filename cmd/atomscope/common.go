package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/config"
	"github.com/atomscope/atomscope/internal/log"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/report"
)

// errUnknownElement is returned for an argument that is neither an atomic
// number in range nor a known symbol.
var errUnknownElement = errors.New("unknown element")

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger that writes to stderr and masks
// API keys.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewSecureLogger(os.Stderr, verbose)
}

// addConfigFlag registers --config.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .atomscope in current or home directory)")
}

// addReportFlags registers the output format flags.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
}

// loadConfig builds a Config from defaults, the configuration file and the
// environment. Flags are applied by each command afterwards.
//
// An explicitly given config file must exist. Without --config, a missing
// file is not an error.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	if cmd.Flags().Lookup("config") != nil {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, err
		}
		cfg.ConfigFilePath = path
	}

	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// applyReportFlags copies the output format flags into cfg.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if cfg.JSONReport && cfg.MarkdownReport {
		return config.ErrConflictingReportFormats
	}
	return nil
}

// applyLanguageFlag overrides the configured language when --lang is set.
func applyLanguageFlag(cmd *cobra.Command, cfg *config.Config) error {
	if !cmd.Flags().Changed("lang") {
		return nil
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return err
	}
	cfg.Language = lang
	return nil
}

// openOutput returns the report destination. The returned close function
// must be called when writing is done.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// withReport opens the configured output, builds a Writer for the selected
// format and passes it to fn.
func withReport(cmd *cobra.Command, cfg *config.Config, fn func(report.Writer) error) (err error) {
	out, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	format := report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport)
	if format == report.FormatSimple {
		return fn(report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose)))
	}
	return fn(report.New(format, out))
}

// resolveElement maps a CLI argument to an atomic number. It accepts an
// atomic number (1-118), a symbol in any letter case ("na", "NA") or an
// English element name ("sodium").
func resolveElement(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if z, err := strconv.Atoi(arg); err == nil {
		if z < 1 || z > periodic.MaxAtomicNumber {
			return 0, fmt.Errorf("%w: atomic number %d is outside 1-%d", errUnknownElement, z, periodic.MaxAtomicNumber)
		}
		return z, nil
	}

	if e, ok := periodic.FindBySymbol(arg); ok {
		return e.AtomicNumber, nil
	}
	if e, ok := periodic.FindBySymbol(canonicalSymbol(arg)); ok {
		return e.AtomicNumber, nil
	}
	for _, e := range periodic.Elements() {
		if strings.EqualFold(e.Name, arg) {
			return e.AtomicNumber, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errUnknownElement, arg)
}

// canonicalSymbol upper-cases the first letter and lower-cases the rest.
func canonicalSymbol(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// describerFor returns the trend describer for the configured language.
func describerFor(cfg *config.Config) *periodic.Describer {
	return periodic.NewDescriber(periodic.MatchLanguage(cfg.Language))
}
