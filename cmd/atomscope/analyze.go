package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/analyzer"
	"github.com/atomscope/atomscope/internal/config"
	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/model"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/pipeline"
	"github.com/atomscope/atomscope/internal/report"
)

// errNoData is returned when no analysis in a run produced a molecule.
var errNoData = errors.New("no data available for any query")

// newAnalyzer builds the model client. Tests replace it with a fake.
var newAnalyzer = func(ctx context.Context, opts analyzer.Options) (analyzer.Analyzer, error) {
	return analyzer.NewGeminiAnalyzer(ctx, opts)
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <substance> [substance...]",
		Short: "Explain how a substance forms its bonds",
		Long: `Analyze asks Google Gemini to explain a chemical substance given by name
or formula. The answer includes:
- The atoms involved, with electron shells and valence electrons
- The bond type (ionic, covalent, metallic) and every bond
- Lewis structure, electron formula and structural formula
- How the bonds form and whether hydrogen bonding occurs

Answers are stored in a local database and reused for the same substance,
model and language. When the model cannot answer, "no data available" is
reported; nothing is guessed locally.

The API key is read from GEMINI_API_KEY, API_KEY or the configuration file.

Examples:
  # Analyze one substance
  atomscope analyze NaCl

  # Several substances, three at a time
  atomscope analyze --batch 3 water ammonia "carbon dioxide"

  # Explanation in Vietnamese, Markdown report to a file
  atomscope analyze --lang vi --markdown -o reports/h2o.md H2O

  # Ask the model again instead of using the stored answer
  atomscope analyze --no-cache CH4`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Model flags
	cmd.Flags().String("model", config.DefaultModel,
		"Gemini model name")
	cmd.Flags().Float32("temperature", config.DefaultTemperature,
		"Sampling temperature (0-2)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each model request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy for model requests (host:port)")
	cmd.Flags().StringP("lang", "L", config.DefaultLanguage,
		"Language of the explanation (en, vi)")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Storage flags
	cmd.Flags().Bool("no-cache", false,
		"Ignore stored answers and ask the model again")
	cmd.Flags().Bool("no-save", false,
		"Do not store new answers in the database")

	addConfigFlag(cmd)
	addReportFlags(cmd)

	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAnalyzeConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if len(cfg.Queries) == 0 {
		return config.ErrNoQuery
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runAnalyze(ctx, cmd, cfg, logger)
}

// buildAnalyzeConfig creates a Config from the config file, the
// environment and the command flags, in that order of precedence.
func buildAnalyzeConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		if cfg.Model, err = flags.GetString("model"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("temperature") {
		if cfg.Temperature, err = flags.GetFloat32("temperature"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if err := applyLanguageFlag(cmd, cfg); err != nil {
		return nil, err
	}
	if flags.Changed("batch") {
		if cfg.BatchSize, err = flags.GetInt("batch"); err != nil {
			return nil, err
		}
	}

	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		cfg.UseCache = false
	}
	noSave, err := flags.GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave

	if err := applyReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Queries = args
	return cfg, nil
}

// runAnalyze runs the analysis pipeline for every query and writes the
// reports in input order.
func runAnalyze(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	an, err := newAnalyzer(ctx, analyzer.Options{
		APIKey:       cfg.APIKey,
		Model:        cfg.Model,
		Temperature:  cfg.Temperature,
		Timeout:      cfg.Timeout,
		Language:     periodic.MatchLanguage(cfg.Language),
		ProxyAddress: cfg.ProxyAddress,
		Logger:       logger,
	})
	if errors.Is(err, analyzer.ErrMissingAPIKey) {
		logger.Warn("no API key configured, every query has no data")
		if werr := writeAnalyses(cmd, cfg, unavailableAnalyses(cfg, err)); werr != nil {
			return werr
		}
		return fmt.Errorf("%w: %w", errNoData, err)
	}
	if err != nil {
		return err
	}

	logger.Info("starting analysis",
		"queries", len(cfg.Queries),
		"model", an.Model(),
		"language", an.Language().String(),
		"batchSize", cfg.BatchSize,
		"useCache", cfg.UseCache,
		"saveToDB", cfg.SaveToDB,
	)

	// The store is optional: without it every query goes to the model.
	var store pipeline.Store
	if cfg.UseCache || cfg.SaveToDB {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			logger.Warn("analysis database unavailable, continuing without it",
				"dir", cfg.DBDir, "error", err)
		} else {
			defer db.Close()
			logger.Debug("database opened", "path", db.Path())
			store = db
		}
	}

	factory := func() *pipeline.Pipeline {
		return pipeline.NewAnalysisPipeline(pipeline.Deps{
			Analyzer: an,
			Store:    store,
			UseCache: cfg.UseCache,
			Save:     cfg.SaveToDB,
			Logger:   logger,
		})
	}

	var results []*model.Analysis
	if len(cfg.Queries) > 1 && cfg.BatchSize > 1 {
		results, err = runBatchAnalysis(ctx, cmd, cfg, factory, logger)
	} else {
		results, err = runSequentialAnalysis(ctx, cmd, cfg, factory)
	}

	if werr := writeAnalyses(cmd, cfg, results); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}

	for _, a := range results {
		if a != nil && a.HasData() {
			return nil
		}
	}
	return errNoData
}

// unavailableAnalyses returns one failed analysis per query, used when no
// model can be reached at all.
func unavailableAnalyses(cfg *config.Config, err error) []*model.Analysis {
	lang := periodic.MatchLanguage(cfg.Language).String()
	results := make([]*model.Analysis, 0, len(cfg.Queries))
	for _, query := range cfg.Queries {
		a := model.NewAnalysis(query)
		a.NormalizedQuery = pipeline.NormalizeQuery(query)
		a.Model = cfg.Model
		a.Language = lang
		a.Fail(err)
		results = append(results, a)
	}
	return results
}

// runSequentialAnalysis analyzes queries one at a time.
func runSequentialAnalysis(ctx context.Context, cmd *cobra.Command, cfg *config.Config, factory func() *pipeline.Pipeline) ([]*model.Analysis, error) {
	results := make([]*model.Analysis, 0, len(cfg.Queries))
	for _, query := range cfg.Queries {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing %s...\n", query)
		startTime := time.Now()

		a := model.NewAnalysis(query)
		// A failed analysis is reported as "no data"; the error is on a.
		_ = factory().Execute(ctx, a) //nolint:errcheck // recorded on the analysis
		results = append(results, a)

		fmt.Fprintf(cmd.ErrOrStderr(), "Finished in %s\n", time.Since(startTime).Round(time.Millisecond))
	}
	return results, nil
}

// runBatchAnalysis analyzes several queries concurrently using BatchProcessor.
func runBatchAnalysis(ctx context.Context, cmd *cobra.Command, cfg *config.Config, factory func() *pipeline.Pipeline, logger *slog.Logger) ([]*model.Analysis, error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing %d substances (concurrency: %d)...\n",
		len(cfg.Queries), cfg.BatchSize)
	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(factory,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	results := make([]*model.Analysis, len(cfg.Queries))
	var (
		mu   sync.Mutex
		done int
	)
	err := bp.ProcessBatchWithCallback(ctx, cfg.Queries, func(a *model.Analysis, index int) {
		mu.Lock()
		defer mu.Unlock()
		results[index] = a
		done++
		fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] Finished: %s\n", done, len(cfg.Queries), a.Query)
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "Batch finished in %s\n", time.Since(startTime).Round(time.Millisecond))

	// Queries that never started are left out.
	completed := make([]*model.Analysis, 0, len(results))
	for _, a := range results {
		if a != nil {
			completed = append(completed, a)
		}
	}
	return completed, err
}

// writeAnalyses writes every analysis to the configured output.
func writeAnalyses(cmd *cobra.Command, cfg *config.Config, results []*model.Analysis) error {
	if len(results) == 0 {
		return nil
	}
	return withReport(cmd, cfg, func(w report.Writer) error {
		for _, a := range results {
			if _, err := w.WriteAnalysis(a); err != nil {
				return fmt.Errorf("failed to write report for %q: %w", a.Query, err)
			}
		}
		return nil
	})
}
