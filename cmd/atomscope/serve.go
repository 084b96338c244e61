package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/atomscope/atomscope/internal/analyzer"
	"github.com/atomscope/atomscope/internal/config"
	"github.com/atomscope/atomscope/internal/database"
	"github.com/atomscope/atomscope/internal/log"
	"github.com/atomscope/atomscope/internal/periodic"
	"github.com/atomscope/atomscope/internal/pipeline"
	"github.com/atomscope/atomscope/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the periodic table and analyses over HTTP",
		Long: `Serve starts a JSON HTTP API.

Endpoints:
  GET  /elements          all 118 atoms (?lang=vi for Vietnamese text)
  GET  /elements/{id}     one atom by atomic number or symbol
  GET  /table             periodic table cells with row and column
  POST /analyze           {"query": "NaCl"} runs the analysis pipeline
  GET  /healthz           liveness
  GET  /metrics           Prometheus metrics

POST /analyze answers 503 when no Gemini API key is configured; the other
endpoints work without one. Logs are written to stderr as JSON.

Examples:
  # Listen on the default address
  atomscope serve

  # Listen on all interfaces
  atomscope serve --listen :8080`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", config.DefaultListenAddress,
		"HTTP listen address")
	cmd.Flags().StringP("lang", "L", config.DefaultLanguage,
		"Language of analysis explanations (en, vi)")
	addConfigFlag(cmd)

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("listen") {
		if cfg.ListenAddress, err = cmd.Flags().GetString("listen"); err != nil {
			return err
		}
	}
	if err := applyLanguageFlag(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewSecureJSONLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory, cleanup := servePipeline(ctx, cfg, logger)
	defer cleanup()

	h := server.New(server.Options{
		Logger:          logger,
		Metrics:         server.NewMetrics(),
		NewPipeline:     factory,
		AnalysisTimeout: cfg.Timeout,
	})
	srv := server.NewHTTPServer(cfg.ListenAddress, server.NewRouter(h))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting atomscope server", "addr", cfg.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// servePipeline builds the analysis pipeline factory for the server. It
// returns a nil factory when no analyzer can be created, which disables
// POST /analyze.
func servePipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger) (server.PipelineFactory, func()) {
	noop := func() {}

	an, err := newAnalyzer(ctx, analyzer.Options{
		APIKey:       cfg.APIKey,
		Model:        cfg.Model,
		Temperature:  cfg.Temperature,
		Timeout:      cfg.Timeout,
		Language:     periodic.MatchLanguage(cfg.Language),
		ProxyAddress: cfg.ProxyAddress,
		Logger:       logger,
	})
	if err != nil {
		logger.Warn("analysis disabled", "error", err)
		return nil, noop
	}

	var (
		store   pipeline.Store
		cleanup = noop
	)
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("analysis database unavailable, continuing without it",
			"dir", cfg.DBDir, "error", err)
	} else {
		store = db
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}
	}

	return func() *pipeline.Pipeline {
		return pipeline.NewAnalysisPipeline(pipeline.Deps{
			Analyzer: an,
			Store:    store,
			UseCache: cfg.UseCache,
			Save:     cfg.SaveToDB,
			Logger:   logger,
		})
	}, cleanup
}
