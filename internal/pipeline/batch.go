package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/atomscope/atomscope/internal/model"
)

// DefaultConcurrency is used when no concurrency is configured.
const DefaultConcurrency = 4

// BatchProcessor analyzes several queries concurrently.
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline for each query.
	pipelineFactory func() *Pipeline

	concurrency int
	logger      *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp
}

// ProcessBatch analyzes queries concurrently and returns one analysis per
// query, in input order. A failed query yields an analysis without a
// molecule; it does not stop the others. The error is non-nil only when
// ctx ends before every query has started, in which case unstarted
// entries are nil.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, queries []string) ([]*model.Analysis, error) {
	results := make([]*model.Analysis, len(queries))
	err := bp.ProcessBatchWithCallback(ctx, queries, func(a *model.Analysis, i int) {
		results[i] = a
	})
	return results, err
}

// ProcessBatchWithCallback analyzes queries and calls callback for each
// completed analysis with its index in queries. The callback runs on the
// worker goroutine and must be safe for concurrent use across different
// indices.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	queries []string,
	callback func(a *model.Analysis, index int),
) error {
	bp.logger.Debug("starting batch",
		"total_queries", len(queries),
		"concurrency", bp.concurrency,
	)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, query := range queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			a := model.NewAnalysis(query)
			if err := bp.pipelineFactory().Execute(ctx, a); err != nil {
				bp.logger.Warn("analysis failed", "query", query, "error", err)
			}
			callback(a, i)
			return nil
		})
	}

	err := g.Wait()
	bp.logger.Debug("batch complete",
		"total_queries", len(queries),
		"elapsed", time.Since(start),
	)
	return err
}
