package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atomscope/atomscope/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
type Step interface {
	// Do executes the step against the analysis being built. Errors that
	// should not stop the pipeline are logged by the step and not returned.
	Do(ctx context.Context, a *model.Analysis) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	steps           []Step
	logger          *slog.Logger
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError keeps executing steps after one fails. Steps that
// need a molecule skip themselves once the analysis has failed.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in order. Cancellation is checked before each
// step; a cancelled run marks the analysis as timed out.
//
// A failing step records its error on the analysis, which also discards
// any molecule. Unless continueOnError is set, the error is returned
// immediately.
func (p *Pipeline) Execute(ctx context.Context, a *model.Analysis) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"query", a.Query,
				"reason", err,
			)
			a.TimedOut = true
			a.Fail(err)
			return err
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"query", a.Query,
		)

		if err := step.Do(ctx, a); err != nil {
			p.logger.Warn("step failed",
				"step", step.Name(),
				"query", a.Query,
				"error", err,
			)
			if errors.Is(err, context.DeadlineExceeded) {
				a.TimedOut = true
			}
			a.Fail(err)
			if !p.continueOnError {
				a.Steps = append(a.Steps, step.Name())
				return err
			}
		}

		a.Steps = append(a.Steps, step.Name())
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
