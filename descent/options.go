package descent

import (
	"context"
	"fmt"
	"math"
)

// Driver defaults (scenario A of the reference experiment).
const (
	DefaultIterations   = 100001
	DefaultReportEvery  = 10000
	DefaultLearningRate = 1e-3
)

// Option configures Run via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the resolved driver parameters.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Iterations is the exact number of update steps executed.
	Iterations int

	// ReportEvery is the report cadence; 0 disables reporting.
	ReportEvery int

	// LearningRate scales every step.
	LearningRate float64

	// OnReport receives (iteration, energy) at the cadence. A non-nil error
	// aborts the run and is returned wrapped.
	OnReport func(Sample) error

	// Trace keeps every reported Sample in Result.Samples.
	Trace bool

	err error
}

// DefaultOptions returns Options with background context, the default
// budget, cadence and learning rate, and a no-op report hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Iterations:   DefaultIterations,
		ReportEvery:  DefaultReportEvery,
		LearningRate: DefaultLearningRate,
		OnReport:     func(Sample) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIterations sets the iteration budget.
//
//	n ≥ 1: run exactly n steps
//	n < 1: invalid option → ErrOptionViolation
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Iterations must be ≥ 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.Iterations = n
	}
}

// WithReportEvery sets the report cadence.
//
//	k > 0: report iterations 0, k, 2k, …
//	k == 0: explicit "no reports"
//	k < 0: invalid option → ErrOptionViolation
func WithReportEvery(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: ReportEvery cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.ReportEvery = k
	}
}

// WithLearningRate sets the step size; it must be positive and finite.
func WithLearningRate(lr float64) Option {
	return func(o *Options) {
		if !(lr > 0) || math.IsInf(lr, 0) {
			o.err = fmt.Errorf("%w: LearningRate must be positive and finite (%g)", ErrOptionViolation, lr)

			return
		}
		o.LearningRate = lr
	}
}

// WithOnReport registers the report hook.
func WithOnReport(fn func(Sample) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReport = fn
		}
	}
}

// WithTrace keeps reported samples in the Result.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}
