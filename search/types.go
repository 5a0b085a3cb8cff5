// SPDX-License-Identifier: MIT

// Package search drives the degree-by-degree backtracking construction of
// pedigrees.
//
// For each degree d from 1 to the maximum it assigns every pending pair of
// the round through the assignment engine (one branch per interpretation that
// commits), validates each fully assigned candidate against the original
// observations, marks the newly tied records occupied, extrapolates their
// parents, relaxes the degree d+1 observations into first-degree candidate
// pairs and recurses. Candidates surviving the last round are the results.
//
// Branches never share a graph: every candidate is a deep clone, and within
// one branch the interpretations of a pair are tried back to back through
// reversible attempts. The search is synchronous; WithWorkers fans the
// continuation of first-round candidates out over an errgroup.
package search

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/kinship/metrics"
	"github.com/katalvlaran/kinship/observation"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when a nil graph is passed in.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrBadOption is returned when an invalid Option or max degree is supplied.
	ErrBadOption = errors.New("search: invalid option supplied")

	// ErrBudgetExceeded is returned when the branch budget runs out.
	ErrBudgetExceeded = errors.New("search: branch budget exceeded")

	// ErrInvalidInput wraps graph/observation problems found before searching.
	ErrInvalidInput = errors.New("search: invalid input")
)

// Option configures a search via functional arguments. Invalid options are
// recorded and surface as ErrBadOption when the search starts.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Ctx allows cancellation; checked at every fork.
	Ctx context.Context

	// Budget bounds committed attempts plus forked candidates. 0 disables it.
	Budget int64

	// Workers is the number of goroutines continuing first-round candidates.
	Workers int

	// Probabilities switches degree-1 pairs with a row to non-branching mode.
	Probabilities observation.Probabilities

	// Logger receives debug diagnostics; never nil after option parsing.
	Logger *zap.Logger

	// Metrics receives counters; nil records nothing.
	Metrics *metrics.Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no budget, one
// worker, no probabilities, a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBudget limits the search to n committed attempts plus forks.
//
//	n > 0:  limit
//	n == 0: no limit
//	n < 0:  invalid option → ErrBadOption
func WithBudget(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: budget cannot be negative (%d)", ErrBadOption, n)
			return
		}
		o.Budget = n
	}
}

// WithWorkers sets the number of parallel workers (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrBadOption, n)
			return
		}
		o.Workers = n
	}
}

// WithProbabilities enables the simplified weighted mode: a degree-1 pair with
// a row tries its interpretations by descending weight and keeps only the
// first that commits.
func WithProbabilities(p observation.Probabilities) Option {
	return func(o *Options) {
		o.Probabilities = p
	}
}

// WithLogger installs a logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs a metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}
