// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/kinship/extrapolate"
	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
	"github.com/katalvlaran/kinship/prune"
)

// errStop unwinds the recursion when the consumer stops early.
var errStop = errors.New("search: stopped by consumer")

// searcher holds the read-only inputs and policies of one run.
type searcher struct {
	obs       observation.Set
	validator *prune.Validator
	maxDegree int
	opts      Options
	log       *zap.Logger

	spent *atomic.Int64 // shared budget counter

	// emit receives every result; returning false stops the search.
	emit func(*pedigree.Graph) bool

	// spawn, when set, takes over the continuation of first-round candidates.
	spawn func(g *pedigree.Graph, next []choice) error
}

// ConstructAll enumerates every pedigree consistent with obs up to maxDegree,
// starting from g. g itself is never modified.
//
// Results come in depth-first order (identical with and without WithWorkers)
// and are not deduplicated; see package isomorph.
//
// When the budget runs out or the context is cancelled, the results found so
// far are returned together with the error.
func ConstructAll(g *pedigree.Graph, obs observation.Set, maxDegree int, opts ...Option) ([]*pedigree.Graph, error) {
	s, root, err := prepare(g, obs, maxDegree, opts)
	if err != nil {
		return nil, err
	}

	var (
		results []*pedigree.Graph
		runErr  error
	)
	if s.opts.Workers > 1 && maxDegree > 1 {
		results, runErr = s.runParallel(root)
	} else {
		s.emit = func(r *pedigree.Graph) bool {
			results = append(results, r)
			return true
		}
		runErr = s.start(root)
	}

	s.log.Info("pedigree search finished",
		zap.Int("results", len(results)),
		zap.Int64("spent", s.spent.Load()),
		zap.Int("max_degree", maxDegree),
		zap.Error(runErr),
	)

	return results, runErr
}

// Candidates is the lazy form of ConstructAll: results are produced one at a
// time while the consumer iterates, and breaking out of the loop stops the
// search. A search error is yielded last with a nil graph. Candidates always
// runs on the calling goroutine; WithWorkers is ignored.
func Candidates(g *pedigree.Graph, obs observation.Set, maxDegree int, opts ...Option) iter.Seq2[*pedigree.Graph, error] {
	return func(yield func(*pedigree.Graph, error) bool) {
		s, root, err := prepare(g, obs, maxDegree, opts)
		if err != nil {
			yield(nil, err)
			return
		}
		s.emit = func(r *pedigree.Graph) bool {
			return yield(r, nil)
		}
		if err = s.start(root); err != nil && !errors.Is(err, errStop) {
			yield(nil, err)
		}
	}
}

// prepare validates the inputs and builds the searcher plus the working copy
// of g.
func prepare(g *pedigree.Graph, obs observation.Set, maxDegree int, opts []Option) (*searcher, *pedigree.Graph, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if maxDegree < 1 {
		return nil, nil, fmt.Errorf("%w: max degree must be at least 1 (%d)", ErrBadOption, maxDegree)
	}
	if err := obs.Validate(g); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s := &searcher{
		obs:       obs,
		validator: prune.New(obs),
		maxDegree: maxDegree,
		opts:      o,
		log:       o.Logger,
		spent:     new(atomic.Int64),
	}

	return s, g.Clone(), nil
}

// start runs round 1 on root: every current record gets placeholder parents,
// then the degree-1 observations are assigned.
func (s *searcher) start(root *pedigree.Graph) error {
	if _, err := extrapolate.All(root, root.IDs()); err != nil {
		return err
	}
	first := make([]choice, 0, len(s.obs.At(1)))
	for _, p := range s.obs.At(1) {
		first = append(first, choice{obs: p, degree: 1, alts: []observation.Pair{p}})
	}

	err := s.round(root, 1, first)
	if errors.Is(err, errStop) {
		return nil
	}

	return err
}

// charge spends one unit of budget and checks for cancellation.
func (s *searcher) charge() error {
	if err := s.opts.Ctx.Err(); err != nil {
		return err
	}
	n := s.spent.Add(1)
	if s.opts.Budget > 0 && n > s.opts.Budget {
		return fmt.Errorf("%w: %d", ErrBudgetExceeded, s.opts.Budget)
	}

	return nil
}
