// SPDX-License-Identifier: MIT

package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/kinship/pedigree"
)

// task is the continuation of one first-round candidate.
type task struct {
	g    *pedigree.Graph
	next []choice
}

// runParallel runs round 1 on the calling goroutine, then continues every
// surviving candidate as its own errgroup task. Each task writes into its own
// slot, so concatenating the slots reproduces the serial result order.
func (s *searcher) runParallel(root *pedigree.Graph) ([]*pedigree.Graph, error) {
	var tasks []task
	s.spawn = func(g *pedigree.Graph, next []choice) error {
		tasks = append(tasks, task{g: g, next: next})
		return nil
	}
	var direct []*pedigree.Graph
	s.emit = func(r *pedigree.Graph) bool {
		direct = append(direct, r)
		return true
	}
	if err := s.start(root); err != nil {
		return direct, err
	}

	slots := make([][]*pedigree.Graph, len(tasks))
	grp, ctx := errgroup.WithContext(s.opts.Ctx)
	grp.SetLimit(s.opts.Workers)
	for i, t := range tasks {
		w := s.worker(ctx, &slots[i])
		grp.Go(func() error {
			return w.round(t.g, 2, t.next)
		})
	}
	err := grp.Wait()

	out := direct
	for _, slot := range slots {
		out = append(out, slot...)
	}

	return out, err
}

// worker returns a copy of s bound to ctx that appends results to sink and
// recurses instead of spawning.
func (s *searcher) worker(ctx context.Context, sink *[]*pedigree.Graph) *searcher {
	w := *s
	w.opts.Ctx = ctx
	w.spawn = nil
	w.emit = func(r *pedigree.Graph) bool {
		*sink = append(*sink, r)
		return true
	}

	return &w
}
