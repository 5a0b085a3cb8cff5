// SPDX-License-Identifier: MIT

package search

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/kinship/assign"
	"github.com/katalvlaran/kinship/extrapolate"
	"github.com/katalvlaran/kinship/metrics"
	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
)

// choice is one observation to serve in a round, with the first-degree pairs
// that may serve it. A degree-1 observation is its own single alternative.
type choice struct {
	obs    observation.Pair
	degree int
	alts   []observation.Pair
}

// satisfied reports whether g already places the observation at its degree.
func (c choice) satisfied(g *pedigree.Graph) bool {
	d, ok := g.Degree(c.obs.A, c.obs.B, c.degree)

	return ok && d == c.degree
}

// round assigns the choices of degree d on g, depth first.
func (s *searcher) round(g *pedigree.Graph, d int, choices []choice) error {
	s.opts.Metrics.Round(d)
	s.log.Debug("round", zap.Int("degree", d), zap.Int("choices", len(choices)), zap.Int("nodes", g.Len()))

	return s.assign(g, d, choices, 0, nil)
}

// assign serves choices[idx:] and hands every fully assigned graph to finish.
// touched accumulates the participants of the attempts on the current path.
func (s *searcher) assign(g *pedigree.Graph, d int, choices []choice, idx int, touched []string) error {
	if idx == len(choices) {
		return s.finish(g, d, touched)
	}
	c := choices[idx]
	if c.satisfied(g) {
		return s.assign(g, d, choices, idx+1, touched)
	}

	for _, alt := range c.alts {
		rels, single := s.relations(g, d, alt)
		for _, rel := range rels {
			at := assign.Apply(g, rel, alt.A, alt.B)
			if !at.OK() {
				s.opts.Metrics.Attempt(rel.String(), string(at.Reason()))
				continue
			}
			if !c.satisfied(g) {
				at.Undo()
				s.opts.Metrics.Attempt(rel.String(), "off_degree")
				continue
			}
			s.opts.Metrics.Attempt(rel.String(), "ok")
			if err := s.charge(); err != nil {
				at.Undo()
				return err
			}

			next := append(touched[:len(touched):len(touched)], at.Participants()...)
			err := s.assign(g, d, choices, idx+1, next)
			at.Undo()
			if err != nil {
				return err
			}
			if single {
				break
			}
		}
	}

	return nil
}

// relations returns the interpretations to try for alt, and whether only the
// first committing one may be followed (weighted mode).
func (s *searcher) relations(g *pedigree.Graph, d int, alt observation.Pair) ([]pedigree.Relation, bool) {
	allowed := assign.Interpretations(g, alt.A, alt.B)
	if d != 1 || s.opts.Probabilities == nil {
		return allowed, false
	}
	w, ok := s.opts.Probabilities.Lookup(alt.A, alt.B)
	if !ok {
		return allowed, false
	}
	keep := make(map[pedigree.Relation]bool, len(allowed))
	for _, r := range allowed {
		keep[r] = true
	}
	ranked := make([]pedigree.Relation, 0, len(allowed))
	for _, r := range w.Rank() {
		if keep[r] {
			ranked = append(ranked, r)
		}
	}

	return ranked, true
}

// finish forks a fully assigned graph, validates it, marks and extrapolates
// the records tied in this round, then either emits it (last round) or
// relaxes the next degree and recurses.
func (s *searcher) finish(g *pedigree.Graph, d int, touched []string) error {
	if err := s.charge(); err != nil {
		return err
	}
	c := g.Clone()

	if err := s.validator.Check(c, min(d+1, s.maxDegree)); err != nil {
		s.opts.Metrics.Candidate(metrics.StageRejected)
		s.log.Debug("candidate rejected", zap.Int("degree", d), zap.Error(err))
		return nil
	}
	s.opts.Metrics.Candidate(metrics.StageVerified)

	// Mark the records tied in this round.
	var grow []string
	for _, id := range touched {
		n, ok := c.Mutable(id)
		if !ok {
			continue
		}
		n.Occupied = true
		if !n.HasParents() {
			grow = append(grow, id)
		}
	}
	c.Refresh()

	if d >= s.maxDegree {
		s.opts.Metrics.Candidate(metrics.StageEmitted)
		if !s.emit(c) {
			return errStop
		}
		return nil
	}

	if _, err := extrapolate.All(c, grow); err != nil {
		return err
	}
	next := s.relax(c, d)
	if d == 1 && s.spawn != nil {
		return s.spawn(c, next)
	}

	return s.round(c, d+1, next)
}
