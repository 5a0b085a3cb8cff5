// SPDX-License-Identifier: MIT

package search

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/kinship/assign"
	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
)

// relax rewrites the degree d+1 observations still unresolved on g into
// choices over first-degree candidate pairs.
//
// For an observation (s, t) at degree k = d+1, a candidate ties a degree-d
// relative r of one end to the other end: (r, t) for r in Relatives(s, d) and
// (r, s) for r in Relatives(t, d). Given records are never candidates (their
// first-degree ties are fixed by the observations), nor are records already
// related to the other end. A candidate is kept only if some interpretation
// commits and leaves s and t at degree k. Observations already at degree k are
// dropped, and so are observations without any candidate: they pass through
// unresolved.
func (s *searcher) relax(g *pedigree.Graph, d int) []choice {
	k := d + 1
	var out []choice
	for _, p := range s.obs.At(k) {
		c := choice{obs: p, degree: k}
		if c.satisfied(g) {
			continue
		}
		c.alts = candidates(g, c, d)
		if len(c.alts) == 0 {
			s.log.Debug("observation left unresolved",
				zap.Int("degree", k),
				zap.String("a", p.A),
				zap.String("b", p.B),
			)
			continue
		}
		out = append(out, c)
	}

	return out
}

// candidates lists the feasible first-degree pairs serving c on g.
func candidates(g *pedigree.Graph, c choice, d int) []observation.Pair {
	seen := make(map[observation.Pair]bool)
	var out []observation.Pair

	collect := func(end, other string) {
		for _, r := range g.Relatives(end, d) {
			if r == other {
				continue
			}
			if n, ok := g.Node(r); !ok || n.Given {
				continue
			}
			if _, related := g.Degree(r, other, d); related {
				continue
			}
			p := observation.Pair{A: r, B: other}
			if seen[p.Key()] {
				continue
			}
			seen[p.Key()] = true
			if feasible(g, c, p) {
				out = append(out, p)
			}
		}
	}
	collect(c.obs.A, c.obs.B)
	collect(c.obs.B, c.obs.A)

	return out
}

// feasible reports whether some interpretation of p commits on g and places
// the observation of c at its degree. g is left unchanged.
func feasible(g *pedigree.Graph, c choice, p observation.Pair) bool {
	for _, rel := range assign.Interpretations(g, p.A, p.B) {
		at := assign.Apply(g, rel, p.A, p.B)
		ok := at.OK() && c.satisfied(g)
		at.Undo()
		if ok {
			return true
		}
	}

	return false
}
