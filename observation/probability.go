// SPDX-License-Identifier: MIT

package observation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kinship/pedigree"
)

// Weights are the relative likelihoods of the three first-degree
// interpretations of a stated pair (A, B): full siblings, A parent of B,
// A child of B.
type Weights struct {
	Sibling  float64
	ParentOf float64
	ChildOf  float64
}

// Probabilities maps a stated pair, in the order it was written, to its weights.
type Probabilities map[Pair]Weights

// Set records the weights for (a, b). Negative weights are rejected.
func (p Probabilities) Set(a, b string, w Weights) error {
	if w.Sibling < 0 || w.ParentOf < 0 || w.ChildOf < 0 {
		return fmt.Errorf("%w: negative weight for %s-%s", ErrBadProbabilities, a, b)
	}
	p[Pair{A: a, B: b}] = w

	return nil
}

// Lookup returns the weights for (src, dst) expressed from src's point of
// view. A row written as (dst, src) is mirrored: its ParentOf and ChildOf
// weights swap.
func (p Probabilities) Lookup(src, dst string) (Weights, bool) {
	if w, ok := p[Pair{A: src, B: dst}]; ok {
		return w, true
	}
	if w, ok := p[Pair{A: dst, B: src}]; ok {
		return Weights{Sibling: w.Sibling, ParentOf: w.ChildOf, ChildOf: w.ParentOf}, true
	}

	return Weights{}, false
}

// Rank orders relations by descending weight, dropping zero weights. Ties
// keep the order sibling, parent, child.
func (w Weights) Rank() []pedigree.Relation {
	type entry struct {
		rel    pedigree.Relation
		weight float64
	}
	all := []entry{
		{pedigree.Sibling, w.Sibling},
		{pedigree.ParentOf, w.ParentOf},
		{pedigree.ChildOf, w.ChildOf},
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].weight > all[j].weight })

	out := make([]pedigree.Relation, 0, len(all))
	for _, e := range all {
		if e.weight > 0 {
			out = append(out, e.rel)
		}
	}

	return out
}
