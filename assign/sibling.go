// SPDX-License-Identifier: MIT

package assign

import (
	"github.com/katalvlaran/kinship/extrapolate"
	"github.com/katalvlaran/kinship/pedigree"
)

// Sibling makes aID and bID full siblings sharing one mother and one father.
//
// Rules, in order:
//  1. Either descends from the other: reject, cycle.
//  2. Both already share the same parent pair: success, no mutation.
//  3. Among the four parent slots, more than two distinct occupied records,
//     or two occupied records of the same sex: reject, over-constrained.
//  4. Occupied parents are kept. Between two free placeholders the one with
//     more ancestry wins (an occupied parent beats any parents, which beat
//     none); on a tie the father slot prefers the male sibling's father and
//     the mother slot prefers aID's mother.
//  5. The superseded placeholders are absorbed into the kept parents, the
//     result must stay acyclic and every affected line must agree on markers.
//
// Missing parent pairs are synthesized inside the attempt.
func Sibling(g *pedigree.Graph, aID, bID string) *Attempt {
	a := begin(g, pedigree.Sibling)

	if !g.Has(aID) || !g.Has(bID) {
		return a.reject(ReasonUnknown)
	}
	if aID == bID || g.Related(aID, bID) {
		return a.reject(ReasonCycle)
	}

	for _, id := range []string{aID, bID} {
		if _, err := extrapolate.Parents(a.j, id); err != nil {
			return a.reject(ReasonUnknown)
		}
	}
	left, _ := g.Node(aID)
	right, _ := g.Node(bID)

	// Rule 2: already siblings.
	if left.Mother == right.Mother && left.Father == right.Father {
		return a.accept(aID, bID, left.Mother, left.Father)
	}

	// Rule 3: collect distinct occupied parents.
	var mothers, fathers []string
	seen := make(map[string]bool, 4)
	for _, id := range []string{left.Mother, left.Father, right.Mother, right.Father} {
		if seen[id] || !occupied(g, id) {
			continue
		}
		seen[id] = true
		n, _ := g.Node(id)
		if n.Female {
			mothers = append(mothers, id)
		} else {
			fathers = append(fathers, id)
		}
	}
	if len(mothers)+len(fathers) > 2 || len(mothers) > 1 || len(fathers) > 1 {
		return a.reject(ReasonOverConstrained)
	}

	// Rule 4: pick the merged pair.
	mother := left.Mother
	switch {
	case len(mothers) == 1:
		mother = mothers[0]
	case ancestry(g, right.Mother) > ancestry(g, left.Mother):
		mother = right.Mother
	}
	father := left.Father
	lf, rf := ancestry(g, left.Father), ancestry(g, right.Father)
	switch {
	case len(fathers) == 1:
		father = fathers[0]
	case rf != lf:
		if rf > lf {
			father = right.Father
		}
	case left.Female && !right.Female:
		father = right.Father
	}

	// Rule 5: fold the superseded placeholders into the merged pair.
	oldMothers := []string{left.Mother, right.Mother}
	oldFathers := []string{left.Father, right.Father}
	for _, old := range oldMothers {
		if r := absorb(a.j, old, mother); r != ReasonNone {
			return a.reject(r)
		}
	}
	for _, old := range oldFathers {
		if r := absorb(a.j, old, father); r != ReasonNone {
			return a.reject(r)
		}
	}
	if !g.Acyclic(mother, father) {
		return a.reject(ReasonCycle)
	}
	if r := unify(a.j, aID, bID, mother, father); r != ReasonNone {
		return a.reject(r)
	}

	return a.accept(aID, bID, mother, father)
}

// ancestry ranks how much a placeholder parent already knows about its own
// parents: 2 with an occupied parent, 1 with placeholder parents, 0 without.
func ancestry(g *pedigree.Graph, id string) int {
	n, ok := g.Node(id)
	if !ok || !n.HasParents() {
		return 0
	}
	if occupied(g, n.Mother) || occupied(g, n.Father) {
		return 2
	}

	return 1
}
