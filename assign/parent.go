// SPDX-License-Identifier: MIT

package assign

import (
	"github.com/katalvlaran/kinship/extrapolate"
	"github.com/katalvlaran/kinship/pedigree"
)

// ParentChild makes parentID the mother or father (by its sex) of childID.
//
// Rules, in order:
//  1. parentID is already a parent of childID: success, no mutation.
//  2. childID is a parent (or any ancestor) of parentID: reject, cycle.
//  3. The matching slot of childID holds a different occupied record: reject.
//  4. parentID descends from a child of the placeholder being replaced: reject, cycle.
//
// On success every child of the replaced placeholder becomes a child of
// parentID, and the maternal or paternal line through the new edge is unified:
// unknown markers take the known value, conflicting known markers reject.
//
// If childID has no parent pair yet, one is synthesized inside the attempt.
func ParentChild(g *pedigree.Graph, childID, parentID string) *Attempt {
	a := begin(g, pedigree.ChildOf)

	child, ok := g.Node(childID)
	if !ok {
		return a.reject(ReasonUnknown)
	}
	parent, ok := g.Node(parentID)
	if !ok {
		return a.reject(ReasonUnknown)
	}
	if childID == parentID {
		return a.reject(ReasonCycle)
	}

	// Rule 1: already satisfied.
	if child.Mother == parentID || child.Father == parentID {
		return a.accept(childID, parentID)
	}

	// Rule 2: the child is above the parent.
	if parent.Mother == childID || parent.Father == childID || g.Descends(parentID, childID) {
		return a.reject(ReasonCycle)
	}

	// Give the child a parent pair to manipulate.
	if !child.HasParents() {
		if _, err := extrapolate.Parents(a.j, childID); err != nil {
			return a.reject(ReasonUnknown)
		}
		child, _ = g.Node(childID)
	}

	slot := child.Father
	if parent.Female {
		slot = child.Mother
	}
	cur, ok := g.Node(slot)
	if !ok {
		return a.reject(ReasonUnknown)
	}

	// Rule 3: two distinct mothers/fathers.
	if cur.Occupied {
		return a.reject(ReasonOccupied)
	}

	// Rule 4: no sibling-to-be may be an ancestor of the new parent.
	for _, c := range cur.Children {
		if c == parentID || g.Descends(parentID, c) {
			return a.reject(ReasonCycle)
		}
	}

	moved := append([]string{parentID}, cur.Children...)
	if r := absorb(a.j, slot, parentID); r != ReasonNone {
		return a.reject(r)
	}
	if !g.Acyclic(parentID) {
		return a.reject(ReasonCycle)
	}
	if r := unify(a.j, moved...); r != ReasonNone {
		return a.reject(r)
	}

	return a.accept(childID, parentID)
}
