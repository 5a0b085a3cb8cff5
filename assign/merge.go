// SPDX-License-Identifier: MIT

package assign

import "github.com/katalvlaran/kinship/pedigree"

// absorb folds the unoccupied placeholder from into into: from's children
// move to into, and from's own parent pair is adopted by into when into has
// none. A placeholder whose parent pair differs from into's is dropped only if
// that pair is entirely unoccupied.
func absorb(j *pedigree.Journal, fromID, intoID string) Reason {
	if fromID == intoID {
		return ReasonNone
	}
	from, ok := j.Mutable(fromID)
	if !ok {
		return ReasonUnknown
	}
	into, ok := j.Mutable(intoID)
	if !ok {
		return ReasonUnknown
	}
	if from.Occupied {
		return ReasonOccupied
	}
	if from.Female != into.Female {
		return ReasonSex
	}

	// 1) Children move over.
	for _, c := range from.Children {
		child, ok := j.Mutable(c)
		if !ok {
			continue
		}
		if from.Female {
			child.Mother = intoID
		} else {
			child.Father = intoID
		}
		if !into.HasChild(c) {
			into.Children = append(into.Children, c)
		}
	}
	from.Children = nil

	// 2) Ancestry of the placeholder.
	if !from.HasParents() {
		return ReasonNone
	}
	oldMother, oldFather := from.Mother, from.Father
	from.Mother, from.Father = "", ""
	switch {
	case !into.HasParents():
		into.Mother, into.Father = oldMother, oldFather
		replaceChild(j, oldMother, fromID, intoID)
		replaceChild(j, oldFather, fromID, intoID)
	case into.Mother == oldMother && into.Father == oldFather:
		removeChild(j, oldMother, fromID)
		removeChild(j, oldFather, fromID)
	case !occupied(j.Graph(), oldMother) && !occupied(j.Graph(), oldFather):
		removeChild(j, oldMother, fromID)
		removeChild(j, oldFather, fromID)
	default:
		return ReasonOverConstrained
	}

	return ReasonNone
}

// occupied reports whether id names an occupied record.
func occupied(g *pedigree.Graph, id string) bool {
	n, ok := g.Node(id)

	return ok && n.Occupied
}

// removeChild drops child from parent's children list.
func removeChild(j *pedigree.Journal, parentID, child string) {
	p, ok := j.Mutable(parentID)
	if !ok {
		return
	}
	kept := p.Children[:0:0]
	for _, c := range p.Children {
		if c != child {
			kept = append(kept, c)
		}
	}
	p.Children = kept
}

// replaceChild swaps old for repl in parent's children list, keeping the list
// duplicate-free.
func replaceChild(j *pedigree.Journal, parentID, old, repl string) {
	p, ok := j.Mutable(parentID)
	if !ok {
		return
	}
	if p.HasChild(repl) {
		removeChild(j, parentID, old)
		return
	}
	for i, c := range p.Children {
		if c == old {
			p.Children[i] = repl
		}
	}
}

// unify makes every maternal and paternal line through ids agree on a single
// marker. Unknown markers take the line's known value; two different known
// values on one line reject the attempt.
func unify(j *pedigree.Journal, ids ...string) Reason {
	g := j.Graph()
	doneM := make(map[string]bool)
	doneP := make(map[string]bool)

	for _, id := range ids {
		if id == "" || doneM[id] {
			continue
		}
		line := g.MaternalLine(id)
		if r := fill(j, line, doneM, func(n *pedigree.Individual) *string { return &n.Maternal }); r != ReasonNone {
			return r
		}
	}
	for _, id := range ids {
		if id == "" || doneP[id] {
			continue
		}
		line := g.PaternalLine(id)
		if r := fill(j, line, doneP, func(n *pedigree.Individual) *string { return &n.Paternal }); r != ReasonNone {
			return r
		}
	}

	return ReasonNone
}

// fill checks one line and writes its known marker into every unknown slot.
func fill(j *pedigree.Journal, line []string, done map[string]bool, field func(*pedigree.Individual) *string) Reason {
	g := j.Graph()
	known := ""
	for _, id := range line {
		done[id] = true
		n, _ := g.Node(id)
		v := *field(n)
		if v == "" {
			continue
		}
		if known != "" && v != known {
			return ReasonMarker
		}
		known = v
	}
	if known == "" {
		return ReasonNone
	}
	for _, id := range line {
		n, _ := g.Node(id)
		if *field(n) != "" {
			continue
		}
		live, _ := j.Mutable(id)
		*field(live) = known
	}

	return ReasonNone
}
