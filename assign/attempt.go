// SPDX-License-Identifier: MIT

// Package assign implements the reversible relationship-assignment engine.
//
// Every operation returns an *Attempt. A successful attempt leaves its
// mutation applied so the caller can continue nested work, and the caller
// must call Undo afterwards:
//
//	at := assign.Sibling(g, "A", "B")
//	if at.OK() {
//		explore(g)
//	}
//	at.Undo()
//
// A rejected attempt has already restored the graph. Undo is always safe and
// restores the exact prior state of every touched record, including the
// placeholder counter, so rolled-back graphs compare equal to their
// pre-attempt selves.
//
// Rejection is an expected search outcome, not an error: OK() reports it and
// Reason() says why.
package assign

import "github.com/katalvlaran/kinship/pedigree"

// Reason explains why an attempt was rejected.
type Reason string

// Rejection reasons.
const (
	ReasonNone            Reason = ""
	ReasonUnknown         Reason = "unknown_node"
	ReasonCycle           Reason = "cycle"
	ReasonOccupied        Reason = "occupied_slot"
	ReasonOverConstrained Reason = "over_constrained"
	ReasonMarker          Reason = "marker_conflict"
	ReasonSex             Reason = "sex_mismatch"
)

// Attempt is one transactional assignment.
type Attempt struct {
	j            *pedigree.Journal
	relation     pedigree.Relation
	ok           bool
	reason       Reason
	participants []string
}

// OK reports whether the assignment committed.
func (a *Attempt) OK() bool { return a.ok }

// Reason reports why the assignment was rejected (ReasonNone when OK).
func (a *Attempt) Reason() Reason { return a.reason }

// Relation reports which interpretation was attempted.
func (a *Attempt) Relation() pedigree.Relation { return a.relation }

// Participants returns the records the assignment ties together: both
// endpoints and the parents they now share or gained. Empty when rejected.
func (a *Attempt) Participants() []string {
	out := make([]string, len(a.participants))
	copy(out, a.participants)

	return out
}

// Undo reverts the assignment. Safe to call more than once.
func (a *Attempt) Undo() {
	a.j.Rollback()
}

// begin opens an attempt on g.
func begin(g *pedigree.Graph, rel pedigree.Relation) *Attempt {
	return &Attempt{j: g.Begin(), relation: rel}
}

// reject rolls the journal back and marks the attempt failed.
func (a *Attempt) reject(r Reason) *Attempt {
	a.j.Rollback()
	a.ok = false
	a.reason = r
	a.participants = nil

	return a
}

// accept marks the attempt committed.
func (a *Attempt) accept(participants ...string) *Attempt {
	a.ok = true
	a.reason = ReasonNone
	a.participants = participants

	return a
}

// Apply runs the interpretation rel for the ordered pair (src, dst).
func Apply(g *pedigree.Graph, rel pedigree.Relation, src, dst string) *Attempt {
	switch rel {
	case pedigree.Sibling:
		return Sibling(g, src, dst)
	case pedigree.ParentOf:
		return withRelation(ParentChild(g, dst, src), rel)
	default:
		return withRelation(ParentChild(g, src, dst), rel)
	}
}

func withRelation(a *Attempt, rel pedigree.Relation) *Attempt {
	a.relation = rel

	return a
}
