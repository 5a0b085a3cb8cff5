// SPDX-License-Identifier: MIT

// Package pedigree defines the Individual record and the arena-backed Graph
// that owns every record reachable from a working set of individuals.
//
// All "pointers" between records (mother, father, children) are ids looked up
// in the owning Graph, never Go pointers between records. Deep cloning is
// therefore a mechanical copy of the arena, and records are never shared
// between two live graphs.
//
// This file declares Individual, Graph, the sentinel errors, and the New
// constructor.
//
// Errors:
//
//	ErrEmptyID              - an individual has an empty id.
//	ErrDuplicateID          - two individuals share an id.
//	ErrFemalePaternalMarker - a female carries a paternal marker.
//	ErrMotherNotFemale      - a mother reference names a male.
//	ErrFatherNotMale        - a father reference names a female.
//	ErrHalfParentPair       - exactly one of mother/father is set.
//	ErrUnknownParent        - a parent reference names no individual.
//	ErrParentCycle          - the parent→child relation contains a cycle.
//	ErrNodeNotFound         - an operation referenced a missing id.
package pedigree

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction-time invariant violations.
var (
	// ErrEmptyID indicates an Individual with an empty ID.
	ErrEmptyID = errors.New("pedigree: individual id is empty")

	// ErrDuplicateID indicates two Individuals with the same ID.
	ErrDuplicateID = errors.New("pedigree: duplicate individual id")

	// ErrFemalePaternalMarker indicates a female carrying a paternal marker.
	ErrFemalePaternalMarker = errors.New("pedigree: female carries a paternal marker")

	// ErrMotherNotFemale indicates a mother reference that points at a male.
	ErrMotherNotFemale = errors.New("pedigree: mother is not female")

	// ErrFatherNotMale indicates a father reference that points at a female.
	ErrFatherNotMale = errors.New("pedigree: father is not male")

	// ErrHalfParentPair indicates a record with a mother but no father or vice versa.
	ErrHalfParentPair = errors.New("pedigree: parent pair must name both mother and father")

	// ErrUnknownParent indicates a parent reference to an id absent from the input.
	ErrUnknownParent = errors.New("pedigree: parent not found")

	// ErrParentCycle indicates that the parent→child relation is not acyclic.
	ErrParentCycle = errors.New("pedigree: parent cycle")

	// ErrNodeNotFound indicates an operation referenced a non-existent id.
	ErrNodeNotFound = errors.New("pedigree: node not found")
)

// Relation is one concrete interpretation of a first-degree tie between an
// ordered pair (src, dst).
type Relation int

const (
	// Sibling makes src and dst full siblings.
	Sibling Relation = iota
	// ParentOf makes src a parent of dst.
	ParentOf
	// ChildOf makes src a child of dst.
	ChildOf
)

// String returns the lower-case relation name used in logs and metrics.
func (r Relation) String() string {
	switch r {
	case Sibling:
		return "sibling"
	case ParentOf:
		return "parent"
	case ChildOf:
		return "child"
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// Individual is a single person in a pedigree.
//
// Markers are opaque lineage tokens; the empty string means unknown.
// Mother and Father are either both set or both empty.
type Individual struct {
	// ID uniquely identifies the individual within its Graph.
	ID string

	// Female is the sex of the individual (false means male).
	Female bool

	// Maternal is the maternal-lineage marker (mtDNA-like).
	Maternal string

	// Paternal is the paternal-lineage marker (Y-like); always empty for females.
	Paternal string

	// Age is an informational hint; 0 means unknown.
	Age int

	// Occupied reports whether the record is a resolved individual rather than a free slot.
	Occupied bool

	// Given reports whether the record came from the original input.
	Given bool

	// Mother and Father are parent ids, or empty when the record has no parent pair.
	Mother string
	Father string

	// Children holds the ids of the records naming this one as a parent.
	// Insertion order is kept; the slice is treated as a set.
	Children []string
}

// HasParents reports whether the record carries a parent pair.
func (n *Individual) HasParents() bool {
	return n.Mother != "" || n.Father != ""
}

// HasChild reports whether id is listed among the record's children.
func (n *Individual) HasChild(id string) bool {
	for _, c := range n.Children {
		if c == id {
			return true
		}
	}

	return false
}

// copyIndividual returns a deep copy of n (children slice included).
func copyIndividual(n *Individual) *Individual {
	cp := *n
	if n.Children != nil {
		cp.Children = make([]string, len(n.Children))
		copy(cp.Children, n.Children)
	}

	return &cp
}

// Graph owns the set of Individual records of one pedigree candidate.
//
// A Graph is mutated in place by a single search branch and cloned whenever
// the branch forks. It performs no locking: concurrent branches each own
// their own Graph.
type Graph struct {
	// Storage
	nodes map[string]*Individual // id → record

	// nextPlaceholder is the placeholder id counter; carried over by Clone.
	nextPlaceholder uint64
}

// New builds a Graph from a list of individuals.
//
// Records are copied; the caller keeps ownership of its slice. Children lists
// are derived from the Mother/Father fields, so any Children supplied on the
// input records are ignored.
//
// Complexity: O(V) plus an O(V) acyclicity check.
func New(individuals ...*Individual) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*Individual, len(individuals))}

	// 1) Copy records and enforce per-record invariants.
	for _, in := range individuals {
		if in == nil || in.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := g.nodes[in.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, in.ID)
		}
		if in.Female && in.Paternal != "" {
			return nil, fmt.Errorf("%w: %q", ErrFemalePaternalMarker, in.ID)
		}
		if (in.Mother == "") != (in.Father == "") {
			return nil, fmt.Errorf("%w: %q", ErrHalfParentPair, in.ID)
		}
		cp := copyIndividual(in)
		cp.Children = nil
		g.nodes[in.ID] = cp
	}

	// 2) Resolve parent references and derive children lists.
	for _, id := range g.IDs() {
		n := g.nodes[id]
		if !n.HasParents() {
			continue
		}
		mother, ok := g.nodes[n.Mother]
		if !ok {
			return nil, fmt.Errorf("%w: mother %q of %q", ErrUnknownParent, n.Mother, id)
		}
		father, ok := g.nodes[n.Father]
		if !ok {
			return nil, fmt.Errorf("%w: father %q of %q", ErrUnknownParent, n.Father, id)
		}
		if !mother.Female {
			return nil, fmt.Errorf("%w: %q (mother of %q)", ErrMotherNotFemale, mother.ID, id)
		}
		if father.Female {
			return nil, fmt.Errorf("%w: %q (father of %q)", ErrFatherNotMale, father.ID, id)
		}
		mother.Children = append(mother.Children, id)
		father.Children = append(father.Children, id)
	}

	// 3) Reject cyclic parentage.
	if !g.Acyclic() {
		return nil, ErrParentCycle
	}

	return g, nil
}
