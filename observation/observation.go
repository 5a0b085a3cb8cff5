// SPDX-License-Identifier: MIT

// Package observation holds the pairwise kinship-degree observations that a
// pedigree search must satisfy, plus the optional per-pair probability table.
//
// A Set is consumed read-only by the search; every branch derives its own
// working copies.
package observation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/kinship/pedigree"
)

// Sentinel errors reported before any search begins.
var (
	// ErrBadDegree indicates a degree below 1.
	ErrBadDegree = errors.New("observation: degree must be at least 1")

	// ErrUnknownIndividual indicates a pair naming an id absent from the graph.
	ErrUnknownIndividual = errors.New("observation: unknown individual")

	// ErrSelfPair indicates a pair relating an individual to itself.
	ErrSelfPair = errors.New("observation: individual paired with itself")

	// ErrConflictingDegrees indicates the same pair stated at two degrees.
	ErrConflictingDegrees = errors.New("observation: pair stated at more than one degree")

	// ErrBadProbabilities indicates a malformed probability row.
	ErrBadProbabilities = errors.New("observation: invalid probability row")
)

// Pair is an unordered observation between two individuals; the order in
// which it was stated is kept because the search visits pairs in input order.
type Pair struct {
	A, B string
}

// Key returns the order-independent form of p.
func (p Pair) Key() Pair {
	if p.B < p.A {
		return Pair{A: p.B, B: p.A}
	}

	return p
}

// String renders p as "A-B".
func (p Pair) String() string {
	return p.A + "-" + p.B
}

// Set maps a kinship degree to the pairs observed at that degree.
type Set map[int][]Pair

// Add appends an observation.
func (s Set) Add(a, b string, degree int) {
	s[degree] = append(s[degree], Pair{A: a, B: b})
}

// At returns the pairs observed at degree, in input order.
func (s Set) At(degree int) []Pair {
	return s[degree]
}

// Degrees returns the degrees present, ascending.
func (s Set) Degrees() []int {
	ds := make([]int, 0, len(s))
	for d := range s {
		ds = append(ds, d)
	}
	sort.Ints(ds)

	return ds
}

// MaxDegree returns the largest degree present, or 0 for an empty set.
func (s Set) MaxDegree() int {
	m := 0
	for d := range s {
		if d > m {
			m = d
		}
	}

	return m
}

// Len returns the number of observations across all degrees.
func (s Set) Len() int {
	n := 0
	for _, ps := range s {
		n += len(ps)
	}

	return n
}

// Stated returns, for every individual mentioned at degree, the set of ids it
// was stated to relate to at that degree.
func (s Set) Stated(degree int) map[string]map[string]bool {
	out := make(map[string]map[string]bool)
	link := func(a, b string) {
		if out[a] == nil {
			out[a] = make(map[string]bool)
		}
		out[a][b] = true
	}
	for _, p := range s[degree] {
		link(p.A, p.B)
		link(p.B, p.A)
	}

	return out
}

// Validate checks every observation against g: degrees are positive, both ids
// exist, no individual is paired with itself, and no pair is stated at two
// different degrees. Repeating a pair at the same degree is tolerated.
func (s Set) Validate(g *pedigree.Graph) error {
	seen := make(map[Pair]int)
	for _, d := range s.Degrees() {
		if d < 1 {
			return fmt.Errorf("%w: %d", ErrBadDegree, d)
		}
		for _, p := range s[d] {
			if p.A == p.B {
				return fmt.Errorf("%w: %q", ErrSelfPair, p.A)
			}
			for _, id := range []string{p.A, p.B} {
				if !g.Has(id) {
					return fmt.Errorf("%w: %q (degree %d pair %s)", ErrUnknownIndividual, id, d, p)
				}
			}
			if prev, ok := seen[p.Key()]; ok && prev != d {
				return fmt.Errorf("%w: %s at %d and %d", ErrConflictingDegrees, p, prev, d)
			}
			seen[p.Key()] = d
		}
	}

	return nil
}
