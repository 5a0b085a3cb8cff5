// SPDX-License-Identifier: MIT

// Package prune rejects candidate pedigrees whose structure implies
// relationships between given individuals that the observations do not state.
//
// For every degree level the Validator keeps, per given id, the set of ids it
// was stated to relate to at exactly that degree. A graph passes when every
// given relative computed from the graph at a checked degree appears in the
// matching stated set. Inferred placeholders are never checked, and only
// relatives that are themselves given count: a placeholder has no
// observations to disagree with.
package prune

import (
	"fmt"

	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
)

// Violation describes the first disagreement found by Check.
type Violation struct {
	ID       string // given individual being checked
	Relative string // given relative found in the graph
	Degree   int    // degree found in the graph
}

// Error implements error.
func (v *Violation) Error() string {
	return fmt.Sprintf("prune: %s and %s are degree-%d relatives but were not observed so", v.ID, v.Relative, v.Degree)
}

// Validator checks graphs against one observation set.
type Validator struct {
	stated map[int]map[string]map[string]bool // degree → id → stated partners
}

// New indexes obs for validation. obs is not retained.
func New(obs observation.Set) *Validator {
	v := &Validator{stated: make(map[int]map[string]map[string]bool, len(obs))}
	for _, d := range obs.Degrees() {
		v.stated[d] = obs.Stated(d)
	}

	return v
}

// Stated reports whether a and b were observed at degree.
func (v *Validator) Stated(a, b string, degree int) bool {
	return v.stated[degree][a][b]
}

// Check returns nil when, for every given node of g and every degree
// 1..upTo, each given relative at that degree was stated at that degree.
// Otherwise it returns the first *Violation in id order.
//
// Complexity: O(G·(V + C)) for G given nodes.
func (v *Validator) Check(g *pedigree.Graph, upTo int) error {
	if upTo < 1 {
		return nil
	}
	given := g.Given()
	for _, id := range given {
		rel := g.RelativesWithin(id, upTo)
		for _, other := range given {
			d, ok := rel[other]
			if !ok || other == id {
				continue
			}
			if !v.Stated(id, other, d) {
				return &Violation{ID: id, Relative: other, Degree: d}
			}
		}
	}

	return nil
}

// Valid is Check reduced to a boolean.
func (v *Validator) Valid(g *pedigree.Graph, upTo int) bool {
	return v.Check(g, upTo) == nil
}
