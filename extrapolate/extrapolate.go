// SPDX-License-Identifier: MIT

// Package extrapolate synthesizes placeholder parents for individuals that
// have none, so the assignment engine always has a mother and a father slot to
// manipulate.
//
// A synthesized mother carries the child's maternal marker; a synthesized
// father carries the child's paternal marker when the child is male. Both are
// unoccupied and not given. Extrapolation is idempotent: a record that already
// has parents is left untouched.
package extrapolate

import (
	"fmt"

	"github.com/katalvlaran/kinship/pedigree"
)

// Parents gives id a placeholder parent pair unless it already has one.
// It reports whether placeholders were created.
func Parents(m pedigree.Mutator, id string) (bool, error) {
	n, ok := m.Mutable(id)
	if !ok {
		return false, fmt.Errorf("extrapolate: %w: %q", pedigree.ErrNodeNotFound, id)
	}
	if n.HasParents() {
		return false, nil
	}

	mother := m.Placeholder(true)
	mother.Maternal = n.Maternal
	mother.Children = []string{id}

	father := m.Placeholder(false)
	if !n.Female {
		father.Paternal = n.Paternal
	}
	father.Children = []string{id}

	n.Mother, n.Father = mother.ID, father.ID

	return true, nil
}

// All extrapolates every id in order and returns how many received parents.
func All(m pedigree.Mutator, ids []string) (int, error) {
	created := 0
	for _, id := range ids {
		ok, err := Parents(m, id)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}
