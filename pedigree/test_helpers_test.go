// SPDX-License-Identifier: MIT

// Package pedigree_test contains fixtures shared by the pedigree tests.

package pedigree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/pedigree"
)

// given returns an occupied, given individual.
func given(id string, female bool) *pedigree.Individual {
	return &pedigree.Individual{ID: id, Female: female, Occupied: true, Given: true}
}

// child returns a given individual with a parent pair.
func child(id string, female bool, mother, father string) *pedigree.Individual {
	n := given(id, female)
	n.Mother, n.Father = mother, father

	return n
}

// family builds three generations:
//
//	GM ═ GF            F
//	   ├── M ══════════╡
//	   └── U ═ W       ├── A, B
//	           └── C   └── (H is M's son with Y2)
func family(t *testing.T) *pedigree.Graph {
	t.Helper()
	g, err := pedigree.New(
		given("GM", true), given("GF", false),
		child("M", true, "GM", "GF"),
		child("U", false, "GM", "GF"),
		given("W", true), given("F", false), given("Y2", false),
		child("A", false, "M", "F"),
		child("B", true, "M", "F"),
		child("C", true, "W", "U"),
		child("H", false, "M", "Y2"),
	)
	require.NoError(t, err)

	return g
}
