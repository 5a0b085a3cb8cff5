// SPDX-License-Identifier: MIT

package prune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/observation"
	"github.com/katalvlaran/kinship/pedigree"
	"github.com/katalvlaran/kinship/prune"
)

func member(id string, female bool, mother, father string) *pedigree.Individual {
	return &pedigree.Individual{ID: id, Female: female, Occupied: true, Given: true, Mother: mother, Father: father}
}

// threeSiblings makes A, B, C full siblings under placeholder parents.
func threeSiblings(t *testing.T) *pedigree.Graph {
	t.Helper()
	g, err := pedigree.New(
		&pedigree.Individual{ID: "P", Female: true},
		&pedigree.Individual{ID: "Q"},
		member("A", false, "P", "Q"),
		member("B", false, "P", "Q"),
		member("C", false, "P", "Q"),
	)
	require.NoError(t, err)

	return g
}

// chain makes A the mother of B and B the mother of C.
func chain(t *testing.T) *pedigree.Graph {
	t.Helper()
	g, err := pedigree.New(
		member("A", true, "", ""),
		&pedigree.Individual{ID: "Q1"},
		&pedigree.Individual{ID: "Q2"},
		member("B", true, "A", "Q1"),
		member("C", true, "B", "Q2"),
	)
	require.NoError(t, err)

	return g
}

func TestCheck_UnstatedFirstDegree(t *testing.T) {
	obs := observation.Set{}
	obs.Add("A", "B", 1)
	obs.Add("B", "C", 1)
	v := prune.New(obs)

	err := v.Check(threeSiblings(t), 1)
	require.Error(t, err)

	var viol *prune.Violation
	require.ErrorAs(t, err, &viol)
	assert.Equal(t, prune.Violation{ID: "A", Relative: "C", Degree: 1}, *viol)
	assert.Contains(t, err.Error(), "A and C are degree-1 relatives")
	assert.False(t, v.Valid(threeSiblings(t), 1))
}

func TestCheck_Horizon(t *testing.T) {
	obs := observation.Set{}
	obs.Add("A", "B", 1)
	obs.Add("B", "C", 1)
	v := prune.New(obs)
	g := chain(t)

	// A–C is a grandmother tie: invisible at degree 1.
	assert.NoError(t, v.Check(g, 1))

	var viol *prune.Violation
	require.ErrorAs(t, v.Check(g, 2), &viol)
	assert.Equal(t, 2, viol.Degree)

	// Stating it makes the graph pass.
	obs.Add("C", "A", 2)
	assert.NoError(t, prune.New(obs).Check(g, 2))

	assert.NoError(t, v.Check(g, 0))
}

func TestCheck_WrongDegree(t *testing.T) {
	obs := observation.Set{}
	obs.Add("A", "B", 2)
	obs.Add("B", "C", 1)
	v := prune.New(obs)

	var viol *prune.Violation
	require.ErrorAs(t, v.Check(chain(t), 1), &viol)
	assert.Equal(t, "A", viol.ID)
	assert.Equal(t, "B", viol.Relative)
}

func TestStated(t *testing.T) {
	obs := observation.Set{}
	obs.Add("A", "B", 1)
	v := prune.New(obs)

	assert.True(t, v.Stated("A", "B", 1))
	assert.True(t, v.Stated("B", "A", 1))
	assert.False(t, v.Stated("A", "B", 2))
	assert.False(t, v.Stated("A", "C", 1))
}
