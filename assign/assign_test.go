// SPDX-License-Identifier: MIT

package assign_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinship/assign"
	"github.com/katalvlaran/kinship/pedigree"
)

var allRelations = []pedigree.Relation{pedigree.Sibling, pedigree.ParentOf, pedigree.ChildOf}

// person returns a given, occupied individual.
func person(id string, female bool, mt, y string) *pedigree.Individual {
	return &pedigree.Individual{ID: id, Female: female, Maternal: mt, Paternal: y, Occupied: true, Given: true}
}

func build(t *testing.T, in ...*pedigree.Individual) *pedigree.Graph {
	t.Helper()
	g, err := pedigree.New(in...)
	require.NoError(t, err)

	return g
}

// consistent checks the structural invariants every committed state keeps.
func consistent(t *testing.T, g *pedigree.Graph) {
	t.Helper()
	require.True(t, g.Acyclic(), "parentage must stay acyclic")
	for _, n := range g.Nodes() {
		if n.Female {
			assert.Empty(t, n.Paternal, "%s: female with paternal marker", n.ID)
		}
		assert.Equal(t, n.Mother == "", n.Father == "", "%s: half parent pair", n.ID)
		if n.HasParents() {
			m, f, ok := g.Parents(n.ID)
			require.True(t, ok)
			require.NotNil(t, m, "%s: mother %s missing", n.ID, n.Mother)
			require.NotNil(t, f, "%s: father %s missing", n.ID, n.Father)
			assert.True(t, m.Female)
			assert.False(t, f.Female)
			assert.True(t, m.HasChild(n.ID))
			assert.True(t, f.HasChild(n.ID))
		}
		seen := map[string]bool{}
		for _, c := range n.Children {
			assert.False(t, seen[c], "%s: duplicate child %s", n.ID, c)
			seen[c] = true
			kid, ok := g.Node(c)
			require.True(t, ok, "%s: child %s missing", n.ID, c)
			assert.True(t, kid.Mother == n.ID || kid.Father == n.ID)
		}
	}
}

func TestInterpretations(t *testing.T) {
	S, P, C := pedigree.Sibling, pedigree.ParentOf, pedigree.ChildOf
	cases := []struct {
		name string
		a, b *pedigree.Individual
		want []pedigree.Relation
	}{
		{"MalesUnknown", person("A", false, "", ""), person("B", false, "", ""), []pedigree.Relation{S, P, C}},
		{"MalesYConflict", person("A", false, "", "Y1"), person("B", false, "", "Y2"), nil},
		{"MalesMtConflict", person("A", false, "M1", "Y1"), person("B", false, "M2", ""), []pedigree.Relation{P, C}},
		{"FemalesUnknown", person("A", true, "", ""), person("B", true, "", ""), []pedigree.Relation{S, P, C}},
		{"FemalesMtConflict", person("A", true, "M1", ""), person("B", true, "M2", ""), nil},
		{"MotherAndSonUnknown", person("A", true, "", ""), person("B", false, "", ""), []pedigree.Relation{S, P, C}},
		{"MotherAndSonSameMt", person("A", true, "M1", ""), person("B", false, "M1", ""), []pedigree.Relation{S, P}},
		{"DaughterAndFather", person("A", true, "M1", ""), person("B", false, "M2", ""), []pedigree.Relation{C}},
		{"SonAndMotherUnknown", person("A", false, "", ""), person("B", true, "", ""), []pedigree.Relation{S, C, P}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.a, tc.b)
			got := assign.Interpretations(g, "A", "B")
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}

	g := build(t, person("A", false, "", ""))
	assert.Empty(t, assign.Interpretations(g, "A", "ghost"))
}

func TestTwoMales_ThreeInterpretationsCommit(t *testing.T) {
	g := build(t, person("A", false, "", ""), person("B", false, "", ""))
	before := g.Clone()

	for _, rel := range assign.Interpretations(g, "A", "B") {
		at := assign.Apply(g, rel, "A", "B")
		require.True(t, at.OK(), "%s rejected: %s", rel, at.Reason())
		assert.Equal(t, rel, at.Relation())
		assert.True(t, g.IsFirstDegree("A", "B"), rel.String())
		consistent(t, g)

		at.Undo()
		assert.Equal(t, before, g, "undo of %s", rel)
	}
}

func TestTwoFemalesDifferentMt_AllRejected(t *testing.T) {
	g := build(t, person("A", true, "M1", ""), person("B", true, "M2", ""))
	before := g.Clone()

	assert.Empty(t, assign.Interpretations(g, "A", "B"))
	for _, rel := range allRelations {
		at := assign.Apply(g, rel, "A", "B")
		assert.False(t, at.OK(), rel.String())
		assert.Equal(t, assign.ReasonMarker, at.Reason(), rel.String())
		assert.Empty(t, at.Participants())
		assert.Equal(t, before, g, "rejected %s must leave no trace", rel)
	}
}

func TestParentChild_PropagatesMaternalMarker(t *testing.T) {
	g := build(t, person("A", true, "M1", ""), person("B", false, "", ""))

	at := assign.ParentChild(g, "B", "A")
	require.True(t, at.OK())
	assert.Equal(t, []string{"B", "A"}, at.Participants())

	b, _ := g.Node("B")
	assert.Equal(t, "A", b.Mother)
	assert.Equal(t, "M1", b.Maternal)
	consistent(t, g)

	at.Undo()
	b, _ = g.Node("B")
	assert.Empty(t, b.Maternal)
	assert.False(t, b.HasParents())
}

func TestParentChild_PropagatesPaternalMarkerToSons(t *testing.T) {
	g := build(t, person("A", false, "", "Y1"), person("B", false, "", ""), person("D", true, "", ""))

	at := assign.ParentChild(g, "B", "A")
	require.True(t, at.OK())
	b, _ := g.Node("B")
	assert.Equal(t, "Y1", b.Paternal)

	// A daughter stays without a paternal marker.
	at2 := assign.ParentChild(g, "D", "A")
	require.True(t, at2.OK())
	d, _ := g.Node("D")
	assert.Empty(t, d.Paternal)
	// Different mother slots: half-siblings.
	deg, ok := g.Degree("B", "D", 2)
	assert.True(t, ok)
	assert.Equal(t, 2, deg)
	consistent(t, g)

	at2.Undo()
	at.Undo()
}

func TestParentChild_Rejections(t *testing.T) {
	t.Run("Unknown", func(t *testing.T) {
		g := build(t, person("A", true, "", ""))
		assert.Equal(t, assign.ReasonUnknown, assign.ParentChild(g, "ghost", "A").Reason())
		assert.Equal(t, assign.ReasonUnknown, assign.ParentChild(g, "A", "ghost").Reason())
	})

	t.Run("Self", func(t *testing.T) {
		g := build(t, person("A", true, "", ""))
		assert.Equal(t, assign.ReasonCycle, assign.ParentChild(g, "A", "A").Reason())
	})

	t.Run("OccupiedSlot", func(t *testing.T) {
		g := build(t,
			person("A", true, "", ""),
			person("MB", true, "", ""),
			&pedigree.Individual{ID: "FB"},
			&pedigree.Individual{ID: "B", Occupied: true, Given: true, Mother: "MB", Father: "FB"},
		)
		before := g.Clone()
		at := assign.ParentChild(g, "B", "A")
		assert.False(t, at.OK())
		assert.Equal(t, assign.ReasonOccupied, at.Reason())
		assert.Equal(t, before, g)

		// The free father slot is still available.
		at = assign.ParentChild(g, "B", "FB")
		assert.True(t, at.OK(), "already the father")
	})

	t.Run("Cycle", func(t *testing.T) {
		g := build(t, person("A", true, "", ""), person("B", true, "", ""))
		at := assign.ParentChild(g, "B", "A")
		require.True(t, at.OK())

		back := assign.ParentChild(g, "A", "B")
		assert.False(t, back.OK())
		assert.Equal(t, assign.ReasonCycle, back.Reason())

		sib := assign.Sibling(g, "A", "B")
		assert.False(t, sib.OK())
		assert.Equal(t, assign.ReasonCycle, sib.Reason())
		at.Undo()
	})

	t.Run("SiblingBecomingParent", func(t *testing.T) {
		g := build(t, person("A", false, "", ""), person("B", false, "", ""))
		sib := assign.Sibling(g, "A", "B")
		require.True(t, sib.OK())

		at := assign.ParentChild(g, "A", "B")
		assert.False(t, at.OK())
		assert.Equal(t, assign.ReasonCycle, at.Reason())
		sib.Undo()
	})
}

func TestParentChild_AlreadyParent(t *testing.T) {
	g := build(t,
		person("M", true, "", ""), person("F", false, "", ""),
		&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "M", Father: "F"},
	)
	before := g.Clone()

	at := assign.ParentChild(g, "A", "M")
	assert.True(t, at.OK())
	assert.Equal(t, before, g)
}

func TestSibling_AdoptsOccupiedParents(t *testing.T) {
	g := build(t,
		person("MA", true, "M3", ""), person("FA", false, "", "Y3"),
		&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "MA", Father: "FA"},
		person("B", false, "", ""),
	)

	at := assign.Sibling(g, "A", "B")
	require.True(t, at.OK())
	assert.Equal(t, []string{"A", "B", "MA", "FA"}, at.Participants())

	b, _ := g.Node("B")
	assert.Equal(t, "MA", b.Mother)
	assert.Equal(t, "FA", b.Father)
	assert.Equal(t, "M3", b.Maternal)
	assert.Equal(t, "Y3", b.Paternal)
	assert.Equal(t, []string{"B"}, g.FullSiblings("A"))
	consistent(t, g)
}

func TestSibling_FatherFollowsTheSon(t *testing.T) {
	g := build(t, person("D", true, "", ""), person("S", false, "", "Y1"))

	at := assign.Sibling(g, "D", "S")
	require.True(t, at.OK())

	_, father, ok := g.Parents("D")
	require.True(t, ok)
	assert.Equal(t, "Y1", father.Paternal)
	consistent(t, g)
}

// pf1 descends from occupied grandparents, pf2 only from placeholders; the
// merged father must be pf1 whichever sibling comes first.
func TestSibling_KeepsFatherWithAncestry(t *testing.T) {
	g := build(t,
		person("GM", true, "", ""), person("GF", false, "", ""),
		&pedigree.Individual{ID: "pf1", Mother: "GM", Father: "GF"},
		&pedigree.Individual{ID: "qm", Female: true}, &pedigree.Individual{ID: "qf"},
		&pedigree.Individual{ID: "pf2", Mother: "qm", Father: "qf"},
		&pedigree.Individual{ID: "pm1", Female: true}, &pedigree.Individual{ID: "pm2", Female: true},
		&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "pm1", Father: "pf1"},
		&pedigree.Individual{ID: "B", Occupied: true, Given: true, Mother: "pm2", Father: "pf2"},
	)
	before := g.Clone()

	for _, pair := range [][2]string{{"A", "B"}, {"B", "A"}} {
		at := assign.Sibling(g, pair[0], pair[1])
		require.True(t, at.OK(), "Sibling(%s, %s): %s", pair[0], pair[1], at.Reason())

		_, father, ok := g.Parents("B")
		require.True(t, ok)
		assert.Equal(t, "pf1", father.ID)
		assert.Equal(t, []string{"B"}, g.FullSiblings("A"))
		d, ok := g.Degree("B", "GF", 2)
		assert.True(t, ok)
		assert.Equal(t, 2, d)
		consistent(t, g)

		at.Undo()
		require.Equal(t, before, g)
	}
}

// A mother slot with ancestry wins over aID's bare placeholder mother.
func TestSibling_KeepsMotherWithAncestry(t *testing.T) {
	g := build(t,
		person("GM", true, "", ""), person("GF", false, "", ""),
		&pedigree.Individual{ID: "pm2", Female: true, Mother: "GM", Father: "GF"},
		&pedigree.Individual{ID: "pm1", Female: true},
		&pedigree.Individual{ID: "pf1"}, &pedigree.Individual{ID: "pf2"},
		&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "pm1", Father: "pf1"},
		&pedigree.Individual{ID: "B", Occupied: true, Given: true, Mother: "pm2", Father: "pf2"},
	)

	at := assign.Sibling(g, "A", "B")
	require.True(t, at.OK(), at.Reason())
	a, _ := g.Node("A")
	assert.Equal(t, "pm2", a.Mother)
	consistent(t, g)
	at.Undo()
}

func TestSibling_OverConstrained(t *testing.T) {
	t.Run("FourOccupied", func(t *testing.T) {
		g := build(t,
			person("MA", true, "", ""), person("FA", false, "", ""),
			person("MB", true, "", ""), person("FB", false, "", ""),
			&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "MA", Father: "FA"},
			&pedigree.Individual{ID: "B", Occupied: true, Given: true, Mother: "MB", Father: "FB"},
		)
		at := assign.Sibling(g, "A", "B")
		assert.Equal(t, assign.ReasonOverConstrained, at.Reason())
	})

	t.Run("TwoMothers", func(t *testing.T) {
		g := build(t,
			person("MA", true, "", ""), &pedigree.Individual{ID: "FA"},
			person("MB", true, "", ""), &pedigree.Individual{ID: "FB"},
			&pedigree.Individual{ID: "A", Occupied: true, Given: true, Mother: "MA", Father: "FA"},
			&pedigree.Individual{ID: "B", Occupied: true, Given: true, Mother: "MB", Father: "FB"},
		)
		before := g.Clone()
		at := assign.Sibling(g, "A", "B")
		assert.Equal(t, assign.ReasonOverConstrained, at.Reason())
		assert.Equal(t, before, g)
	})
}

func TestSibling_AlreadySiblings(t *testing.T) {
	g := build(t, person("A", false, "", ""), person("B", true, "", ""))
	first := assign.Sibling(g, "A", "B")
	require.True(t, first.OK())
	after := g.Clone()

	again := assign.Sibling(g, "B", "A")
	assert.True(t, again.OK())
	assert.Equal(t, after, g)

	again.Undo()
	first.Undo()
}

// Every attempt on every ordered pair either commits into a consistent graph
// or leaves no trace, and Undo always restores the exact prior state.
func TestApply_RollbackIdentity(t *testing.T) {
	g := build(t,
		person("A", false, "M1", "Y1"),
		person("B", true, "M1", ""),
		person("C", false, "", ""),
		person("E", true, "M2", ""),
		&pedigree.Individual{ID: "Q"},
		&pedigree.Individual{ID: "D", Female: true, Maternal: "M2", Occupied: true, Given: true, Mother: "E", Father: "Q"},
	)
	before := g.Clone()
	ids := g.Given()

	for _, src := range ids {
		for _, dst := range ids {
			for _, rel := range allRelations {
				name := fmt.Sprintf("%s %s %s", src, rel, dst)
				at := assign.Apply(g, rel, src, dst)
				if at.OK() {
					consistent(t, g)
					if src != dst {
						assert.True(t, g.IsFirstDegree(src, dst), name)
					}
				} else {
					assert.Equal(t, before, g, "rejected %s left a trace", name)
				}
				at.Undo()
				at.Undo()
				require.Equal(t, before, g, "undo of %s", name)
			}
		}
	}
}
