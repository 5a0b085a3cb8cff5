// SPDX-License-Identifier: MIT

package assign

import "github.com/katalvlaran/kinship/pedigree"

// Interpretations lists, in trial order, the first-degree relations that the
// sexes and markers of src and dst allow. Relations are from src's point of
// view (ParentOf means src is the parent).
//
//	both male:     paternal markers must be compatible; full siblings also
//	               need compatible maternal markers; then father of either.
//	both female:   maternal markers must be compatible; siblings, then
//	               mother of either.
//	opposite sex:  compatible maternal markers allow siblings and
//	               mother-of-son; father-of-daughter is tried unless both
//	               maternal markers are known and equal. Different maternal
//	               markers leave father-of-daughter only.
//
// An unknown id yields no interpretation.
func Interpretations(g *pedigree.Graph, src, dst string) []pedigree.Relation {
	s, ok := g.Node(src)
	if !ok {
		return nil
	}
	d, ok := g.Node(dst)
	if !ok {
		return nil
	}
	mtOK := pedigree.Compatible(s.Maternal, d.Maternal)

	switch {
	case !s.Female && !d.Female:
		if !pedigree.Compatible(s.Paternal, d.Paternal) {
			return nil
		}
		out := make([]pedigree.Relation, 0, 3)
		if mtOK {
			out = append(out, pedigree.Sibling)
		}

		return append(out, pedigree.ParentOf, pedigree.ChildOf)

	case s.Female && d.Female:
		if !mtOK {
			return nil
		}

		return []pedigree.Relation{pedigree.Sibling, pedigree.ParentOf, pedigree.ChildOf}

	default:
		// motherOfSon is the relation that makes the female the parent;
		// fatherOfDaughter makes the male the parent.
		motherOfSon, fatherOfDaughter := pedigree.ParentOf, pedigree.ChildOf
		if !s.Female {
			motherOfSon, fatherOfDaughter = pedigree.ChildOf, pedigree.ParentOf
		}
		if !mtOK {
			return []pedigree.Relation{fatherOfDaughter}
		}
		out := []pedigree.Relation{pedigree.Sibling, motherOfSon}
		if s.Maternal == "" || s.Maternal != d.Maternal {
			out = append(out, fatherOfDaughter)
		}

		return out
	}
}
