// SPDX-License-Identifier: MIT
//
// File: relatives.go
// Role: Kinship-degree queries.
//
// Degree is the length of the shortest walk that climbs to parents any number
// of times, then takes at most one full-sibling step, then descends to
// children any number of times. A walk never descends and then climbs again,
// so two partners sharing a child are not related through that child.
//
//	degree 1: parent, child, full sibling
//	degree 2: grandparent, grandchild, half-sibling, aunt/uncle, niece/nephew
//	degree 3: great-grandparent, first cousin, half-aunt, …

package pedigree

import "sort"

// phase of a kinship walk.
const (
	phaseUp   = iota // still allowed to climb
	phaseDown        // only descending from here
)

// walkItem is one BFS state of a kinship walk.
type walkItem struct {
	id    string
	phase int
	dist  int
}

// FullSiblings returns the ids sharing both parents with id, sorted.
func (g *Graph) FullSiblings(id string) []string {
	n, ok := g.nodes[id]
	if !ok || !n.HasParents() {
		return nil
	}
	mother, ok := g.nodes[n.Mother]
	if !ok {
		return nil
	}
	var sibs []string
	for _, c := range mother.Children {
		if c == id {
			continue
		}
		if s, ok := g.nodes[c]; ok && s.Father == n.Father {
			sibs = append(sibs, c)
		}
	}
	sort.Strings(sibs)

	return sibs
}

// distances returns the kinship degree from src to every record within limit.
// src itself is not included.
//
// Complexity: O(V + C) per call (each record is visited at most twice).
func (g *Graph) distances(src string, limit int) map[string]int {
	out := make(map[string]int)
	if _, ok := g.nodes[src]; !ok || limit <= 0 {
		return out
	}

	seen := [2]map[string]bool{{src: true}, {}}
	queue := []walkItem{{id: src, phase: phaseUp}}
	push := func(id string, phase, dist int) {
		if id == "" || seen[phase][id] {
			return
		}
		seen[phase][id] = true
		queue = append(queue, walkItem{id: id, phase: phase, dist: dist})
		if id == src {
			return
		}
		if d, ok := out[id]; !ok || dist < d {
			out[id] = dist
		}
	}

	for head := 0; head < len(queue); head++ {
		it := queue[head]
		if it.dist >= limit {
			continue
		}
		n := g.nodes[it.id]
		next := it.dist + 1
		if it.phase == phaseUp {
			push(n.Mother, phaseUp, next)
			push(n.Father, phaseUp, next)
			for _, s := range g.FullSiblings(it.id) {
				push(s, phaseDown, next)
			}
		}
		for _, c := range n.Children {
			push(c, phaseDown, next)
		}
	}

	return out
}

// Degree returns the kinship degree between a and b, looking no further than
// limit. ok is false when the two are unrelated within limit or either id is
// unknown. The degree of a record to itself is 0.
func (g *Graph) Degree(a, b string, limit int) (int, bool) {
	if !g.Has(a) || !g.Has(b) {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	d, ok := g.distances(a, limit)[b]

	return d, ok
}

// Relatives returns, sorted, the ids at exactly degree k from id.
func (g *Graph) Relatives(id string, k int) []string {
	var out []string
	for other, d := range g.distances(id, k) {
		if d == k {
			out = append(out, other)
		}
	}
	sort.Strings(out)

	return out
}

// RelativesWithin returns every record related to id at degree 1..limit,
// keyed by id.
func (g *Graph) RelativesWithin(id string, limit int) map[string]int {
	return g.distances(id, limit)
}

// FirstDegree returns the parents, children and full siblings of id, sorted.
func (g *Graph) FirstDegree(id string) []string {
	return g.Relatives(id, 1)
}

// IsFirstDegree reports whether a and b are parent/child or full siblings.
func (g *Graph) IsFirstDegree(a, b string) bool {
	d, ok := g.Degree(a, b, 1)

	return ok && d == 1
}
