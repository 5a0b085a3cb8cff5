// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep cloning and reachability-based membership refresh.
// Determinism:
//   - Clone carries over the placeholder counter so ids minted on the clone
//     continue the same sequence.

package pedigree

// Clone returns a deep copy of g. Since records refer to each other by id,
// the copy needs no pointer rewiring.
//
// Complexity: O(V + C) where C is the total size of children lists.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		nodes:           make(map[string]*Individual, len(g.nodes)),
		nextPlaceholder: g.nextPlaceholder,
	}
	for id, n := range g.nodes {
		clone.nodes[id] = copyIndividual(n)
	}

	return clone
}

// Refresh drops every record not reachable from an occupied record through
// parent and child links, and returns the number of dropped records.
//
// Placeholders orphaned by merges disappear here; placeholders still attached
// to the family survive.
//
// Complexity: O(V + C).
func (g *Graph) Refresh() int {
	// Seed the walk with occupied records in id order.
	queue := make([]string, 0, len(g.nodes))
	seen := make(map[string]bool, len(g.nodes))
	for _, id := range g.IDs() {
		if g.nodes[id].Occupied {
			queue = append(queue, id)
			seen[id] = true
		}
	}

	visit := func(id string) {
		if id == "" || seen[id] {
			return
		}
		if _, ok := g.nodes[id]; !ok {
			return
		}
		seen[id] = true
		queue = append(queue, id)
	}

	// Breadth-first over parents and children.
	for head := 0; head < len(queue); head++ {
		n := g.nodes[queue[head]]
		visit(n.Mother)
		visit(n.Father)
		for _, c := range n.Children {
			visit(c)
		}
	}

	dropped := 0
	for id := range g.nodes {
		if !seen[id] {
			delete(g.nodes, id)
			dropped++
		}
	}

	return dropped
}
