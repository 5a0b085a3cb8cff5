// SPDX-License-Identifier: MIT
//
// File: cycle.go
// Role: Descendant reachability and cycle detection over parent→child links.
//
// Cycle detection is a depth-first walk with three-colour marking: a Gray
// record reached again while still on the recursion stack closes a cycle.
//
// Complexity:
//
//   - Time:   O(V + C)
//   - Memory: O(V) for the colour map and recursion stack

package pedigree

// Visitation colours.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// Descends reports whether desc is reachable from anc by following children.
// A record does not descend from itself.
func (g *Graph) Descends(desc, anc string) bool {
	start, ok := g.nodes[anc]
	if !ok || desc == anc {
		return false
	}
	seen := map[string]bool{anc: true}
	stack := append([]string(nil), start.Children...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == desc {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		if n, ok := g.nodes[id]; ok {
			stack = append(stack, n.Children...)
		}
	}

	return false
}

// Related reports whether either record descends from the other.
func (g *Graph) Related(a, b string) bool {
	return g.Descends(a, b) || g.Descends(b, a)
}

// Acyclic reports whether the parent→child relation reachable from seeds has
// no directed cycle. With no seeds the whole graph is checked.
func (g *Graph) Acyclic(seeds ...string) bool {
	if len(seeds) == 0 {
		seeds = g.IDs()
	}
	state := make(map[string]int, len(g.nodes))
	for _, id := range seeds {
		if state[id] == white && g.hasBackEdge(id, state) {
			return false
		}
	}

	return true
}

// hasBackEdge runs the coloured DFS from id and reports a Gray→Gray edge.
func (g *Graph) hasBackEdge(id string, state map[string]int) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	state[id] = gray
	for _, c := range n.Children {
		switch state[c] {
		case gray:
			return true
		case white:
			if g.hasBackEdge(c, state) {
				return true
			}
		}
	}
	state[id] = black

	return false
}
