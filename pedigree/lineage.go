// SPDX-License-Identifier: MIT
//
// File: lineage.go
// Role: Maternal and paternal line components.
//
// A maternal line is a connected component of mother→child links; every
// member carries the same maternal marker. A paternal line is a component of
// father→son links; females belong to none.

package pedigree

import "sort"

// MaternalLine returns the sorted ids sharing id's maternal line (id included).
func (g *Graph) MaternalLine(id string) []string {
	return g.component(id, func(n *Individual) []string {
		out := make([]string, 0, 1+len(n.Children))
		if n.Mother != "" {
			out = append(out, n.Mother)
		}
		if n.Female {
			out = append(out, n.Children...)
		}

		return out
	})
}

// PaternalLine returns the sorted ids sharing id's paternal line, or nil when
// id is female or unknown.
func (g *Graph) PaternalLine(id string) []string {
	if n, ok := g.nodes[id]; !ok || n.Female {
		return nil
	}

	return g.component(id, func(n *Individual) []string {
		var out []string
		if n.Father != "" {
			out = append(out, n.Father)
		}
		for _, c := range n.Children {
			if child, ok := g.nodes[c]; ok && !child.Female {
				out = append(out, c)
			}
		}

		return out
	})
}

// component collects the connected component of id under links.
func (g *Graph) component(id string, links func(*Individual) []string) []string {
	if _, ok := g.nodes[id]; !ok {
		return nil
	}
	seen := map[string]bool{id: true}
	queue := []string{id}
	for head := 0; head < len(queue); head++ {
		for _, next := range links(g.nodes[queue[head]]) {
			if seen[next] {
				continue
			}
			if _, ok := g.nodes[next]; !ok {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	sort.Strings(queue)

	return queue
}

// Compatible reports whether two markers may belong to the same line: they
// are equal or at least one is unknown.
func Compatible(a, b string) bool {
	return a == "" || b == "" || a == b
}
