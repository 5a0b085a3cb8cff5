// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Record lookup, deterministic listing, and placeholder allocation.
// Determinism:
//   - IDs() and Nodes() are sorted by id.
//   - Placeholder ids continue the Graph's own counter ("p1", "p2", …) and skip
//     ids already present.

package pedigree

import (
	"sort"
	"strconv"
)

// placeholderPrefix prefixes every synthesized id.
const placeholderPrefix = "p"

// Mutator is the write surface shared by Graph and Journal.
// Extrapolation and the assignment engine mutate records through it, so the
// same code runs directly on a graph or inside a reversible transaction.
type Mutator interface {
	// Mutable returns the live record for id, ready to be modified.
	Mutable(id string) (*Individual, bool)

	// Placeholder inserts a fresh unoccupied, non-given record of the given sex.
	Placeholder(female bool) *Individual
}

// Node returns the record for id. The returned record is live: callers that
// only read must not modify it.
func (g *Graph) Node(id string) (*Individual, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// Has reports whether id names a record of g.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Len returns the number of records.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs returns all record ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Nodes returns all records ordered by id.
func (g *Graph) Nodes() []*Individual {
	ids := g.IDs()
	out := make([]*Individual, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id]
	}

	return out
}

// Given returns the ids of all given records in ascending order.
func (g *Graph) Given() []string {
	var ids []string
	for id, n := range g.nodes {
		if n.Given {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// Parents returns the mother and father records of id.
// ok is false when id is unknown or has no parent pair.
func (g *Graph) Parents(id string) (mother, father *Individual, ok bool) {
	n, found := g.nodes[id]
	if !found || !n.HasParents() {
		return nil, nil, false
	}

	return g.nodes[n.Mother], g.nodes[n.Father], true
}

// Mutable implements Mutator by returning the live record.
func (g *Graph) Mutable(id string) (*Individual, bool) {
	return g.Node(id)
}

// Placeholder implements Mutator. The new record is unoccupied and not given.
func (g *Graph) Placeholder(female bool) *Individual {
	n := &Individual{ID: g.nextPlaceholderID(), Female: female}
	g.nodes[n.ID] = n

	return n
}

// PlaceholderSeq reports the current placeholder counter.
func (g *Graph) PlaceholderSeq() uint64 {
	return g.nextPlaceholder
}

// nextPlaceholderID advances the counter until it yields an unused id.
func (g *Graph) nextPlaceholderID() string {
	for {
		g.nextPlaceholder++
		id := placeholderPrefix + strconv.FormatUint(g.nextPlaceholder, 10)
		if _, taken := g.nodes[id]; !taken {
			return id
		}
	}
}
