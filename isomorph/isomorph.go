// SPDX-License-Identifier: MIT

// Package isomorph discards candidate pedigrees that look the same.
//
// Signature fixes a traversal order: childless records sorted by id, each
// visited post-order with its mother before its father, and records only the
// sex of every visited record. Two graphs with equal signatures are treated as
// isomorphic. This is a cheap heuristic and not a full isomorphism test:
// different pedigrees can share a signature.
//
// Complexity:
//
//   - Signature: O(V log V + C)
//   - Dedup:     O(N·(V log V + C)) for N graphs, using a hash set of signatures
package isomorph

import (
	"sort"
	"strings"

	"github.com/katalvlaran/kinship/pedigree"
)

// Visitation states of the signature walk.
const (
	white = iota
	gray
	black
)

// Signature returns the sex sequence of g's gender-topological order
// (true = female).
func Signature(g *pedigree.Graph) []bool {
	// 1) Leaves in id order.
	var leaves []string
	for _, n := range g.Nodes() {
		if len(n.Children) == 0 {
			leaves = append(leaves, n.ID)
		}
	}
	sort.Strings(leaves)

	// 2) Post-order, mother first.
	state := make(map[string]int, g.Len())
	out := make([]bool, 0, g.Len())
	var visit func(id string)
	visit = func(id string) {
		n, ok := g.Node(id)
		if !ok || state[id] != white {
			return
		}
		state[id] = gray
		if n.HasParents() {
			visit(n.Mother)
			visit(n.Father)
		}
		state[id] = black
		out = append(out, n.Female)
	}
	for _, id := range leaves {
		visit(id)
	}

	return out
}

// Key renders a signature as a string of 'F' and 'M'.
func Key(sig []bool) string {
	var b strings.Builder
	b.Grow(len(sig))
	for _, female := range sig {
		if female {
			b.WriteByte('F')
		} else {
			b.WriteByte('M')
		}
	}

	return b.String()
}

// Dedup keeps the first graph of every signature, preserving input order.
// Running it on its own output returns that output unchanged.
func Dedup(graphs []*pedigree.Graph) []*pedigree.Graph {
	seen := make(map[string]struct{}, len(graphs))
	out := make([]*pedigree.Graph, 0, len(graphs))
	for _, g := range graphs {
		k := Key(Signature(g))
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, g)
	}

	return out
}
