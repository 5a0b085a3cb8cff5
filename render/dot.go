// SPDX-License-Identifier: MIT

// Package render writes pedigree graphs as Graphviz DOT text for human
// inspection. Females are circles, males squares; given individuals are
// filled, inferred ones dashed. Labels carry the id and both markers.
package render

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/kinship/pedigree"
)

// unknownMarker is printed for a missing marker.
const unknownMarker = "?"

// WriteDOT writes g as a DOT digraph named name, edges pointing from parent to
// child. Output is deterministic: records and children are emitted in id order.
func WriteDOT(w io.Writer, g *pedigree.Graph, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(bw, "  node [penwidth=1];")

	for _, n := range g.Nodes() {
		shape := "square"
		if n.Female {
			shape = "circle"
		}
		style := "dashed"
		if n.Given {
			style = "filled"
		} else if n.Occupied {
			style = "solid"
		}
		fmt.Fprintf(bw, "  %s [shape=%s, style=%s, label=%s];\n",
			strconv.Quote(n.ID), shape, style, strconv.Quote(label(n)))
	}
	for _, n := range g.Nodes() {
		for _, c := range sorted(n.Children) {
			fmt.Fprintf(bw, "  %s -> %s;\n", strconv.Quote(n.ID), strconv.Quote(c))
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func label(n *pedigree.Individual) string {
	mt := marker(n.Maternal)
	if n.Female {
		return fmt.Sprintf("%s\nmt:%s", n.ID, mt)
	}

	return fmt.Sprintf("%s\nmt:%s y:%s", n.ID, mt, marker(n.Paternal))
}

func marker(m string) string {
	if m == "" {
		return unknownMarker
	}

	return m
}

func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)

	return out
}
