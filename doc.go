// SPDX-License-Identifier: MIT

// Package kinship reconstructs candidate family trees (pedigrees) from a set of
// individuals and pairwise kinship-degree observations.
//
// Every individual has a sex, an optional maternal-lineage marker and, for
// males, an optional paternal-lineage marker. Observations state that two
// individuals are related at degree d (1: parent, child or full sibling;
// 2: grandparent, half-sibling, aunt; 3: first cousin, …). The engine
// enumerates every pedigree, up to a maximum degree, that realizes the
// observations without implying unstated relationships between given
// individuals.
//
// Packages:
//
//	pedigree/    - Individual records, the arena Graph, kinship degrees, reversible journals
//	extrapolate/ - placeholder parents for individuals without any
//	assign/      - transactional sibling and parent/child assignment with undo
//	observation/ - degree observations and the optional probability table
//	prune/       - rejection of graphs implying unstated relationships
//	search/      - the degree-by-degree backtracking controller (serial or errgroup)
//	isomorph/    - signature-based deduplication of results
//	ingest/      - CSV loaders
//	render/      - Graphviz DOT output
//	metrics/     - Prometheus counters
//	config/      - YAML run configuration
//	logger/      - zap logger construction
//	cmd/kinship  - the command-line front end
//
// Quick example:
//
//	A ══ B   observed at degree 1, both male, no markers
//
//	 brothers        A father of B     B father of A
//	  p1 ═ p2          p1 ═ p2           p3 ═ p4
//	   ├─A              └─A ═ p3          └─B ═ p1
//	   └─B                  └─B               └─A
//
//	go run ./cmd/kinship construct --bios bios.csv --degrees degrees.csv
package kinship
