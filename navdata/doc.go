// SPDX-License-Identifier: MIT

// Package navdata builds core graphs from flat, whitespace-delimited text
// sources.
//
// Navigation sources (Load):
//
//	points      id name lat lon           one navigation point per line
//	segments    originId destinationId km one link per line, cost is authoritative
//	facilities  LEBL                      a 4-character uppercase code opens a facility
//	            LEBL.D / LEBL.A            point names ending in .D (departure) or .A (arrival)
//
// The resulting graph is geodesic with symmetric adjacency. Bad lines are
// skipped and recorded as Diagnostics in the Report; only a missing required
// file (ErrSourceMissing) or an I/O failure aborts a load. Blank lines and
// lines starting with '#' are ignored everywhere.
//
// Plain graph files (ReadGraph / WriteGraph) hold a planar one-way graph:
//
//	3            node count
//	A 1 20       name x y
//	B 8 17
//	C 15 20
//	2            link count
//	A B          origin destination
//	B C
package navdata
