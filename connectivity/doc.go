// Package connectivity implements the Connectivity validator of spec.md
// §4.3: BFS-based whole-ensemble and backbone connectivity checks over a
// plain geom.CellSet.
//
// This package deliberately does not build a general-purpose graph for each
// check — connectivity is tested many times per planning tick (once per
// candidate in the Move selector's cumulative loop), so every check here
// walks a CellSet directly via its 4-neighborhood rather than paying for a
// vertex/edge catalog on every call.
//
// Complexity: every exported check is O(n) in the number of occupied cells,
// using a single BFS or DFS pass with a visited set sized to n.
package connectivity
