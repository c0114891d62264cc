// Package graphrepr implements the dense {0,1} adjacency-matrix graph
// representation shared by every phase of the PC algorithm.
//
// A Matrix is an n x n grid over V = {0, ..., n-1}. Orientation is expressed
// by asymmetry between the two cells of a pair rather than by a separate type
// tag: M[i][j]==1 && M[j][i]==1 is an undirected edge i - j, M[i][j]==1 &&
// M[j][i]==0 is a directed edge i -> j, and both cells zero means no edge.
// The same Matrix value passes through three lifecycle stages - skeleton
// (all edges undirected), PDAG (some v-structures oriented) and CPDAG
// (Meek-closed) - without ever changing representation.
//
// Matrix storage is a flat row-major []uint8 (one allocation, O(1) indexing,
// trivial deep clone).
package graphrepr
