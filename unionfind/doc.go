// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over integer elements.
//
// What:
//
//   - UnionFind partitions a universe of Len() elements into disjoint classes.
//   - Elements are labelled Base()..Base()+Len()-1; the base defaults to 0 and
//     can be moved with WithBase (e.g. 1-indexed universes).
//   - Union merges two classes; Find returns a class representative;
//     Connected reports whether two elements share a class.
//
// Why:
//
//   - Dynamic connectivity: percolation, image labelling, Kruskal's MST.
//   - Grouping: cluster equivalent items as relations are discovered.
//
// Algorithm:
//
//   - Union by size: the root of the smaller tree is attached under the root
//     of the larger one. On equal size the root of the second argument is
//     attached under the root of the first, so results are deterministic.
//   - Path halving on Find: every visited node is re-pointed to its
//     grandparent, iteratively, without recursion.
//
// Complexity:
//
//   - New:              O(n) time and memory.
//   - Find/Union/...:   O(α(n)) amortized, α = inverse Ackermann.
//   - Sets:             O(n·α(n) + n log n).
//
// Errors:
//
//   - ErrInvalidCount: New called with count < 1.
//   - ErrOutOfRange:   an element outside [Base, Base+Len).
//
// A UnionFind is not safe for concurrent use; guard it with a mutex if it is
// shared between goroutines.
package unionfind
