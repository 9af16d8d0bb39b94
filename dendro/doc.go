// Package dendro builds the dendrogram of a network from an agglomerative
// clustering linkage table, and collapses it to at most K clusters for
// display.
//
// What:
//
//   - ParseLinkage: the whitespace linkage text format, one merge per line:
//     leftId rightId mergeDistance (ids 1-indexed; ids above the leaf count
//     reference earlier merge rows).
//   - Build: linkage rows → binary tree over the network's leaves. Internal
//     nodes live in an arena owned by the Tree; child and parent relations
//     are integer refs, never pointers, so there are no reference cycles.
//   - ReduceToK: iteratively splices out the active internal node with the
//     minimum merge distance until at most K clusters remain. Spliced nodes
//     are flagged removed and their children re-parented; the arena itself
//     is never compacted.
//   - Assignments: stable small-integer cluster id per leaf after reduction.
//
// Tie-breaking in ReduceToK when several active internal nodes share the
// minimum merge distance is first-encountered in the leaf-order scan. This
// is implementation-defined, not a stability guarantee.
//
// Complexity: Build is O(rows); each ReduceToK splice is O(N) for the
// active-cluster scan, so a full reduction is O(N·rows) worst case —
// negligible at visualization scale.
//
// Errors:
//
//   - ErrLinkage: malformed linkage rows or id references outside the
//     constructed range (forward references included).
//   - ErrCluster: a requested cluster count below 1.
package dendro
