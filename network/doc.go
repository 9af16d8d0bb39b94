// Package network is the aggregate root of the pipeline: it owns the matrix
// store, the node and edge arenas, the dendrogram, the threshold state, and
// the scale selection, and keeps them mutually consistent through every
// mutation.
//
// What:
//
//   - Construct: matrices (+ optional linkage, aux data) → a fully built
//     Network: nodes, thresholded edge set, per-matrix weight statistics,
//     reduced dendrogram with cluster assignments, scale domains.
//   - SetThresholdMatrix / SetThresholdParam: swap the thresholded matrix or
//     one parameter value; the edge arena is discarded and rebuilt wholesale
//     (thresholds can add and remove arbitrary edge sets, so incremental
//     update is not attempted).
//   - SetClusterCount: re-reduce the current dendrogram; edges untouched.
//   - SetEdgeWidthIndex / SetEdgeColourIndex / SetNodeColourIndex: move the
//     scale selection and recompute its domains from the store's cached
//     statistics; nothing downstream is rebuilt.
//   - ExtractSubnetwork: the ego-graph of a node — a fresh Network over the
//     node and its neighbours, its edge set exactly the induced subgraph.
//
// Ownership:
//
// Nodes, edges, and the tree live in arenas owned by exactly one Network;
// all relations (neighbours, incident edges, tree parents, sub-network
// origins) are integer indices, never pointers, so there are no reference
// cycles and no sharing across networks. Consumers may hold slices returned
// by the read API but must treat them as read-only snapshots that are
// invalidated the moment any mutating call returns.
//
// Concurrency:
//
// Single-threaded by contract. Every mutation runs to completion before it
// returns, so edges and weight statistics are never observable stale; there
// is no locking and the type is not goroutine-safe.
//
// Complexity: every threshold rebuild is O(M·N²) for M matrices over N
// nodes — acceptable at visualization scale (hundreds of nodes).
//
// Errors: ErrNilSet, ErrIndex (model-level index violations; element-level
// ones surface as conmat.ErrIndex), dendro.ErrCluster for invalid cluster
// counts. Indices are validated at the entry point and never clamped.
package network
