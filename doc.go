// Package connectome turns raw connectivity matrices — brain-region
// correlations, time-series similarity, any symmetric weighted coupling —
// into a validated, interactive-ready network data model.
//
// 🚀 What is connectome?
//
//	A small, deterministic pipeline from numeric text to a graph:
//		• conmat     — validated matrix store: NaN-aware dense matrices,
//		               aux node data, cached min/max statistics, text parsing
//		• threshold  — pluggable suppression rule (built-in per-row percentile)
//		               deciding which pairs become edges
//		• dendro     — linkage table → dendrogram, collapsible to K clusters
//		• network    — the aggregate root: node/edge arenas, weight statistics,
//		               threshold/cluster/scale state, ego sub-network extraction
//		• signal     — correlation and DTW matrices from per-node series
//		• fetch      — join/await-all batch loading of all input texts
//		• export     — JSON document and gonum views for renderers
//
// ✨ Design in one paragraph
//
// One Network owns everything it derives: nodes, edges, tree, statistics.
// Relations are integer indices into arenas, never pointers, so ownership is
// unambiguous and there are no reference cycles. Every mutation (threshold
// value, cluster count, scale index) rebuilds exactly the stages downstream
// of it and completes before returning — readers can never observe stale
// edges. The whole pipeline is synchronous and single-threaded by contract;
// the only concurrency lives in fetch, and it ends before construction
// begins.
//
// Quick sketch:
//
//	text matrices ──fetch──▶ conmat.Set ──threshold──▶ adjacency
//	                                        │
//	linkage text ──dendro──▶ tree ──────────┤
//	                                        ▼
//	                              network.Network ──export──▶ renderer
//
// See each package's documentation for its contract and error taxonomy.
package connectome
