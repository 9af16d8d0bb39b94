// Package export adapts a constructed network into the shapes rendering and
// analysis collaborators consume. Rendering itself (layout, bundling, colour
// math) lives outside this module; these adapters are the read interface it
// requires.
//
// What:
//
//   - Document: a JSON-ready nodes/links view carrying names, clusters, aux
//     values, thumbnails, and per-matrix edge weights.
//   - AdjacencyDense: the current edge set as a gonum *mat.Dense (0 where no
//     edge), the input shape of force-layout renderers.
//   - WeightedGraph: the current edge set as a gonum simple weighted
//     undirected graph for downstream graph tooling.
//
// All adapters are snapshots: they copy out of the network's arenas and stay
// valid after later mutations, at the cost of one O(N²) or O(E) pass.
//
// Errors: network.ErrIndex on an out-of-range matrix index.
package export
