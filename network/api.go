package network

import (
	"fmt"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/dendro"
	"github.com/katalvlaran/connectome/threshold"
)

// Read API. Returned slices and structs are read-only snapshots backed by
// the network's arenas; they are invalidated the moment any mutating call
// returns. Every method is O(1) unless noted.

// N returns the node count (= the shared matrix dimension).
func (nw *Network) N() int { return len(nw.nodes) }

// EdgeCount returns the current edge count.
func (nw *Network) EdgeCount() int { return len(nw.edges) }

// Node returns the i-th node by value. Its slice fields still alias the
// arena. Returns ErrIndex when i is out of range.
func (nw *Network) Node(i int) (Node, error) {
	if i < 0 || i >= len(nw.nodes) {
		return Node{}, fmt.Errorf("Network.Node(%d): %w", i, ErrIndex)
	}

	return nw.nodes[i], nil
}

// Edge returns the i-th edge by value. Returns ErrIndex when i is out of
// range.
func (nw *Network) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(nw.edges) {
		return Edge{}, fmt.Errorf("Network.Edge(%d): %w", i, ErrIndex)
	}

	return nw.edges[i], nil
}

// Nodes returns the node arena itself; read-only for the caller.
func (nw *Network) Nodes() []Node { return nw.nodes }

// Edges returns the edge arena itself; read-only for the caller.
func (nw *Network) Edges() []Edge { return nw.edges }

// WeightStats returns the per-matrix statistics over the current edge set.
// With zero edges the conmat.Stats identity sentinels are returned. Returns
// ErrIndex on an out-of-range matrix index.
func (nw *Network) WeightStats(m int) (conmat.Stats, error) {
	if m < 0 || m >= len(nw.stats) {
		return conmat.Stats{}, fmt.Errorf("Network.WeightStats(%d): %w", m, ErrIndex)
	}

	return nw.stats[m], nil
}

// Set returns the matrix store the network was built from.
func (nw *Network) Set() *conmat.Set { return nw.set }

// Tree returns the dendrogram, nil when no linkage was attached.
func (nw *Network) Tree() *dendro.Tree { return nw.tree }

// ClusterCount returns the desired cluster target (the K of the last
// reduction request).
func (nw *Network) ClusterCount() int { return nw.k }

// ActiveClusters returns the dendrogram's current cluster count, 0 on a
// network without a tree. Complexity: O(N).
func (nw *Network) ActiveClusters() int {
	if nw.tree == nil {
		return 0
	}

	return nw.tree.ClusterCount()
}

// ThresholdMatrixIndex returns the matrix index the threshold rule reads.
func (nw *Network) ThresholdMatrixIndex() int { return nw.thIdx }

// ThresholdParams returns a copy of the current threshold parameters.
// Complexity: O(params).
func (nw *Network) ThresholdParams() []threshold.Param {
	out := make([]threshold.Param, len(nw.params))
	copy(out, nw.params)

	return out
}

// ScaleState returns the current scale selection and its domains.
func (nw *Network) ScaleState() Scale { return nw.scale }
