package network

import (
	"fmt"

	"github.com/katalvlaran/connectome/dendro"
	"go.uber.org/zap"
)

// SetThresholdMatrix selects which matrix the threshold rule reads and
// rebuilds the edge arena and weight statistics before returning. Returns
// ErrIndex on an out-of-range index; the previous state is untouched then.
// Complexity: O(M·N²).
func (nw *Network) SetThresholdMatrix(idx int) error {
	if idx < 0 || idx >= len(nw.matrices) {
		return fmt.Errorf("SetThresholdMatrix(%d): %w", idx, ErrIndex)
	}
	prev := nw.thIdx
	nw.thIdx = idx
	if err := nw.rethreshold("threshold-matrix"); err != nil {
		nw.thIdx = prev

		return fmt.Errorf("SetThresholdMatrix(%d): %w", idx, err)
	}
	nw.recomputeScale()

	return nil
}

// SetThresholdParam assigns one threshold parameter value and rebuilds the
// edge arena and weight statistics before returning. Setting a parameter to
// the value it already holds is idempotent by edge-set membership (the pass
// still runs; the resulting set is identical). Returns ErrIndex on an
// out-of-range parameter index. Complexity: O(M·N²).
func (nw *Network) SetThresholdParam(i int, v float64) error {
	if i < 0 || i >= len(nw.params) {
		return fmt.Errorf("SetThresholdParam(%d): %w", i, ErrIndex)
	}
	prev := nw.params[i].Value
	nw.params[i].Value = v
	if err := nw.rethreshold("threshold-param"); err != nil {
		nw.params[i].Value = prev

		return fmt.Errorf("SetThresholdParam(%d): %w", i, err)
	}
	nw.recomputeScale()

	return nil
}

// SetClusterCount re-reduces the current dendrogram to at most k clusters
// and refreshes the node assignments. Reduction is destructive splicing, so
// the cluster count is monotone: a k at or above the current count is a
// no-op, and no later call re-grows clusters. Edges are not touched. On a
// network without a tree only the target is recorded. Returns
// dendro.ErrCluster when k < 1. Complexity: O(N) per splice.
func (nw *Network) SetClusterCount(k int) error {
	if k < 1 {
		return fmt.Errorf("SetClusterCount(%d): %w", k, dendro.ErrCluster)
	}
	nw.k = k
	if nw.tree != nil {
		if err := nw.tree.ReduceToK(k); err != nil {
			return fmt.Errorf("SetClusterCount(%d): %w", k, err)
		}
		nw.assignClusters()
	}
	nw.recomputeScale()
	nw.log.Debug("clusters reduced",
		zap.Int("target", k),
		zap.Int("active", nw.ActiveClusters()))

	return nil
}

// SetEdgeWidthIndex selects the matrix driving edge width and recomputes its
// domain from the store's cached statistics. Nothing downstream is rebuilt.
// Returns ErrIndex on an out-of-range index. Complexity: O(1).
func (nw *Network) SetEdgeWidthIndex(idx int) error {
	if idx < 0 || idx >= len(nw.matrices) {
		return fmt.Errorf("SetEdgeWidthIndex(%d): %w", idx, ErrIndex)
	}
	nw.scale.EdgeWidthIndex = idx
	nw.recomputeScale()

	return nil
}

// SetEdgeColourIndex selects the matrix driving edge colour. See
// SetEdgeWidthIndex for the contract. Complexity: O(1).
func (nw *Network) SetEdgeColourIndex(idx int) error {
	if idx < 0 || idx >= len(nw.matrices) {
		return fmt.Errorf("SetEdgeColourIndex(%d): %w", idx, ErrIndex)
	}
	nw.scale.EdgeColourIndex = idx
	nw.recomputeScale()

	return nil
}

// SetNodeColourIndex selects the auxiliary data source driving node colour.
// Validated against the store's aux source count, so any index errors with
// ErrIndex on a store without aux data. Complexity: O(1).
func (nw *Network) SetNodeColourIndex(idx int) error {
	if idx < 0 || idx >= nw.set.AuxCount() {
		return fmt.Errorf("SetNodeColourIndex(%d): %w", idx, ErrIndex)
	}
	nw.scale.NodeColourIndex = idx
	nw.recomputeScale()

	return nil
}
