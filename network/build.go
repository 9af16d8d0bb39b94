package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/connectome/conmat"
	"github.com/katalvlaran/connectome/threshold"
	"go.uber.org/zap"
)

// rethreshold re-invokes the threshold rule on the selected matrix and
// rebuilds the edge arena from the result. cause feeds the debug log only.
func (nw *Network) rethreshold(cause string) error {
	raw := nw.matrices[nw.thIdx]
	adj, err := nw.fn.Apply(raw, nw.params)
	if err != nil {
		return err
	}
	if adj == nil || adj.Rows() != raw.Rows() || adj.Cols() != raw.Cols() {
		return fmt.Errorf("network: threshold rule result: %w", threshold.ErrShapeMismatch)
	}
	nw.adj = adj
	nw.rebuildEdges(cause)

	return nil
}

// rebuildEdges discards the edge arena wholesale and scans every unordered
// pair (i,j), i<j, of the current adjacency: a non-NaN entry becomes an edge
// whose weight vector gathers matrix[i][j] across every matrix, and both
// endpoints' neighbour and incidence lists are extended, keeping
// i ∈ neighbours(j) ⟺ j ∈ neighbours(i) by construction. Per-matrix weight
// statistics accumulate in the same pass; with zero edges they keep the
// conmat.Stats identity sentinels.
//
// No incremental update exists on purpose: a threshold change can add and
// remove arbitrary edge sets, so the pass is always full. O(M·N²).
func (nw *Network) rebuildEdges(cause string) {
	n := len(nw.nodes)
	for i := range nw.nodes {
		nw.nodes[i].Neighbors = nw.nodes[i].Neighbors[:0]
		nw.nodes[i].Edges = nw.nodes[i].Edges[:0]
	}
	nw.edges = nw.edges[:0]
	nw.stats = make([]conmat.Stats, len(nw.matrices))
	for m := range nw.stats {
		nw.stats[m] = conmat.NewStats()
	}

	for i := 0; i < n; i++ {
		row := nw.adj.Row(i)
		for j := i + 1; j < n; j++ {
			if math.IsNaN(row[j]) {
				continue
			}
			weights := make([]float64, len(nw.matrices))
			for m, mat := range nw.matrices {
				w := mat.Row(i)[j]
				weights[m] = w
				nw.stats[m].Observe(w)
			}
			idx := len(nw.edges)
			nw.edges = append(nw.edges, Edge{Index: idx, U: i, V: j, Weights: weights})
			nw.nodes[i].Neighbors = append(nw.nodes[i].Neighbors, j)
			nw.nodes[j].Neighbors = append(nw.nodes[j].Neighbors, i)
			nw.nodes[i].Edges = append(nw.nodes[i].Edges, idx)
			nw.nodes[j].Edges = append(nw.nodes[j].Edges, idx)
		}
	}

	nw.log.Debug("edges rebuilt",
		zap.String("cause", cause),
		zap.Int("nodes", n),
		zap.Int("edges", len(nw.edges)))
}
